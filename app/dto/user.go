package dto

// ── Profile sections ─────────────────────────────────────────────────────────

type BasicDemographics struct {
	Age                      int      `json:"age" validate:"gte=1,lte=130"`
	Sex                      *string  `json:"sex,omitempty"`
	Gender                   *string  `json:"gender,omitempty"`
	Height                   int      `json:"height" validate:"gt=0"`
	Weight                   int      `json:"weight" validate:"gt=0"`
	BodyFatPercentage        *float64 `json:"bodyFatPercentage,omitempty"`
	LeanMass                 *float64 `json:"leanMass,omitempty"`
	BiologicalConsiderations *string  `json:"biologicalConsiderations,omitempty"`
	MenstrualCycleInfo       *string  `json:"menstrualCycleInfo,omitempty"`
}

type ActivityLifestyle struct {
	ActivityLevel    string   `json:"activityLevel" validate:"required"`
	DailyStepCount   *int     `json:"dailyStepCount,omitempty"`
	JobType          *string  `json:"jobType,omitempty"`
	CommuteTime      *string  `json:"commuteTime,omitempty"`
	SleepDuration    *float64 `json:"sleepDuration,omitempty"`
	SleepQuality     *string  `json:"sleepQuality,omitempty"`
	StressLevel      *string  `json:"stressLevel,omitempty"`
	RecoveryCapacity *string  `json:"recoveryCapacity,omitempty"`
}

type GoalsPriorities struct {
	PrimaryGoal       string   `json:"primaryGoal" validate:"required"`
	SecondaryGoals    []string `json:"secondaryGoals,omitempty"`
	Timeframe         *string  `json:"timeframe,omitempty"`
	TargetWeight      *float64 `json:"targetWeight,omitempty"`
	PerformanceMetric *string  `json:"performanceMetric,omitempty"`
	AestheticGoals    *string  `json:"aestheticGoals,omitempty"`
	HealthGoals       []string `json:"healthGoals,omitempty"`
}

type TrainingBackground struct {
	TrainingAge           *string  `json:"trainingAge,omitempty"`
	TrainingHistory       *string  `json:"trainingHistory,omitempty"`
	CurrentWorkoutRoutine *string  `json:"currentWorkoutRoutine,omitempty"`
	ExercisePreferences   []string `json:"exercisePreferences,omitempty"`
	ExerciseDislikes      []string `json:"exerciseDislikes,omitempty"`
	EquipmentAccess       *string  `json:"equipmentAccess,omitempty"`
	TimePerSession        *int     `json:"timePerSession,omitempty"`
	DaysPerWeek           *int     `json:"daysPerWeek,omitempty" validate:"omitempty,gte=0,lte=7"`
}

type MedicalHistory struct {
	Injuries             []string `json:"injuries,omitempty"`
	ChronicConditions    []string `json:"chronicConditions,omitempty"`
	PainPatterns         *string  `json:"painPatterns,omitempty"`
	MobilityRestrictions []string `json:"mobilityRestrictions,omitempty"`
	Medications          []string `json:"medications,omitempty"`
	DoctorRestrictions   *string  `json:"doctorRestrictions,omitempty"`
}

type NutritionDietHistory struct {
	CurrentDietPattern        *string  `json:"currentDietPattern,omitempty"`
	CalorieTrackingExperience *bool    `json:"calorieTrackingExperience,omitempty"`
	MacronutrientPreferences  *string  `json:"macronutrientPreferences,omitempty"`
	FoodAllergies             []string `json:"foodAllergies,omitempty"`
	DietaryRestrictions       []string `json:"dietaryRestrictions,omitempty"`
	CulturalFoodPreferences   *string  `json:"culturalFoodPreferences,omitempty"`
	CookingSkillLevel         *string  `json:"cookingSkillLevel,omitempty"`
	FoodBudget                *string  `json:"foodBudget,omitempty"`
	EatingSchedule            *string  `json:"eatingSchedule,omitempty"`
	SnackingHabits            *string  `json:"snackingHabits,omitempty"`
	AlcoholIntake             *string  `json:"alcoholIntake,omitempty"`
	SupplementUse             []string `json:"supplementUse,omitempty"`
}

type BehavioralFactors struct {
	MotivationLevel            *string `json:"motivationLevel,omitempty"`
	ConsistencyHistory         *string `json:"consistencyHistory,omitempty"`
	AccountabilityPreference   *string `json:"accountabilityPreference,omitempty"`
	PastSuccessFailurePatterns *string `json:"pastSuccessFailurePatterns,omitempty"`
	RelationshipWithFood       *string `json:"relationshipWithFood,omitempty"`
	DisorderedEatingHistory    *string `json:"disorderedEatingHistory,omitempty"`
	StressEatingTendencies     *string `json:"stressEatingTendencies,omitempty"`
	SupportSystem              *string `json:"supportSystem,omitempty"`
}

type MetricsTracking struct {
	PreferredProgressMetrics []string `json:"preferredProgressMetrics,omitempty"`
	TrackingTools            []string `json:"trackingTools,omitempty"`
	CheckinFrequency         *string  `json:"checkinFrequency,omitempty"`
}

// ── Registration ─────────────────────────────────────────────────────────────

// RegisterUserProfileRequest is the full onboarding payload. The first three
// sections are mandatory; the rest are written only when present.
type RegisterUserProfileRequest struct {
	ID                 string                `json:"id"`
	UserID             string                `json:"userId" validate:"required"`
	BasicDemographics  BasicDemographics     `json:"basicDemographics"`
	ActivityLifestyle  ActivityLifestyle     `json:"activityLifestyle"`
	Goals              GoalsPriorities       `json:"goals"`
	TrainingBackground *TrainingBackground   `json:"trainingBackground,omitempty"`
	MedicalHistory     *MedicalHistory       `json:"medicalHistory,omitempty"`
	NutritionHistory   *NutritionDietHistory `json:"nutritionHistory,omitempty"`
	BehavioralFactors  *BehavioralFactors    `json:"behavioralFactors,omitempty"`
	MetricsTracking    *MetricsTracking      `json:"metricsTracking,omitempty"`
	Notes              *string               `json:"notes,omitempty"`
}

// StatusResponse is the {"status": "..."} body returned by mutations.
type StatusResponse struct {
	Status string `json:"status"`
}
