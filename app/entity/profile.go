package entity

// Every profile table is keyed by user_id.

type UserProfileRow struct {
	UserID    string  `json:"user_id"`
	ProfileID string  `json:"profile_id"`
	Notes     *string `json:"notes"`
}

type BasicDemographicsRow struct {
	UserID                   string   `json:"user_id"`
	Age                      int      `json:"age"`
	Sex                      *string  `json:"sex"`
	Gender                   *string  `json:"gender"`
	Height                   int      `json:"height"`
	Weight                   int      `json:"weight"`
	BodyFatPercentage        *float64 `json:"body_fat_percentage"`
	LeanMass                 *float64 `json:"lean_mass"`
	BiologicalConsiderations *string  `json:"biological_considerations"`
	MenstrualCycleInfo       *string  `json:"menstrual_cycle_info"`
}

type ActivityLifestyleRow struct {
	UserID           string   `json:"user_id"`
	ActivityLevel    string   `json:"activity_level"`
	DailyStepCount   *int     `json:"daily_step_count"`
	JobType          *string  `json:"job_type"`
	CommuteTime      *string  `json:"commute_time"`
	SleepDuration    *float64 `json:"sleep_duration"`
	SleepQuality     *string  `json:"sleep_quality"`
	StressLevel      *string  `json:"stress_level"`
	RecoveryCapacity *string  `json:"recovery_capacity"`
}

type GoalsPrioritiesRow struct {
	UserID            string   `json:"user_id"`
	PrimaryGoal       string   `json:"primary_goal"`
	SecondaryGoals    []string `json:"secondary_goals"`
	Timeframe         *string  `json:"timeframe"`
	TargetWeight      *float64 `json:"target_weight"`
	PerformanceMetric *string  `json:"performance_metric"`
	AestheticGoals    *string  `json:"aesthetic_goals"`
	HealthGoals       []string `json:"health_goals"`
}

type TrainingBackgroundRow struct {
	UserID                string   `json:"user_id"`
	TrainingAge           *string  `json:"training_age"`
	TrainingHistory       *string  `json:"training_history"`
	CurrentWorkoutRoutine *string  `json:"current_workout_routine"`
	ExercisePreferences   []string `json:"exercise_preferences"`
	ExerciseDislikes      []string `json:"exercise_dislikes"`
	EquipmentAccess       *string  `json:"equipment_access"`
	TimePerSession        *int     `json:"time_per_session"`
	DaysPerWeek           *int     `json:"days_per_week"`
}

type MedicalHistoryRow struct {
	UserID               string   `json:"user_id"`
	Injuries             []string `json:"injuries"`
	ChronicConditions    []string `json:"chronic_conditions"`
	PainPatterns         *string  `json:"pain_patterns"`
	MobilityRestrictions []string `json:"mobility_restrictions"`
	Medications          []string `json:"medications"`
	DoctorRestrictions   *string  `json:"doctor_restrictions"`
}

type NutritionHistoryRow struct {
	UserID                    string   `json:"user_id"`
	CurrentDietPattern        *string  `json:"current_diet_pattern"`
	CalorieTrackingExperience *bool    `json:"calorie_tracking_experience"`
	MacronutrientPreferences  *string  `json:"macronutrient_preferences"`
	FoodAllergies             []string `json:"food_allergies"`
	DietaryRestrictions       []string `json:"dietary_restrictions"`
	CulturalFoodPreferences   *string  `json:"cultural_food_preferences"`
	CookingSkillLevel         *string  `json:"cooking_skill_level"`
	FoodBudget                *string  `json:"food_budget"`
	EatingSchedule            *string  `json:"eating_schedule"`
	SnackingHabits            *string  `json:"snacking_habits"`
	AlcoholIntake             *string  `json:"alcohol_intake"`
	SupplementUse             []string `json:"supplement_use"`
}

type BehavioralFactorsRow struct {
	UserID                     string  `json:"user_id"`
	MotivationLevel            *string `json:"motivation_level"`
	ConsistencyHistory         *string `json:"consistency_history"`
	AccountabilityPreference   *string `json:"accountability_preference"`
	PastSuccessFailurePatterns *string `json:"past_success_failure_patterns"`
	RelationshipWithFood       *string `json:"relationship_with_food"`
	DisorderedEatingHistory    *string `json:"disordered_eating_history"`
	StressEatingTendencies     *string `json:"stress_eating_tendencies"`
	SupportSystem              *string `json:"support_system"`
}

type MetricsTrackingRow struct {
	UserID                   string   `json:"user_id"`
	PreferredProgressMetrics []string `json:"preferred_progress_metrics"`
	TrackingTools            []string `json:"tracking_tools"`
	CheckinFrequency         *string  `json:"checkin_frequency"`
}

// UserRecommendationRow stores the generated plan for a user.
type UserRecommendationRow struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Recommendation string  `json:"recommendation"`
	Model          string  `json:"model,omitempty"`
	CreatedAt      *string `json:"created_at,omitempty"`
}
