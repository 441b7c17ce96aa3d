package mappings

import (
	"strconv"
	"strings"

	"github.com/km-arc/diaita/app/dto"
)

// PromptVariables flattens a registration into the string variables used by
// the recommendation prompt. Lists are joined with ", " and absent values
// render as "".
func PromptVariables(req dto.RegisterUserProfileRequest) map[string]string {
	bd, al, g := req.BasicDemographics, req.ActivityLifestyle, req.Goals

	vars := map[string]string{
		"userId": req.UserID,
		"notes":  str(req.Notes),

		"age":                      strconv.Itoa(bd.Age),
		"sex":                      str(bd.Sex),
		"gender":                   str(bd.Gender),
		"height":                   strconv.Itoa(bd.Height),
		"weight":                   strconv.Itoa(bd.Weight),
		"bodyFatPercentage":        float(bd.BodyFatPercentage),
		"leanMass":                 float(bd.LeanMass),
		"biologicalConsiderations": str(bd.BiologicalConsiderations),
		"menstrualCycleInfo":       str(bd.MenstrualCycleInfo),

		"activityLevel":    al.ActivityLevel,
		"dailyStepCount":   integer(al.DailyStepCount),
		"jobType":          str(al.JobType),
		"commuteTime":      str(al.CommuteTime),
		"sleepDuration":    float(al.SleepDuration),
		"sleepQuality":     str(al.SleepQuality),
		"stressLevel":      str(al.StressLevel),
		"recoveryCapacity": str(al.RecoveryCapacity),

		"primaryGoal":       g.PrimaryGoal,
		"secondaryGoals":    list(g.SecondaryGoals),
		"timeframe":         str(g.Timeframe),
		"targetWeight":      float(g.TargetWeight),
		"performanceMetric": str(g.PerformanceMetric),
		"aestheticGoals":    str(g.AestheticGoals),
		"healthGoals":       list(g.HealthGoals),
	}

	tb := deref(req.TrainingBackground)
	vars["trainingAge"] = str(tb.TrainingAge)
	vars["trainingHistory"] = str(tb.TrainingHistory)
	vars["currentWorkoutRoutine"] = str(tb.CurrentWorkoutRoutine)
	vars["exercisePreferences"] = list(tb.ExercisePreferences)
	vars["exerciseDislikes"] = list(tb.ExerciseDislikes)
	vars["equipmentAccess"] = str(tb.EquipmentAccess)
	vars["timePerSession"] = integer(tb.TimePerSession)
	vars["daysPerWeek"] = integer(tb.DaysPerWeek)

	mh := deref(req.MedicalHistory)
	vars["injuries"] = list(mh.Injuries)
	vars["chronicConditions"] = list(mh.ChronicConditions)
	vars["painPatterns"] = str(mh.PainPatterns)
	vars["mobilityRestrictions"] = list(mh.MobilityRestrictions)
	vars["medications"] = list(mh.Medications)
	vars["doctorRestrictions"] = str(mh.DoctorRestrictions)

	nh := deref(req.NutritionHistory)
	vars["currentDietPattern"] = str(nh.CurrentDietPattern)
	vars["calorieTrackingExperience"] = boolean(nh.CalorieTrackingExperience)
	vars["macronutrientPreferences"] = str(nh.MacronutrientPreferences)
	vars["foodAllergies"] = list(nh.FoodAllergies)
	vars["dietaryRestrictions"] = list(nh.DietaryRestrictions)
	vars["culturalFoodPreferences"] = str(nh.CulturalFoodPreferences)
	vars["cookingSkillLevel"] = str(nh.CookingSkillLevel)
	vars["foodBudget"] = str(nh.FoodBudget)
	vars["eatingSchedule"] = str(nh.EatingSchedule)
	vars["snackingHabits"] = str(nh.SnackingHabits)
	vars["alcoholIntake"] = str(nh.AlcoholIntake)
	vars["supplementUse"] = list(nh.SupplementUse)

	bf := deref(req.BehavioralFactors)
	vars["motivationLevel"] = str(bf.MotivationLevel)
	vars["consistencyHistory"] = str(bf.ConsistencyHistory)
	vars["accountabilityPreference"] = str(bf.AccountabilityPreference)
	vars["pastSuccessFailurePatterns"] = str(bf.PastSuccessFailurePatterns)
	vars["relationshipWithFood"] = str(bf.RelationshipWithFood)
	vars["disorderedEatingHistory"] = str(bf.DisorderedEatingHistory)
	vars["stressEatingTendencies"] = str(bf.StressEatingTendencies)
	vars["supportSystem"] = str(bf.SupportSystem)

	mt := deref(req.MetricsTracking)
	vars["preferredProgressMetrics"] = list(mt.PreferredProgressMetrics)
	vars["trackingTools"] = list(mt.TrackingTools)
	vars["checkinFrequency"] = str(mt.CheckinFrequency)

	return vars
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func str(p *string) string { return deref(p) }

func list(v []string) string { return strings.Join(v, ", ") }

func integer(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func float(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func boolean(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}
