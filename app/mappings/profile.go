package mappings

import (
	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/entity"
)

// ── Registration → rows ──────────────────────────────────────────────────────

func UserProfileRow(req dto.RegisterUserProfileRequest) entity.UserProfileRow {
	return entity.UserProfileRow{UserID: req.UserID, ProfileID: req.ID, Notes: req.Notes}
}

// ── dto ⇄ row, one pair per section ──────────────────────────────────────────

func BasicDemographicsRow(userID string, d dto.BasicDemographics) entity.BasicDemographicsRow {
	return entity.BasicDemographicsRow{
		UserID:                   userID,
		Age:                      d.Age,
		Sex:                      d.Sex,
		Gender:                   d.Gender,
		Height:                   d.Height,
		Weight:                   d.Weight,
		BodyFatPercentage:        d.BodyFatPercentage,
		LeanMass:                 d.LeanMass,
		BiologicalConsiderations: d.BiologicalConsiderations,
		MenstrualCycleInfo:       d.MenstrualCycleInfo,
	}
}

func BasicDemographicsDto(r entity.BasicDemographicsRow) dto.BasicDemographics {
	return dto.BasicDemographics{
		Age:                      r.Age,
		Sex:                      r.Sex,
		Gender:                   r.Gender,
		Height:                   r.Height,
		Weight:                   r.Weight,
		BodyFatPercentage:        r.BodyFatPercentage,
		LeanMass:                 r.LeanMass,
		BiologicalConsiderations: r.BiologicalConsiderations,
		MenstrualCycleInfo:       r.MenstrualCycleInfo,
	}
}

func ActivityLifestyleRow(userID string, d dto.ActivityLifestyle) entity.ActivityLifestyleRow {
	return entity.ActivityLifestyleRow{
		UserID:           userID,
		ActivityLevel:    d.ActivityLevel,
		DailyStepCount:   d.DailyStepCount,
		JobType:          d.JobType,
		CommuteTime:      d.CommuteTime,
		SleepDuration:    d.SleepDuration,
		SleepQuality:     d.SleepQuality,
		StressLevel:      d.StressLevel,
		RecoveryCapacity: d.RecoveryCapacity,
	}
}

func ActivityLifestyleDto(r entity.ActivityLifestyleRow) dto.ActivityLifestyle {
	return dto.ActivityLifestyle{
		ActivityLevel:    r.ActivityLevel,
		DailyStepCount:   r.DailyStepCount,
		JobType:          r.JobType,
		CommuteTime:      r.CommuteTime,
		SleepDuration:    r.SleepDuration,
		SleepQuality:     r.SleepQuality,
		StressLevel:      r.StressLevel,
		RecoveryCapacity: r.RecoveryCapacity,
	}
}

func GoalsPrioritiesRow(userID string, d dto.GoalsPriorities) entity.GoalsPrioritiesRow {
	return entity.GoalsPrioritiesRow{
		UserID:            userID,
		PrimaryGoal:       d.PrimaryGoal,
		SecondaryGoals:    d.SecondaryGoals,
		Timeframe:         d.Timeframe,
		TargetWeight:      d.TargetWeight,
		PerformanceMetric: d.PerformanceMetric,
		AestheticGoals:    d.AestheticGoals,
		HealthGoals:       d.HealthGoals,
	}
}

func GoalsPrioritiesDto(r entity.GoalsPrioritiesRow) dto.GoalsPriorities {
	return dto.GoalsPriorities{
		PrimaryGoal:       r.PrimaryGoal,
		SecondaryGoals:    r.SecondaryGoals,
		Timeframe:         r.Timeframe,
		TargetWeight:      r.TargetWeight,
		PerformanceMetric: r.PerformanceMetric,
		AestheticGoals:    r.AestheticGoals,
		HealthGoals:       r.HealthGoals,
	}
}

func TrainingBackgroundRow(userID string, d dto.TrainingBackground) entity.TrainingBackgroundRow {
	return entity.TrainingBackgroundRow{
		UserID:                userID,
		TrainingAge:           d.TrainingAge,
		TrainingHistory:       d.TrainingHistory,
		CurrentWorkoutRoutine: d.CurrentWorkoutRoutine,
		ExercisePreferences:   d.ExercisePreferences,
		ExerciseDislikes:      d.ExerciseDislikes,
		EquipmentAccess:       d.EquipmentAccess,
		TimePerSession:        d.TimePerSession,
		DaysPerWeek:           d.DaysPerWeek,
	}
}

func TrainingBackgroundDto(r entity.TrainingBackgroundRow) dto.TrainingBackground {
	return dto.TrainingBackground{
		TrainingAge:           r.TrainingAge,
		TrainingHistory:       r.TrainingHistory,
		CurrentWorkoutRoutine: r.CurrentWorkoutRoutine,
		ExercisePreferences:   r.ExercisePreferences,
		ExerciseDislikes:      r.ExerciseDislikes,
		EquipmentAccess:       r.EquipmentAccess,
		TimePerSession:        r.TimePerSession,
		DaysPerWeek:           r.DaysPerWeek,
	}
}

func MedicalHistoryRow(userID string, d dto.MedicalHistory) entity.MedicalHistoryRow {
	return entity.MedicalHistoryRow{
		UserID:               userID,
		Injuries:             d.Injuries,
		ChronicConditions:    d.ChronicConditions,
		PainPatterns:         d.PainPatterns,
		MobilityRestrictions: d.MobilityRestrictions,
		Medications:          d.Medications,
		DoctorRestrictions:   d.DoctorRestrictions,
	}
}

func MedicalHistoryDto(r entity.MedicalHistoryRow) dto.MedicalHistory {
	return dto.MedicalHistory{
		Injuries:             r.Injuries,
		ChronicConditions:    r.ChronicConditions,
		PainPatterns:         r.PainPatterns,
		MobilityRestrictions: r.MobilityRestrictions,
		Medications:          r.Medications,
		DoctorRestrictions:   r.DoctorRestrictions,
	}
}

func NutritionHistoryRow(userID string, d dto.NutritionDietHistory) entity.NutritionHistoryRow {
	return entity.NutritionHistoryRow{
		UserID:                    userID,
		CurrentDietPattern:        d.CurrentDietPattern,
		CalorieTrackingExperience: d.CalorieTrackingExperience,
		MacronutrientPreferences:  d.MacronutrientPreferences,
		FoodAllergies:             d.FoodAllergies,
		DietaryRestrictions:       d.DietaryRestrictions,
		CulturalFoodPreferences:   d.CulturalFoodPreferences,
		CookingSkillLevel:         d.CookingSkillLevel,
		FoodBudget:                d.FoodBudget,
		EatingSchedule:            d.EatingSchedule,
		SnackingHabits:            d.SnackingHabits,
		AlcoholIntake:             d.AlcoholIntake,
		SupplementUse:             d.SupplementUse,
	}
}

func NutritionHistoryDto(r entity.NutritionHistoryRow) dto.NutritionDietHistory {
	return dto.NutritionDietHistory{
		CurrentDietPattern:        r.CurrentDietPattern,
		CalorieTrackingExperience: r.CalorieTrackingExperience,
		MacronutrientPreferences:  r.MacronutrientPreferences,
		FoodAllergies:             r.FoodAllergies,
		DietaryRestrictions:       r.DietaryRestrictions,
		CulturalFoodPreferences:   r.CulturalFoodPreferences,
		CookingSkillLevel:         r.CookingSkillLevel,
		FoodBudget:                r.FoodBudget,
		EatingSchedule:            r.EatingSchedule,
		SnackingHabits:            r.SnackingHabits,
		AlcoholIntake:             r.AlcoholIntake,
		SupplementUse:             r.SupplementUse,
	}
}

func BehavioralFactorsRow(userID string, d dto.BehavioralFactors) entity.BehavioralFactorsRow {
	return entity.BehavioralFactorsRow{
		UserID:                     userID,
		MotivationLevel:            d.MotivationLevel,
		ConsistencyHistory:         d.ConsistencyHistory,
		AccountabilityPreference:   d.AccountabilityPreference,
		PastSuccessFailurePatterns: d.PastSuccessFailurePatterns,
		RelationshipWithFood:       d.RelationshipWithFood,
		DisorderedEatingHistory:    d.DisorderedEatingHistory,
		StressEatingTendencies:     d.StressEatingTendencies,
		SupportSystem:              d.SupportSystem,
	}
}

func BehavioralFactorsDto(r entity.BehavioralFactorsRow) dto.BehavioralFactors {
	return dto.BehavioralFactors{
		MotivationLevel:            r.MotivationLevel,
		ConsistencyHistory:         r.ConsistencyHistory,
		AccountabilityPreference:   r.AccountabilityPreference,
		PastSuccessFailurePatterns: r.PastSuccessFailurePatterns,
		RelationshipWithFood:       r.RelationshipWithFood,
		DisorderedEatingHistory:    r.DisorderedEatingHistory,
		StressEatingTendencies:     r.StressEatingTendencies,
		SupportSystem:              r.SupportSystem,
	}
}

func MetricsTrackingRow(userID string, d dto.MetricsTracking) entity.MetricsTrackingRow {
	return entity.MetricsTrackingRow{
		UserID:                   userID,
		PreferredProgressMetrics: d.PreferredProgressMetrics,
		TrackingTools:            d.TrackingTools,
		CheckinFrequency:         d.CheckinFrequency,
	}
}

func MetricsTrackingDto(r entity.MetricsTrackingRow) dto.MetricsTracking {
	return dto.MetricsTracking{
		PreferredProgressMetrics: r.PreferredProgressMetrics,
		TrackingTools:            r.TrackingTools,
		CheckinFrequency:         r.CheckinFrequency,
	}
}
