package services

import (
	"strings"

	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/entity"
	"github.com/km-arc/diaita/app/mappings"
	"github.com/km-arc/diaita/app/repos"
)

// Section describes one profile section: the URL slug it is served under,
// its table and the conversions between its DTO D and row R.
type Section[D, R any] struct {
	Slug  string
	Table string
	ToRow func(userID string, d D) R
	ToDto func(R) D
}

var (
	BasicDemographicsSection = Section[dto.BasicDemographics, entity.BasicDemographicsRow]{
		"basic-demographics", repos.TableBasicDemographics, mappings.BasicDemographicsRow, mappings.BasicDemographicsDto,
	}
	ActivityLifestyleSection = Section[dto.ActivityLifestyle, entity.ActivityLifestyleRow]{
		"activity-lifestyle", repos.TableActivityLifestyle, mappings.ActivityLifestyleRow, mappings.ActivityLifestyleDto,
	}
	GoalsPrioritiesSection = Section[dto.GoalsPriorities, entity.GoalsPrioritiesRow]{
		"goals-priorities", repos.TableGoalsPriorities, mappings.GoalsPrioritiesRow, mappings.GoalsPrioritiesDto,
	}
	TrainingBackgroundSection = Section[dto.TrainingBackground, entity.TrainingBackgroundRow]{
		"training-background", repos.TableTrainingBackground, mappings.TrainingBackgroundRow, mappings.TrainingBackgroundDto,
	}
	MedicalHistorySection = Section[dto.MedicalHistory, entity.MedicalHistoryRow]{
		"medical-history", repos.TableMedicalHistory, mappings.MedicalHistoryRow, mappings.MedicalHistoryDto,
	}
	NutritionHistorySection = Section[dto.NutritionDietHistory, entity.NutritionHistoryRow]{
		"nutrition-history", repos.TableNutritionHistory, mappings.NutritionHistoryRow, mappings.NutritionHistoryDto,
	}
	BehavioralFactorsSection = Section[dto.BehavioralFactors, entity.BehavioralFactorsRow]{
		"behavioral-factors", repos.TableBehavioralFactors, mappings.BehavioralFactorsRow, mappings.BehavioralFactorsDto,
	}
	MetricsTrackingSection = Section[dto.MetricsTracking, entity.MetricsTrackingRow]{
		"metrics-tracking", repos.TableMetricsTracking, mappings.MetricsTrackingRow, mappings.MetricsTrackingDto,
	}
)

func GetSection[D, R any](s *UserService, sec Section[D, R], userID string) (*D, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	res := repos.GetSection[R](s.repo, sec.Table, userID)
	if res.Err != nil {
		return nil, res.Err
	}
	d := sec.ToDto(res.Body)
	return &d, nil
}

// UpdateSection replaces the section of userID with d and returns what was
// stored.
func UpdateSection[D, R any](s *UserService, sec Section[D, R], userID string, d D) (*D, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	res := repos.UpdateSection(s.repo, sec.Table, sec.ToRow(userID, d), userID)
	if res.Err != nil {
		return nil, res.Err
	}
	out := sec.ToDto(res.Body)
	return &out, nil
}

func DeleteSection[D, R any](s *UserService, sec Section[D, R], userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingUserID
	}
	return s.repo.DeleteSection(sec.Table, userID).Err
}
