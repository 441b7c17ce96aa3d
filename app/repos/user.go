package repos

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/km-arc/diaita/app/database"
	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/entity"
	"github.com/km-arc/diaita/app/mappings"
)

// Profile tables. Every one is keyed by user_id.
const (
	TableUserProfile         = "user_profile"
	TableBasicDemographics   = "basic_demographics"
	TableActivityLifestyle   = "activity_lifestyle"
	TableGoalsPriorities     = "goals_priorities"
	TableTrainingBackground  = "training_background"
	TableMedicalHistory      = "medical_history"
	TableNutritionHistory    = "nutrition_history"
	TableBehavioralFactors   = "behavioral_factors"
	TableMetricsTracking     = "metrics_tracking"
	TableUserRecommendations = "user_recommendations"

	userKey = "user_id"
)

type UserRepo struct {
	db *database.Manager
}

func NewUserRepo(db *database.Manager) *UserRepo {
	return &UserRepo{db: db}
}

// UpsertFullProfile writes the profile row, the three mandatory sections and
// each optional section that is present, in that order. It stops at the first
// failure; rows already written stay written.
func (r *UserRepo) UpsertFullProfile(req dto.RegisterUserProfileRequest) database.Result[struct{}] {
	uid := req.UserID
	type write struct {
		table string
		row   any
	}
	writes := []write{
		{TableUserProfile, mappings.UserProfileRow(req)},
		{TableBasicDemographics, mappings.BasicDemographicsRow(uid, req.BasicDemographics)},
		{TableActivityLifestyle, mappings.ActivityLifestyleRow(uid, req.ActivityLifestyle)},
		{TableGoalsPriorities, mappings.GoalsPrioritiesRow(uid, req.Goals)},
	}
	if s := req.TrainingBackground; s != nil {
		writes = append(writes, write{TableTrainingBackground, mappings.TrainingBackgroundRow(uid, *s)})
	}
	if s := req.MedicalHistory; s != nil {
		writes = append(writes, write{TableMedicalHistory, mappings.MedicalHistoryRow(uid, *s)})
	}
	if s := req.NutritionHistory; s != nil {
		writes = append(writes, write{TableNutritionHistory, mappings.NutritionHistoryRow(uid, *s)})
	}
	if s := req.BehavioralFactors; s != nil {
		writes = append(writes, write{TableBehavioralFactors, mappings.BehavioralFactorsRow(uid, *s)})
	}
	if s := req.MetricsTracking; s != nil {
		writes = append(writes, write{TableMetricsTracking, mappings.MetricsTrackingRow(uid, *s)})
	}

	for _, w := range writes {
		if res := database.Upsert(r.db, w.table, w.row, userKey); res.Err != nil {
			return database.Result[struct{}]{Err: fmt.Errorf("upsert profile %s: %w", uid, res.Err)}
		}
	}
	return database.Result[struct{}]{}
}

// GetSection reads the row of table belonging to userID.
func GetSection[R any](r *UserRepo, table, userID string) database.Result[R] {
	return database.SelectSingle[R](r.db, table, userKey, userID)
}

// UpdateSection overwrites the row of table belonging to userID.
func UpdateSection[R any](r *UserRepo, table string, row R, userID string) database.Result[R] {
	return database.Update(r.db, table, row, userKey, userID)
}

// DeleteSection removes the row of table belonging to userID.
func (r *UserRepo) DeleteSection(table, userID string) database.Result[struct{}] {
	return database.Delete(r.db, table, userKey, userID)
}

// SaveRecommendation stores a generated plan under a fresh id.
func (r *UserRepo) SaveRecommendation(userID, recommendation, model string) database.Result[entity.UserRecommendationRow] {
	return database.Insert(r.db, TableUserRecommendations, entity.UserRecommendationRow{
		ID:             uuid.NewString(),
		UserID:         userID,
		Recommendation: recommendation,
		Model:          model,
	})
}
