// Package services holds the application use cases behind the controllers.
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/mappings"
	"github.com/km-arc/diaita/app/repos"
)

type WorkoutService struct {
	repo *repos.WorkoutRepo
	log  *zap.Logger
}

func NewWorkoutService(repo *repos.WorkoutRepo, log *zap.Logger) *WorkoutService {
	return &WorkoutService{repo: repo, log: log.Named("workouts")}
}

func (s *WorkoutService) SearchWorkouts(ctx context.Context, req dto.WorkoutSearchRequest) (*dto.WorkoutSearchResponse, error) {
	res := s.repo.SearchExercises(req)
	if res.Err != nil {
		s.log.Error("search exercises failed", zap.Error(res.Err))
		return nil, res.Err
	}
	resp := mappings.WorkoutSearchResponse(res.Body)
	s.log.Debug("search exercises",
		zap.Int("total", resp.Pagination.Total),
		zap.Int("page", resp.Pagination.Page),
	)
	return &resp, nil
}
