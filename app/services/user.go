package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/km-arc/diaita/app/clients"
	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/mappings"
	"github.com/km-arc/diaita/app/prompts"
	"github.com/km-arc/diaita/app/repos"
)

// ErrMissingUserID rejects requests that do not name a user.
var ErrMissingUserID = errors.New("services: user id is required")

type UserService struct {
	repo    *repos.UserRepo
	gemini  *clients.GeminiClient
	prompts *prompts.Factory
	log     *zap.Logger
}

func NewUserService(repo *repos.UserRepo, gemini *clients.GeminiClient, p *prompts.Factory, log *zap.Logger) *UserService {
	return &UserService{repo: repo, gemini: gemini, prompts: p, log: log.Named("users")}
}

// RegisterUserProfile stores the whole profile, then asks the model for a
// starting plan and stores that too. A profile without an id gets a fresh one.
func (s *UserService) RegisterUserProfile(ctx context.Context, req dto.RegisterUserProfileRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return ErrMissingUserID
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	if res := s.repo.UpsertFullProfile(req); res.Err != nil {
		s.log.Error("upsert profile failed", zap.String("user_id", req.UserID), zap.Error(res.Err))
		return res.Err
	}

	if err := s.generateRecommendations(ctx, req); err != nil {
		s.log.Error("generate recommendations failed", zap.String("user_id", req.UserID), zap.Error(err))
		return err
	}
	s.log.Info("user registered", zap.String("user_id", req.UserID), zap.String("profile_id", req.ID))
	return nil
}

func (s *UserService) generateRecommendations(ctx context.Context, req dto.RegisterUserProfileRequest) error {
	prompt, err := s.prompts.Render(prompts.RegisterUserMetadata, mappings.PromptVariables(req))
	if err != nil {
		return err
	}

	text, err := s.gemini.AskQuestionStream(ctx, prompt, nil, prompts.SystemInstruction, nil)
	if err != nil {
		return fmt.Errorf("ask for recommendations: %w", err)
	}

	if res := s.repo.SaveRecommendation(req.UserID, text, s.gemini.Model()); res.Err != nil {
		return fmt.Errorf("save recommendations: %w", res.Err)
	}
	return nil
}
