package dto

import (
	"strings"

	"github.com/km-arc/diaita/framework/http/validation"
)

// WorkoutSearchRequest filters the exercise catalogue. Page is zero-based.
type WorkoutSearchRequest struct {
	Exercise            *string `json:"exercise,omitempty"`
	ExerciseType        *string `json:"exerciseType,omitempty"`
	ExerciseVariation   *string `json:"exerciseVariation,omitempty"`
	PrimaryFitnessFocus *string `json:"primaryFitnessFocus,omitempty"`
	Page                int     `json:"page"`
	PageSize            int     `json:"pageSize"`
}

const DefaultPageSize = 20

// NewWorkoutSearchRequest returns a request with the default page size, ready
// to be decoded into.
func NewWorkoutSearchRequest() *WorkoutSearchRequest {
	return &WorkoutSearchRequest{PageSize: DefaultPageSize}
}

// HasFilter reports whether any filter field is non-blank.
func (r *WorkoutSearchRequest) HasFilter() bool {
	for _, f := range []*string{r.Exercise, r.ExerciseType, r.ExerciseVariation, r.PrimaryFitnessFocus} {
		if f != nil && strings.TrimSpace(*f) != "" {
			return true
		}
	}
	return false
}

// Validate implements validation.SelfValidator.
func (r *WorkoutSearchRequest) Validate(errs *validation.Errors) {
	if r.Page < 0 {
		errs.Add("page", "Page number must be non-negative")
	}
	if r.PageSize < 1 || r.PageSize > 100 {
		errs.Add("pageSize", "Page size must be between 1 and 100")
	}
	if !r.HasFilter() {
		errs.Add("filters", "At least one search filter must be provided")
	}
}

type WorkoutSearchResponse struct {
	Exercises  []Exercise         `json:"exercises"`
	Pagination PaginationMetadata `json:"pagination"`
}

type Exercise struct {
	ID                    *int    `json:"id,omitempty"`
	Exercise              string  `json:"exercise"`
	ExerciseType          *string `json:"exerciseType,omitempty"`
	ExerciseVariation     *string `json:"exerciseVariation,omitempty"`
	PrimaryFitnessFocus   *string `json:"primaryFitnessFocus,omitempty"`
	SecondaryFitnessFocus *string `json:"secondaryFitnessFocus,omitempty"`
	Description           *string `json:"description,omitempty"`
}

type PaginationMetadata struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasMore     bool `json:"hasMore"`
	HasPrevious bool `json:"hasPrevious"`
}
