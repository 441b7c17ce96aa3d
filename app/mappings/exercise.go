package mappings

import (
	"strings"

	"github.com/km-arc/diaita/app/database"
	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/entity"
)

// ExerciseDescription joins the non-blank equipment, mechanics, utility and
// force attributes: "Equipment: x | Mechanics: y | Utility: z | Force: w".
// It returns nil when all four are blank.
func ExerciseDescription(e entity.Exercise) *string {
	attrs := []struct {
		label string
		value *string
	}{
		{"Equipment", e.Equipment},
		{"Mechanics", e.Mechanics},
		{"Utility", e.Utility},
		{"Force", e.Force},
	}

	var parts []string
	for _, a := range attrs {
		if a.value != nil && strings.TrimSpace(*a.value) != "" {
			parts = append(parts, a.label+": "+*a.value)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, " | ")
	return &s
}

func ExerciseToDto(e entity.Exercise) dto.Exercise {
	return dto.Exercise{
		ID:                    e.ID,
		Exercise:              e.Exercise,
		ExerciseType:          e.ExerciseType,
		ExerciseVariation:     e.ExerciseVariation,
		PrimaryFitnessFocus:   e.PrimaryFitnessFocus,
		SecondaryFitnessFocus: e.SecondaryFitnessFocus,
		Description:           ExerciseDescription(e),
	}
}

// Pagination derives the response metadata for a page.
func Pagination(total, page, pageSize int, hasMore bool) dto.PaginationMetadata {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return dto.PaginationMetadata{
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasMore:     hasMore,
		HasPrevious: page > 0,
	}
}

func WorkoutSearchResponse(p database.Paginated[entity.Exercise]) dto.WorkoutSearchResponse {
	exercises := make([]dto.Exercise, len(p.Data))
	for i, e := range p.Data {
		exercises[i] = ExerciseToDto(e)
	}
	return dto.WorkoutSearchResponse{
		Exercises:  exercises,
		Pagination: Pagination(p.Total, p.Page, p.PageSize, p.HasMore),
	}
}
