// Package repos maps domain queries onto the generic database operations.
package repos

import (
	"strings"

	"github.com/km-arc/diaita/app/database"
	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/entity"
)

const TableExercises = "exercises"

type WorkoutRepo struct {
	db *database.Manager
}

func NewWorkoutRepo(db *database.Manager) *WorkoutRepo {
	return &WorkoutRepo{db: db}
}

// SearchExercises pages through exercises matching the request filters. A
// request with no usable filter yields an empty page without a query.
func (r *WorkoutRepo) SearchExercises(req dto.WorkoutSearchRequest) database.Result[database.Paginated[entity.Exercise]] {
	filters := ExerciseFilters(req)
	if len(filters) == 0 {
		return database.Result[database.Paginated[entity.Exercise]]{Body: database.Paginated[entity.Exercise]{
			Data:     []entity.Exercise{},
			Page:     req.Page,
			PageSize: req.PageSize,
		}}
	}
	return database.SelectWithFilters[entity.Exercise](r.db, TableExercises, filters, req.Page, req.PageSize)
}

// ExerciseFilters translates the non-blank request fields into column
// filters. exercise_type is matched exactly, the rest by substring.
func ExerciseFilters(req dto.WorkoutSearchRequest) map[string]database.Filter {
	filters := map[string]database.Filter{}
	add := func(column string, op database.Op, v *string) {
		if v == nil {
			return
		}
		if s := strings.TrimSpace(*v); s != "" {
			filters[column] = database.Filter{Op: op, Value: s}
		}
	}
	add("exercise", database.OpIlike, req.Exercise)
	add("exercise_type", database.OpEq, req.ExerciseType)
	add("exercise_variation", database.OpIlike, req.ExerciseVariation)
	add("primary_fitness_focus", database.OpIlike, req.PrimaryFitnessFocus)
	return filters
}
