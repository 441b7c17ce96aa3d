// Package entity holds the Postgrest row shapes (snake_case JSON).
package entity

// Exercise is one row of the exercises table.
type Exercise struct {
	ID                    *int    `json:"id,omitempty"`
	Exercise              string  `json:"exercise"`
	ExerciseType          *string `json:"exercise_type,omitempty"`
	ExerciseVariation     *string `json:"exercise_variation,omitempty"`
	PrimaryFitnessFocus   *string `json:"primary_fitness_focus,omitempty"`
	SecondaryFitnessFocus *string `json:"secondary_fitness_focus,omitempty"`
	Equipment             *string `json:"equipment,omitempty"`
	Mechanics             *string `json:"mechanics,omitempty"`
	Utility               *string `json:"utility,omitempty"`
	Force                 *string `json:"force,omitempty"`
	CreatedAt             *string `json:"created_at,omitempty"`
	UpdatedAt             *string `json:"updated_at,omitempty"`
}
