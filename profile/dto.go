// Package profile, DTOs for the health profile endpoints.
package profile

// UpsertRequest carries every stored profile field. Submissions are a full
// replacement, not a patch: a field omitted from the JSON body lands here as
// its zero value and is stored as such, never merged with the previous
// profile.
type UpsertRequest struct {
	Height             float64  `json:"height" example:"170"`
	Weight             float64  `json:"weight" example:"65"`
	BodyFatPercentage  *float64 `json:"body_fat_percentage,omitempty" example:"18.5"`
	HealthConditions   []string `json:"health_conditions"`
	Medications        []string `json:"medications"`
	FitnessLevel       string   `json:"fitness_level" example:"beginner"`
	FitnessGoals       []string `json:"fitness_goals"`
	PreferredExercises []string `json:"preferred_exercises"`
	AvoidExercises     []string `json:"avoid_exercises"`
	AvailableEquipment []string `json:"available_equipment"`
	WorkoutEnvironment string   `json:"workout_environment" example:"home"`
}

// UpsertResponse reports what happened to the submission and echoes the
// stored record.
type UpsertResponse struct {
	Message string `json:"message" example:"health profile created"`
	// "created" on first submission, "updated" on every later one.
	Action  string        `json:"action" example:"created"`
	Profile HealthProfile `json:"profile"`
}
