// Package profile implements per-user health profile storage: a single
// profile per user, created on first submission and wholly replaced on every
// subsequent one.
package profile

import "time"

// HealthProfile is the health profile record as stored and as returned by
// the API. Each user owns at most one; UserID is the primary key.
type HealthProfile struct {
	UserID string `json:"user_id"`
	// Height in centimeters.
	Height float64 `json:"height"`
	// Weight in kilograms.
	Weight float64 `json:"weight"`
	// Optional; nil when the user has not measured it.
	BodyFatPercentage *float64 `json:"body_fat_percentage,omitempty"`
	HealthConditions  []string `json:"health_conditions"`
	Medications       []string `json:"medications"`
	// One of beginner/intermediate/advanced by convention; stored as given.
	FitnessLevel       string   `json:"fitness_level"`
	FitnessGoals       []string `json:"fitness_goals"`
	PreferredExercises []string `json:"preferred_exercises"`
	AvoidExercises     []string `json:"avoid_exercises"`
	AvailableEquipment []string `json:"available_equipment"`
	// Free text, e.g. home, gym, outdoor.
	WorkoutEnvironment string    `json:"workout_environment"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
