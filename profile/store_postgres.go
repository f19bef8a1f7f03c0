package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a pgx connection pool. The upsert is a
// single INSERT ... ON CONFLICT statement, so concurrent submissions for the
// same user cannot race a separate existence check against the write.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Upsert(ctx context.Context, p *HealthProfile) (*HealthProfile, bool, error) {
	// ON CONFLICT replaces every field except created_at; updated_at moves to
	// now() only on the update path. xmax = 0 holds for freshly inserted rows
	// and distinguishes created from updated in one round trip.
	query := `
		INSERT INTO health_profiles (
			user_id, height, weight, body_fat_percentage,
			health_conditions, medications, fitness_level, fitness_goals,
			preferred_exercises, avoid_exercises, available_equipment,
			workout_environment, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
		ON CONFLICT (user_id) DO UPDATE SET
			height              = EXCLUDED.height,
			weight              = EXCLUDED.weight,
			body_fat_percentage = EXCLUDED.body_fat_percentage,
			health_conditions   = EXCLUDED.health_conditions,
			medications         = EXCLUDED.medications,
			fitness_level       = EXCLUDED.fitness_level,
			fitness_goals       = EXCLUDED.fitness_goals,
			preferred_exercises = EXCLUDED.preferred_exercises,
			avoid_exercises     = EXCLUDED.avoid_exercises,
			available_equipment = EXCLUDED.available_equipment,
			workout_environment = EXCLUDED.workout_environment,
			updated_at          = now()
		RETURNING user_id, height, weight, body_fat_percentage,
			health_conditions, medications, fitness_level, fitness_goals,
			preferred_exercises, avoid_exercises, available_equipment,
			workout_environment, created_at, updated_at,
			(xmax = 0) AS inserted`

	var stored HealthProfile
	var inserted bool
	err := s.pool.QueryRow(ctx, query,
		p.UserID, p.Height, p.Weight, p.BodyFatPercentage,
		p.HealthConditions, p.Medications, p.FitnessLevel, p.FitnessGoals,
		p.PreferredExercises, p.AvoidExercises, p.AvailableEquipment,
		p.WorkoutEnvironment,
	).Scan(
		&stored.UserID, &stored.Height, &stored.Weight, &stored.BodyFatPercentage,
		&stored.HealthConditions, &stored.Medications, &stored.FitnessLevel, &stored.FitnessGoals,
		&stored.PreferredExercises, &stored.AvoidExercises, &stored.AvailableEquipment,
		&stored.WorkoutEnvironment, &stored.CreatedAt, &stored.UpdatedAt,
		&inserted,
	)
	if err != nil {
		return nil, false, err
	}
	return &stored, inserted, nil
}

func (s *PostgresStore) GetByUserID(ctx context.Context, userID string) (*HealthProfile, error) {
	query := `
		SELECT user_id, height, weight, body_fat_percentage,
			health_conditions, medications, fitness_level, fitness_goals,
			preferred_exercises, avoid_exercises, available_equipment,
			workout_environment, created_at, updated_at
		FROM health_profiles
		WHERE user_id = $1`

	var p HealthProfile
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Height, &p.Weight, &p.BodyFatPercentage,
		&p.HealthConditions, &p.Medications, &p.FitnessLevel, &p.FitnessGoals,
		&p.PreferredExercises, &p.AvoidExercises, &p.AvailableEquipment,
		&p.WorkoutEnvironment, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}
