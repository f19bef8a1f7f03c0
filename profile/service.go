// Package profile, service layer for health profile management.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/healthcoach-go/apperror"
)

// Service provides health profile upsert and retrieval on top of a Store.
type Service struct {
	store Store
}

// NewService creates a new Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Upsert stores the submitted profile for the given user, creating it on
// first submission and fully replacing it afterwards.
func (s *Service) Upsert(ctx context.Context, userID string, req UpsertRequest) (*UpsertResponse, error) {
	p := &HealthProfile{
		UserID:             userID,
		Height:             req.Height,
		Weight:             req.Weight,
		BodyFatPercentage:  req.BodyFatPercentage,
		HealthConditions:   emptyIfNil(req.HealthConditions),
		Medications:        emptyIfNil(req.Medications),
		FitnessLevel:       req.FitnessLevel,
		FitnessGoals:       emptyIfNil(req.FitnessGoals),
		PreferredExercises: emptyIfNil(req.PreferredExercises),
		AvoidExercises:     emptyIfNil(req.AvoidExercises),
		AvailableEquipment: emptyIfNil(req.AvailableEquipment),
		WorkoutEnvironment: req.WorkoutEnvironment,
	}

	stored, created, err := s.store.Upsert(ctx, p)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to save health profile", err)
	}

	action := "updated"
	if created {
		action = "created"
	}
	return &UpsertResponse{
		Message: fmt.Sprintf("health profile %s", action),
		Action:  action,
		Profile: *stored,
	}, nil
}

// Get returns the profile owned by the given user.
func (s *Service) Get(ctx context.Context, userID string) (*HealthProfile, error) {
	p, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, apperror.NewNotFoundError("health profile not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get health profile", err)
	}
	return p, nil
}

// emptyIfNil normalizes absent list fields to empty lists so a submission
// that omits them still replaces the stored value, and responses serialize
// as [] rather than null.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
