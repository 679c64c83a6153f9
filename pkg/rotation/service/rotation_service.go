package service

import (
	"context"

	"rotopt/entities"
	"rotopt/pkg/rotation/types"
)

type RotationService interface {
	// GenerateOptimalRotation runs both search strategies over the field and
	// returns (and persists) the winning plan. A zero horizon means the
	// default; a negative one is rejected with types.ErrInvalidHorizon.
	GenerateOptimalRotation(ctx context.Context, field *entities.Field, goals []types.RotationGoal, constraints []types.RotationConstraint, horizon int) (*entities.RotationPlan, error)

	ListByField(fieldID uint) ([]entities.RotationPlan, error)
	LatestByField(fieldID uint) (*entities.RotationPlan, error)
}
