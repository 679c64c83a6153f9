package repository

import "rotopt/entities"

type RotationRepository interface {
	Create(p *entities.RotationPlan) error
	LatestByField(fieldID uint) (*entities.RotationPlan, error)
	ListByField(fieldID uint) ([]entities.RotationPlan, error)
}
