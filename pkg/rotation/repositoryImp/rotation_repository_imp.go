package repositoryImp

import (
	"rotopt/entities"
	"rotopt/pkg/rotation/repository"

	"gorm.io/gorm"
)

type rotationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RotationRepository { return &rotationRepo{db} }

func (r *rotationRepo) Create(p *entities.RotationPlan) error { return r.db.Create(p).Error }

func (r *rotationRepo) LatestByField(fieldID uint) (*entities.RotationPlan, error) {
	var p entities.RotationPlan
	if err := r.db.Preload("Years").Where("field_id = ?", fieldID).Order("plan_id DESC").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *rotationRepo) ListByField(fieldID uint) ([]entities.RotationPlan, error) {
	var ps []entities.RotationPlan
	if err := r.db.Preload("Years").Where("field_id = ?", fieldID).Order("plan_id ASC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}
