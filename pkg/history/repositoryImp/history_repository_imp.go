package repositoryImp

import (
	"rotopt/entities"
	"rotopt/pkg/history/repository"

	"gorm.io/gorm"
)

type historyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HistoryRepository { return &historyRepo{db} }

func (r *historyRepo) Create(h *entities.FieldHistory) error { return r.db.Create(h).Error }

func (r *historyRepo) ListByField(fieldID uint) ([]entities.FieldHistory, error) {
	var out []entities.FieldHistory
	if err := r.db.Where("field_id = ?", fieldID).Order("year ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
