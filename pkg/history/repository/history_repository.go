package repository

import "rotopt/entities"

type HistoryRepository interface {
	Create(h *entities.FieldHistory) error
	ListByField(fieldID uint) ([]entities.FieldHistory, error)
}
