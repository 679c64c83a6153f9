package entities

import "time"

type Field struct {
	FieldID       uint    `gorm:"primaryKey" json:"field_id"`
	UserID        string  `json:"user_id" gorm:"index"`
	FarmID        string  `json:"farm_id" gorm:"index"`
	FieldName     string  `json:"field_name"`
	SizeAcres     float64 `json:"size_acres"`
	SoilType      string  `json:"soil_type"`      // silt_loam|loam|clay|sandy_loam
	DrainageClass string  `json:"drainage_class"` // well_drained|moderately_drained|poorly_drained
	ClimateZone   string  `json:"climate_zone"`   // USDA hardiness zone, e.g. 4b, 5a

	History []FieldHistory `gorm:"foreignKey:FieldID" json:"history,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type FieldHistory struct {
	HistoryID uint     `gorm:"primaryKey" json:"history_id"`
	FieldID   uint     `gorm:"index" json:"field_id"`
	Year      int      `json:"year"`
	Crop      string   `json:"crop"`
	Yield     *float64 `json:"yield,omitempty"`
	Practices string   `json:"practices"` // tillage, cover crop, manure, etc.
	CreatedAt time.Time
}
