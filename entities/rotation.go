package entities

import "time"

type RotationPlan struct {
	PlanID          uint    `gorm:"primaryKey" json:"plan_id"`
	FieldID         uint    `json:"field_id" gorm:"index"`
	FarmID          string  `json:"farm_id"`
	PlanningHorizon int     `json:"planning_horizon"`
	OverallScore    float64 `json:"overall_score"`

	Years []RotationYear `gorm:"foreignKey:PlanID" json:"rotation_years"`

	// Normalized benefit scores for the winning rotation, keyed by dimension.
	BenefitAnalysis map[string]float64 `gorm:"serializer:json" json:"benefit_analysis"`

	GoalIDs       []string `gorm:"serializer:json" json:"goals_addressed,omitempty"`
	ConstraintIDs []string `gorm:"serializer:json" json:"constraints_addressed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type RotationYear struct {
	YearID          uint    `gorm:"primaryKey" json:"year_id"`
	PlanID          uint    `gorm:"index" json:"plan_id"`
	Year            int     `json:"year"`
	CropName        string  `json:"crop_name"`
	EstimatedYield  float64 `json:"estimated_yield"`
	YieldUnit       string  `json:"yield_unit"`
	ConfidenceScore float64 `json:"confidence_score"`

	PlantingWindow string `json:"planting_window"`
	SeedingRate    string `json:"seeding_rate"`
	PlantingDepth  string `json:"planting_depth"`
	RowSpacing     string `json:"row_spacing"`

	ManagementNotes []string `gorm:"serializer:json" json:"management_notes,omitempty"`
	Benefits        []string `gorm:"serializer:json" json:"benefits,omitempty"`

	CreatedAt time.Time
}
