package types

import (
	"errors"

	"rotopt/entities"
	"rotopt/pkg/climate"
	"rotopt/pkg/knowledge"
	"rotopt/pkg/market"
)

// ErrInvalidHorizon is returned at the service boundary for a non-positive
// planning horizon instead of letting the engine emit a zero-length plan.
var ErrInvalidHorizon = errors.New("planning horizon must be a positive number of years")

const DefaultHorizon = 5

type GoalType string

const (
	GoalSoilHealth     GoalType = "SOIL_HEALTH"
	GoalProfit         GoalType = "PROFIT_MAXIMIZATION"
	GoalPestManagement GoalType = "PEST_MANAGEMENT"
	GoalSustainability GoalType = "SUSTAINABILITY"
)

type RotationGoal struct {
	GoalID   string   `json:"goal_id"`
	GoalType GoalType `json:"goal_type"`
	Priority int      `json:"priority"` // informational only
	Weight   float64  `json:"weight"`
}

type ConstraintType string

const (
	ConstraintRequiredCrop   ConstraintType = "REQUIRED_CROP"
	ConstraintExcludedCrop   ConstraintType = "EXCLUDED_CROP"
	ConstraintMaxConsecutive ConstraintType = "MAX_CONSECUTIVE"
)

// RotationConstraint is soft even when IsHard is set: a hard constraint only
// raises the fitness penalty, it never makes a candidate infeasible.
type RotationConstraint struct {
	ConstraintID string         `json:"constraint_id"`
	Type         ConstraintType `json:"constraint_type"`
	CropName     string         `json:"crop_name"`
	MaxInARow    int            `json:"max_consecutive,omitempty"`
	IsHard       bool           `json:"is_hard_constraint"`
}

// Rotation is the candidate genome: one crop per planning year.
type Rotation []string

func (r Rotation) Clone() Rotation {
	out := make(Rotation, len(r))
	copy(out, r)
	return out
}

// Context is assembled once per optimization request and read-only afterward;
// every search operator and the evaluator consume the same value.
type Context struct {
	Field       *entities.Field
	Goals       []RotationGoal
	Constraints []RotationConstraint
	Horizon     int

	AvailableCrops []string
	Tables         knowledge.Tables
	Market         map[string]market.Quote
	Climate        climate.Snapshot
}

// HasCrop reports whether crop is in the context's available set.
func (c *Context) HasCrop(crop string) bool {
	for _, a := range c.AvailableCrops {
		if a == crop {
			return true
		}
	}
	return false
}

// BenefitScores are the six normalized benefit dimensions, each in [0, 100].
type BenefitScores struct {
	NitrogenFixation  float64 `json:"nitrogen_fixation"`
	SoilOrganicMatter float64 `json:"soil_organic_matter"`
	ErosionControl    float64 `json:"erosion_control"`
	PestManagement    float64 `json:"pest_management"`
	WeedSuppression   float64 `json:"weed_suppression"`
	EconomicValue     float64 `json:"economic_value"`
}

func (b BenefitScores) Map() map[string]float64 {
	return map[string]float64{
		"nitrogen_fixation":   b.NitrogenFixation,
		"soil_organic_matter": b.SoilOrganicMatter,
		"erosion_control":     b.ErosionControl,
		"pest_management":     b.PestManagement,
		"weed_suppression":    b.WeedSuppression,
		"economic_value":      b.EconomicValue,
	}
}

// Params tunes the two search algorithms. Zero values are replaced by the
// defaults below, so an empty Params is a valid configuration. The flip side:
// an explicit rate of exactly 0 (never crossover, never mutate) is not
// expressible; the closest configuration is a vanishingly small positive rate.
type Params struct {
	PopulationSize int
	Generations    int
	EliteSize      int
	TournamentSize int
	CrossoverRate  float64
	MutationRate   float64

	InitialTemperature float64
	CoolingRate        float64
	MinTemperature     float64
	MaxIterations      int
}

func (p Params) WithDefaults() Params {
	if p.PopulationSize <= 0 {
		p.PopulationSize = 50
	}
	if p.Generations <= 0 {
		p.Generations = 100
	}
	if p.EliteSize <= 0 {
		p.EliteSize = 5
	}
	if p.TournamentSize <= 0 {
		p.TournamentSize = 3
	}
	if p.CrossoverRate <= 0 {
		p.CrossoverRate = 0.8
	}
	if p.MutationRate <= 0 {
		p.MutationRate = 0.1
	}
	if p.InitialTemperature <= 0 {
		p.InitialTemperature = 1000.0
	}
	if p.CoolingRate <= 0 {
		p.CoolingRate = 0.95
	}
	if p.MinTemperature <= 0 {
		p.MinTemperature = 0.01
	}
	if p.MaxIterations <= 0 {
		p.MaxIterations = 1000
	}
	return p
}
