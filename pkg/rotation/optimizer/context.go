package optimizer

import (
	"rotopt/entities"
	"rotopt/pkg/climate"
	"rotopt/pkg/knowledge"
	"rotopt/pkg/market"
	"rotopt/pkg/rotation/types"
)

// BuildContext assembles the read-only context one optimization run works
// over. Pure construction: nothing here touches storage or mutates its
// inputs.
func BuildContext(
	field *entities.Field,
	goals []types.RotationGoal,
	constraints []types.RotationConstraint,
	horizon int,
	tables knowledge.Tables,
	mkt market.Provider,
	clim climate.Provider,
) (*types.Context, error) {
	if horizon == 0 {
		horizon = types.DefaultHorizon
	}
	if horizon < 0 {
		return nil, types.ErrInvalidHorizon
	}

	crops := availableCrops(field)
	return &types.Context{
		Field:          field,
		Goals:          goals,
		Constraints:    constraints,
		Horizon:        horizon,
		AvailableCrops: crops,
		Tables:         tables,
		Market:         mkt.Quotes(crops),
		Climate:        clim.Snapshot(field.ClimateZone),
	}, nil
}

// availableCrops derives the crop set from the field's physical profile:
// the base four everywhere, alfalfa on larger well-drained ground, barley in
// cold zones.
func availableCrops(f *entities.Field) []string {
	crops := []string{knowledge.Corn, knowledge.Soybean, knowledge.Wheat, knowledge.Oats}
	if f.SizeAcres > 40 && f.DrainageClass == "well_drained" {
		crops = append(crops, knowledge.Alfalfa)
	}
	if climate.ColdZones[f.ClimateZone] {
		crops = append(crops, knowledge.Barley)
	}
	return crops
}
