package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotopt/entities"
	"rotopt/pkg/climate"
	"rotopt/pkg/knowledge"
	"rotopt/pkg/market"
	"rotopt/pkg/rotation/types"
)

func buildTestContext(t *testing.T, field *entities.Field, goals []types.RotationGoal, constraints []types.RotationConstraint, horizon int) *types.Context {
	t.Helper()
	ctx, err := BuildContext(field, goals, constraints, horizon, knowledge.Default(), market.NewStatic(), climate.NewStatic())
	require.NoError(t, err)
	return ctx
}

func TestBuildContext_BaseCrops(t *testing.T) {
	f := &entities.Field{FieldID: 1, SizeAcres: 20, DrainageClass: "poorly_drained", ClimateZone: "5b"}
	ctx := buildTestContext(t, f, nil, nil, 5)
	assert.ElementsMatch(t, []string{"corn", "soybean", "wheat", "oats"}, ctx.AvailableCrops)
}

func TestBuildContext_AlfalfaNeedsSizeAndDrainage(t *testing.T) {
	tests := []struct {
		name     string
		acres    float64
		drainage string
		want     bool
	}{
		{"large well drained", 80, "well_drained", true},
		{"exactly 40 acres", 40, "well_drained", false},
		{"large poorly drained", 80, "poorly_drained", false},
		{"small well drained", 10, "well_drained", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &entities.Field{SizeAcres: tt.acres, DrainageClass: tt.drainage, ClimateZone: "6a"}
			ctx := buildTestContext(t, f, nil, nil, 5)
			assert.Equal(t, tt.want, ctx.HasCrop("alfalfa"))
		})
	}
}

func TestBuildContext_BarleyInColdZones(t *testing.T) {
	for _, zone := range []string{"4a", "4b", "5a"} {
		f := &entities.Field{SizeAcres: 20, ClimateZone: zone}
		ctx := buildTestContext(t, f, nil, nil, 5)
		assert.True(t, ctx.HasCrop("barley"), "zone %s should allow barley", zone)
	}
	f := &entities.Field{SizeAcres: 20, ClimateZone: "6a"}
	ctx := buildTestContext(t, f, nil, nil, 5)
	assert.False(t, ctx.HasCrop("barley"))
}

func TestBuildContext_HorizonDefaultsAndValidation(t *testing.T) {
	f := &entities.Field{SizeAcres: 20, ClimateZone: "5b"}

	ctx := buildTestContext(t, f, nil, nil, 0)
	assert.Equal(t, types.DefaultHorizon, ctx.Horizon)

	_, err := BuildContext(f, nil, nil, -1, knowledge.Default(), market.NewStatic(), climate.NewStatic())
	assert.ErrorIs(t, err, types.ErrInvalidHorizon)
}

func TestBuildContext_MarketAndClimateShapes(t *testing.T) {
	f := &entities.Field{SizeAcres: 20, ClimateZone: "4b"}
	ctx := buildTestContext(t, f, nil, nil, 5)

	for _, crop := range ctx.AvailableCrops {
		q, ok := ctx.Market[crop]
		require.True(t, ok, "missing market quote for %s", crop)
		assert.Greater(t, q.PricePerUnit, 0.0)
		assert.Greater(t, q.Volatility, 0.0)
	}

	assert.Equal(t, "4b", ctx.Climate.ClimateZone)
	assert.Greater(t, ctx.Climate.GrowingDegreeDays, 0)
	assert.Greater(t, ctx.Climate.FrostFreeDays, 0)
}
