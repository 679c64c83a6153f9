package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotopt/pkg/rotation/types"
)

func TestEstimateYield_RotationEffects(t *testing.T) {
	// The nitrogen credit replaces the pest-break bonus when both would apply;
	// oats does not favor corn, so corn after oats stays at base.
	tests := []struct {
		name string
		crop string
		prev string
		soil string
		want float64
		unit string
	}{
		{"corn after soybean", "corn", "soybean", "loam", 180 * 1.08, "bu/acre"},
		{"corn after alfalfa", "corn", "alfalfa", "loam", 180 * 1.15, "bu/acre"},
		{"corn after oats", "corn", "oats", "loam", 180, "bu/acre"},
		{"first-year corn", "corn", "", "loam", 180, "bu/acre"},
		{"soybean after corn", "soybean", "corn", "loam", 55 * 1.05, "bu/acre"},
		{"silt loam bonus", "corn", "", "silt_loam", 180 * 1.02, "bu/acre"},
		{"clay discount", "corn", "", "clay", 180 * 0.95, "bu/acre"},
		{"alfalfa in tons", "alfalfa", "", "loam", 4.5, "ton/acre"},
		{"unknown crop", "quinoa", "", "loam", 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			field := defaultField()
			field.SoilType = tc.soil
			octx := buildTestContext(t, field, nil, nil, 4)

			got, unit := estimateYield(tc.crop, tc.prev, octx)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.Equal(t, tc.unit, unit)
		})
	}
}

func TestAssemblePlan_Shape(t *testing.T) {
	goals := []types.RotationGoal{{GoalID: "g-soil", GoalType: types.GoalSoilHealth, Weight: 1}}
	constraints := []types.RotationConstraint{{ConstraintID: "c-corn", Type: types.ConstraintRequiredCrop, CropName: "corn"}}
	octx := buildTestContext(t, defaultField(), goals, constraints, 4)

	rot := types.Rotation{"soybean", "corn", "oats", "alfalfa"}
	fitness := 72.5
	plan := AssemblePlan(rot, fitness, octx)

	require.Len(t, plan.Years, 4)
	assert.Equal(t, octx.Field.FieldID, plan.FieldID)
	assert.Equal(t, octx.Field.FarmID, plan.FarmID)
	assert.Equal(t, 4, plan.PlanningHorizon)
	assert.Equal(t, fitness, plan.OverallScore)
	assert.Equal(t, []string{"g-soil"}, plan.GoalIDs)
	assert.Equal(t, []string{"c-corn"}, plan.ConstraintIDs)

	for i, y := range plan.Years {
		assert.Equal(t, i+1, y.Year)
		assert.Equal(t, rot[i], y.CropName)
		assert.InDelta(t, 0.725, y.ConfidenceScore, 1e-9)
		assert.NotEmpty(t, y.PlantingWindow)
		assert.NotEmpty(t, y.ManagementNotes)
	}

	// Benefit analysis carries all six accumulated dimensions.
	want := AccumulateBenefits(rot, octx).Map()
	assert.Equal(t, want, plan.BenefitAnalysis)
	assert.Len(t, plan.BenefitAnalysis, 6)
}

func TestAssemblePlan_ConfidenceCappedAtOne(t *testing.T) {
	octx := buildTestContext(t, defaultField(), nil, nil, 2)
	plan := AssemblePlan(types.Rotation{"corn", "soybean"}, 140, octx)
	for _, y := range plan.Years {
		assert.Equal(t, 1.0, y.ConfidenceScore)
	}
}

func TestAssemblePlan_YieldRounding(t *testing.T) {
	octx := buildTestContext(t, defaultField(), nil, nil, 2)
	plan := AssemblePlan(types.Rotation{"soybean", "corn"}, 60, octx)

	// 180 * 1.08 = 194.4, already at one decimal.
	assert.Equal(t, 194.4, plan.Years[1].EstimatedYield)
	assert.Equal(t, "bu/acre", plan.Years[1].YieldUnit)
	assert.Equal(t, 55.0, plan.Years[0].EstimatedYield)
}

func TestManagementNotes(t *testing.T) {
	notes := managementNotes("corn", "soybean")
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "nitrogen credit")

	notes = managementNotes("corn", "alfalfa")
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "alfalfa")

	notes = managementNotes("wheat", "wheat")
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "Back-to-back")

	notes = managementNotes("oats", "corn")
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "Standard fertility")
}

func TestBenefitNarratives_Thresholds(t *testing.T) {
	octx := buildTestContext(t, defaultField(), nil, nil, 2)

	// Alfalfa clears every threshold: NF 10, SOM 8, PM 5 is not > 5 so the
	// pest line is excluded, WS 8.
	lines := benefitNarratives("alfalfa", octx.Tables)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "nitrogen")

	// Corn fixes no nitrogen and sits at or below every other threshold.
	assert.Empty(t, benefitNarratives("corn", octx.Tables))

	// Unknown crops have zero coefficients everywhere.
	assert.Empty(t, benefitNarratives("quinoa", octx.Tables))
}

func TestAssemblePlan_UnknownCropFallsBackToGenericRec(t *testing.T) {
	octx := buildTestContext(t, defaultField(), nil, nil, 1)
	plan := AssemblePlan(types.Rotation{"quinoa"}, 50, octx)

	require.Len(t, plan.Years, 1)
	y := plan.Years[0]
	assert.Equal(t, "consult local extension guidance", y.PlantingWindow)
	assert.Equal(t, 0.0, y.EstimatedYield)
	assert.Empty(t, y.YieldUnit)
}
