package optimizer

import (
	"fmt"
	"math"

	"rotopt/entities"
	"rotopt/pkg/knowledge"
	"rotopt/pkg/rotation/types"
)

// Base yields per acre for an average year; adjusted per position by rotation
// effects and soil type.
var baseYields = map[string]struct {
	amount float64
	unit   string
}{
	knowledge.Corn:    {180, "bu/acre"},
	knowledge.Soybean: {55, "bu/acre"},
	knowledge.Wheat:   {70, "bu/acre"},
	knowledge.Oats:    {90, "bu/acre"},
	knowledge.Alfalfa: {4.5, "ton/acre"},
	knowledge.Barley:  {75, "bu/acre"},
}

type plantingRec struct {
	window  string
	rate    string
	depth   string
	spacing string
}

var plantingRecs = map[string]plantingRec{
	knowledge.Corn:    {"late April – mid May", "32,000–36,000 seeds/acre", "1.5–2 in", "30 in rows"},
	knowledge.Soybean: {"early May – early June", "140,000–160,000 seeds/acre", "1–1.5 in", "15–30 in rows"},
	knowledge.Wheat:   {"mid September – mid October", "1.2–1.5 million seeds/acre", "1–1.5 in", "7.5 in rows"},
	knowledge.Oats:    {"late March – mid April", "2.5–3 bu/acre", "1–2 in", "7.5 in rows"},
	knowledge.Alfalfa: {"mid April – mid May", "15–20 lb/acre", "0.25–0.5 in", "drilled"},
	knowledge.Barley:  {"early April – early May", "1.5–2 bu/acre", "1–1.5 in", "7.5 in rows"},
}

var genericRec = plantingRec{
	window:  "consult local extension guidance",
	rate:    "per seed dealer recommendation",
	depth:   "per seed dealer recommendation",
	spacing: "per equipment",
}

// AssemblePlan converts the winning rotation and its fitness into a
// calendarized plan: per-year yield estimates, planting recommendations,
// management notes, and benefit narratives.
func AssemblePlan(rot types.Rotation, fitness float64, ctx *types.Context) *entities.RotationPlan {
	confidence := math.Min(1.0, fitness/100)
	benefits := AccumulateBenefits(rot, ctx)

	years := make([]entities.RotationYear, 0, len(rot))
	for i, crop := range rot {
		prev := ""
		if i > 0 {
			prev = rot[i-1]
		}

		yield, unit := estimateYield(crop, prev, ctx)
		rec, ok := plantingRecs[crop]
		if !ok {
			rec = genericRec
		}

		years = append(years, entities.RotationYear{
			Year:            i + 1,
			CropName:        crop,
			EstimatedYield:  math.Round(yield*10) / 10,
			YieldUnit:       unit,
			ConfidenceScore: confidence,
			PlantingWindow:  rec.window,
			SeedingRate:     rec.rate,
			PlantingDepth:   rec.depth,
			RowSpacing:      rec.spacing,
			ManagementNotes: managementNotes(crop, prev),
			Benefits:        benefitNarratives(crop, ctx.Tables),
		})
	}

	goalIDs := make([]string, 0, len(ctx.Goals))
	for _, g := range ctx.Goals {
		goalIDs = append(goalIDs, g.GoalID)
	}
	constraintIDs := make([]string, 0, len(ctx.Constraints))
	for _, c := range ctx.Constraints {
		constraintIDs = append(constraintIDs, c.ConstraintID)
	}

	return &entities.RotationPlan{
		FieldID:         ctx.Field.FieldID,
		FarmID:          ctx.Field.FarmID,
		PlanningHorizon: ctx.Horizon,
		OverallScore:    fitness,
		Years:           years,
		BenefitAnalysis: benefits.Map(),
		GoalIDs:         goalIDs,
		ConstraintIDs:   constraintIDs,
	}
}

// estimateYield applies the rotation adjustments to the crop's base yield:
// a nitrogen credit for corn after a legume, a pest-break bonus when the
// previous crop favors this one, and a soil-type modifier.
func estimateYield(crop, prev string, ctx *types.Context) (float64, string) {
	base, ok := baseYields[crop]
	if !ok {
		return 0, ""
	}
	yield := base.amount

	// The specific nitrogen credit supersedes the generic pest-break bonus.
	credited := false
	if crop == knowledge.Corn {
		switch prev {
		case knowledge.Soybean:
			yield *= 1.08
			credited = true
		case knowledge.Alfalfa:
			yield *= 1.15
			credited = true
		}
	}
	if !credited && prev != "" && ctx.Tables.FavorsNext(prev, crop) {
		yield *= 1.05
	}
	switch ctx.Field.SoilType {
	case "silt_loam":
		yield *= 1.02
	case "clay":
		yield *= 0.95
	}
	return yield, base.unit
}

func managementNotes(crop, prev string) []string {
	var notes []string
	if crop == knowledge.Corn {
		switch prev {
		case knowledge.Soybean:
			notes = append(notes, "Reduce nitrogen application by 30-40 lb/acre to account for the soybean nitrogen credit.")
		case knowledge.Alfalfa:
			notes = append(notes, "Terminated alfalfa supplies a large nitrogen credit; cut starter nitrogen accordingly and watch for wireworm.")
		}
	}
	if prev == crop {
		notes = append(notes, "Back-to-back planting of the same crop raises pest and disease carryover risk; scout early.")
	}
	if len(notes) == 0 {
		notes = append(notes, fmt.Sprintf("Standard fertility and scouting program for %s.", crop))
	}
	return notes
}

// benefitNarratives emits a line per benefit dimension that the crop
// meaningfully contributes to, gated by coefficient thresholds.
func benefitNarratives(crop string, tables knowledge.Tables) []string {
	b := tables.Benefits(crop)
	var out []string
	if b.NitrogenFixation > 0 {
		out = append(out, fmt.Sprintf("Fixes atmospheric nitrogen for following crops (score %.0f/10).", b.NitrogenFixation))
	}
	if b.SoilOrganicMatter > 5 {
		out = append(out, "Strong contributor to soil organic matter.")
	}
	if b.PestManagement > 5 {
		out = append(out, "Breaks pest cycles of the dominant row crops.")
	}
	if b.WeedSuppression > 5 {
		out = append(out, "Dense canopy suppresses weed pressure.")
	}
	return out
}
