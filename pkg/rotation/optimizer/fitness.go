package optimizer

import (
	"math"

	"rotopt/pkg/rotation/types"
)

// Fitness component weights. These define what "optimal" means for the
// domain and are fixed contracts, not tunables.
const (
	goalWeight      = 0.6
	diversityWeight = 0.2
	penaltyWeight   = 0.2

	nitrogenCarryover = 1.2 // fixed nitrogen benefits every year after the first
	pestDiversityStep = 0.1 // pest benefit grows with crops seen so far

	neutralSatisfaction = 50.0
)

// EvaluateFitness scores a rotation against the context's goals and
// constraints, returning a value in [0, 100]. Pure function of its inputs:
// identical rotation and context always produce the identical score.
func EvaluateFitness(rot types.Rotation, ctx *types.Context) float64 {
	benefits := AccumulateBenefits(rot, ctx)
	satisfaction := goalSatisfaction(benefits, ctx.Goals)
	penalty := constraintPenalty(rot, ctx.Constraints)
	diversity := diversityBonus(rot, ctx.Horizon)

	fitness := satisfaction*goalWeight + diversity*diversityWeight + (100-penalty)*penaltyWeight
	return math.Max(0, fitness)
}

// AccumulateBenefits sums each crop's coefficients across the rotation with
// two positional modifiers, then normalizes every dimension to [0, 100] by
// min(100, total/horizon*10).
func AccumulateBenefits(rot types.Rotation, ctx *types.Context) types.BenefitScores {
	var nfix, som, erosion, pest, weed, econ float64

	seen := map[string]bool{}
	for i, crop := range rot {
		b := ctx.Tables.Benefits(crop)
		seen[crop] = true

		nf := b.NitrogenFixation
		if i > 0 {
			nf *= nitrogenCarryover
		}
		nfix += nf

		som += b.SoilOrganicMatter
		erosion += b.ErosionControl
		pest += b.PestManagement * (1 + pestDiversityStep*float64(len(seen)))
		weed += b.WeedSuppression
		econ += b.EconomicValue
	}

	h := float64(ctx.Horizon)
	norm := func(total float64) float64 { return math.Min(100, total/h*10) }
	return types.BenefitScores{
		NitrogenFixation:  norm(nfix),
		SoilOrganicMatter: norm(som),
		ErosionControl:    norm(erosion),
		PestManagement:    norm(pest),
		WeedSuppression:   norm(weed),
		EconomicValue:     norm(econ),
	}
}

// goalSatisfaction maps benefit scores to a weight-normalized average of the
// per-goal formulas. With no goals there is nothing to score against and
// satisfaction is neutral.
func goalSatisfaction(b types.BenefitScores, goals []types.RotationGoal) float64 {
	if len(goals) == 0 {
		return neutralSatisfaction
	}
	var weighted, total float64
	for _, g := range goals {
		var sat float64
		switch g.GoalType {
		case types.GoalSoilHealth:
			sat = 0.4*b.SoilOrganicMatter + 0.3*b.ErosionControl + 0.3*b.NitrogenFixation
		case types.GoalProfit:
			sat = b.EconomicValue
		case types.GoalPestManagement:
			sat = 0.6*b.PestManagement + 0.4*b.WeedSuppression
		case types.GoalSustainability:
			sat = 0.3*b.NitrogenFixation + 0.3*b.SoilOrganicMatter + 0.2*b.ErosionControl + 0.2*b.PestManagement
		}
		weighted += sat * g.Weight
		total += g.Weight
	}
	if total == 0 {
		return neutralSatisfaction
	}
	return weighted / total
}

// constraintPenalty sums per-constraint penalties, capped at 100. Hard
// constraints are fined harder but stay soft: a violating rotation is scored,
// not rejected.
func constraintPenalty(rot types.Rotation, constraints []types.RotationConstraint) float64 {
	var penalty float64
	for _, c := range constraints {
		switch c.Type {
		case types.ConstraintRequiredCrop:
			if !containsCrop(rot, c.CropName) {
				if c.IsHard {
					penalty += 50
				} else {
					penalty += 20
				}
			}
		case types.ConstraintExcludedCrop:
			if containsCrop(rot, c.CropName) {
				if c.IsHard {
					penalty += 30
				} else {
					penalty += 10
				}
			}
		case types.ConstraintMaxConsecutive:
			// A non-positive limit would forbid the crop outright, which is
			// EXCLUDED_CROP's job; such a constraint is inactive here.
			if run := longestRun(rot, c.CropName); c.MaxInARow > 0 && run > c.MaxInARow {
				penalty += float64(run-c.MaxInARow) * 15
			}
		}
	}
	return math.Min(100, penalty)
}

// longestRun finds the longest consecutive run of crop in one linear scan.
func longestRun(rot types.Rotation, crop string) int {
	best, cur := 0, 0
	for _, c := range rot {
		if c == crop {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}
	return best
}

func diversityBonus(rot types.Rotation, horizon int) float64 {
	unique := map[string]bool{}
	for _, c := range rot {
		unique[c] = true
	}
	return float64(len(unique)) / float64(horizon) * 100
}
