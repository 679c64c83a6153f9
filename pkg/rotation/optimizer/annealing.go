package optimizer

import (
	"context"
	"math"
	"math/rand"

	"rotopt/pkg/rotation/types"
)

// AnnealingSearch is a single-trajectory search with Metropolis acceptance:
// improving moves are always taken, worsening moves with probability
// exp(-delta/T), and temperature decays geometrically each iteration.
type AnnealingSearch struct {
	Params types.Params
}

func (a *AnnealingSearch) Name() string { return "annealing" }

func (a *AnnealingSearch) Search(ctx context.Context, octx *types.Context, rng *rand.Rand) (types.Rotation, float64, error) {
	p := a.Params.WithDefaults()

	current := RandomRotation(octx, rng)
	currentFitness := EvaluateFitness(current, octx)
	best := current.Clone()
	bestFitness := currentFitness

	temperature := p.InitialTemperature
	for i := 0; i < p.MaxIterations && temperature > p.MinTemperature; i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		neighbor := Neighbor(octx, current, rng)
		neighborFitness := EvaluateFitness(neighbor, octx)

		if neighborFitness > currentFitness {
			current, currentFitness = neighbor, neighborFitness
			if currentFitness > bestFitness {
				best, bestFitness = current.Clone(), currentFitness
			}
		} else {
			// Fitness is maximized, so delta is how much worse the neighbor is.
			delta := currentFitness - neighborFitness
			if rng.Float64() < math.Exp(-delta/temperature) {
				current, currentFitness = neighbor, neighborFitness
			}
		}

		temperature *= p.CoolingRate
	}

	return best, bestFitness, nil
}
