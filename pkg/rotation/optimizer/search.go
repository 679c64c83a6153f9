package optimizer

import (
	"context"
	"math/rand"
	"sync"

	"rotopt/pkg/rotation/types"
)

// Strategy is one search algorithm over an optimization context. Every
// stochastic decision draws from the passed rng, so seeded runs reproduce
// exactly.
type Strategy interface {
	Name() string
	Search(ctx context.Context, octx *types.Context, rng *rand.Rand) (types.Rotation, float64, error)
}

type strategyResult struct {
	name     string
	rotation types.Rotation
	fitness  float64
	err      error
}

// RunBest runs every strategy concurrently over the same immutable context,
// each with its own rand stream derived from seed, and returns the fittest
// result. The winners are re-scored with the shared evaluator so strategies
// are compared on identical terms.
func RunBest(ctx context.Context, octx *types.Context, seed int64, strategies ...Strategy) (types.Rotation, float64, error) {
	results := make([]strategyResult, len(strategies))
	var wg sync.WaitGroup
	for i, s := range strategies {
		wg.Add(1)
		go func(i int, s Strategy) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(i)))
			rot, fit, err := s.Search(ctx, octx, rng)
			results[i] = strategyResult{name: s.Name(), rotation: rot, fitness: fit, err: err}
		}(i, s)
	}
	wg.Wait()

	var best types.Rotation
	bestFitness := -1.0
	var firstErr error
	for _, r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		if fit := EvaluateFitness(r.rotation, octx); fit > bestFitness {
			best, bestFitness = r.rotation, fit
		}
	}
	if best == nil {
		return nil, 0, firstErr
	}
	return best, bestFitness, nil
}
