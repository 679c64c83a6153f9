package optimizer

import (
	"context"
	"math/rand"
	"sort"

	"rotopt/pkg/rotation/types"
)

// GeneticSearch is a population-based evolutionary search: tournament
// selection, single-point crossover, constraint-aware mutation, and elitism
// over a fixed generation budget.
type GeneticSearch struct {
	Params types.Params
}

func (g *GeneticSearch) Name() string { return "genetic" }

type individual struct {
	rot     types.Rotation
	fitness float64
}

func (g *GeneticSearch) Search(ctx context.Context, octx *types.Context, rng *rand.Rand) (types.Rotation, float64, error) {
	p := g.Params.WithDefaults()

	pop := make([]individual, p.PopulationSize)
	for i := range pop {
		pop[i] = individual{rot: RandomRotation(octx, rng)}
	}

	for gen := 0; gen < p.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		// Score the whole generation before any evolutionary step.
		for i := range pop {
			pop[i].fitness = EvaluateFitness(pop[i].rot, octx)
		}
		sort.SliceStable(pop, func(i, j int) bool { return pop[i].fitness > pop[j].fitness })

		next := make([]individual, 0, p.PopulationSize)
		for i := 0; i < p.EliteSize && i < len(pop); i++ {
			next = append(next, individual{rot: pop[i].rot.Clone()})
		}

		for len(next) < p.PopulationSize {
			pa := tournament(pop, p.TournamentSize, rng)
			pb := tournament(pop, p.TournamentSize, rng)

			var childA, childB types.Rotation
			if rng.Float64() < p.CrossoverRate {
				childA, childB = Crossover(pa.rot, pb.rot, rng)
			} else {
				childA, childB = pa.rot.Clone(), pb.rot.Clone()
			}
			if rng.Float64() < p.MutationRate {
				childA = Mutate(octx, childA, rng)
			}
			if rng.Float64() < p.MutationRate {
				childB = Mutate(octx, childB, rng)
			}

			next = append(next, individual{rot: childA})
			if len(next) < p.PopulationSize {
				next = append(next, individual{rot: childB})
			}
		}
		pop = next
	}

	// Re-evaluate the final population; the last loop iteration only bred it.
	best := individual{fitness: -1}
	for i := range pop {
		pop[i].fitness = EvaluateFitness(pop[i].rot, octx)
		if pop[i].fitness > best.fitness {
			best = pop[i]
		}
	}
	return best.rot, best.fitness, nil
}

// tournament picks the best of k uniformly sampled individuals.
func tournament(pop []individual, k int, rng *rand.Rand) individual {
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < k; i++ {
		c := pop[rng.Intn(len(pop))]
		if c.fitness > best.fitness {
			best = c
		}
	}
	return best
}
