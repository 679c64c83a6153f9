package serviceImp

import (
	"context"
	"time"

	"rotopt/entities"
	"rotopt/pkg/climate"
	"rotopt/pkg/knowledge"
	"rotopt/pkg/market"
	"rotopt/pkg/rotation/optimizer"
	rotrepo "rotopt/pkg/rotation/repository"
	"rotopt/pkg/rotation/types"
)

type RotationSvc struct {
	repo    rotrepo.RotationRepository
	tables  knowledge.Tables
	market  market.Provider
	climate climate.Provider
	params  types.Params

	// Strict mode removes hard-excluded crops from the available set before
	// search instead of relying on fitness penalties alone. Off by default to
	// keep the documented soft-penalty semantics.
	strict bool

	// Seed for the search rand streams; 0 means time-based. Tests set it for
	// reproducible runs.
	Seed int64
}

func NewRotationService(repo rotrepo.RotationRepository, tables knowledge.Tables, mkt market.Provider, clim climate.Provider, params types.Params, strict bool) *RotationSvc {
	return &RotationSvc{repo: repo, tables: tables, market: mkt, climate: clim, params: params, strict: strict}
}

func (s *RotationSvc) GenerateOptimalRotation(ctx context.Context, field *entities.Field, goals []types.RotationGoal, constraints []types.RotationConstraint, horizon int) (*entities.RotationPlan, error) {
	if horizon < 0 {
		return nil, types.ErrInvalidHorizon
	}

	octx, err := optimizer.BuildContext(field, goals, constraints, horizon, s.tables, s.market, s.climate)
	if err != nil {
		return nil, err
	}
	if s.strict {
		applyStrictExclusions(octx)
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	best, fitness, err := optimizer.RunBest(ctx, octx, seed,
		&optimizer.GeneticSearch{Params: s.params},
		&optimizer.AnnealingSearch{Params: s.params},
	)
	if err != nil {
		return nil, err
	}

	plan := optimizer.AssemblePlan(best, fitness, octx)
	if s.repo != nil {
		if err := s.repo.Create(plan); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

func (s *RotationSvc) ListByField(fieldID uint) ([]entities.RotationPlan, error) {
	return s.repo.ListByField(fieldID)
}

func (s *RotationSvc) LatestByField(fieldID uint) (*entities.RotationPlan, error) {
	return s.repo.LatestByField(fieldID)
}

// applyStrictExclusions drops hard-excluded crops from the available set so
// generation can never place them. Soft exclusions keep penalty-only
// semantics.
func applyStrictExclusions(octx *types.Context) {
	for _, c := range octx.Constraints {
		if c.Type != types.ConstraintExcludedCrop || !c.IsHard {
			continue
		}
		kept := octx.AvailableCrops[:0]
		for _, crop := range octx.AvailableCrops {
			if crop != c.CropName {
				kept = append(kept, crop)
			}
		}
		octx.AvailableCrops = kept
	}
}
