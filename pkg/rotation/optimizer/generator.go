package optimizer

import (
	"math/rand"

	"rotopt/pkg/rotation/types"
)

// RandomRotation builds a constraint-aware random candidate, one year at a
// time. Each position draws uniformly from the valid set for that slot; an
// empty valid set falls back to the full available list, so generation never
// fails.
func RandomRotation(ctx *types.Context, rng *rand.Rand) types.Rotation {
	rot := make(types.Rotation, 0, ctx.Horizon)
	for pos := 0; pos < ctx.Horizon; pos++ {
		valid := validCropsAt(ctx, rot, pos)
		rot = append(rot, valid[rng.Intn(len(valid))])
	}
	return rot
}

// validCropsAt computes the crops allowed at position pos given the partial
// rotation built so far. Order of pruning matters: required-crop placement
// first, then exclusions, then the previous crop's avoid list. The result is
// never empty.
func validCropsAt(ctx *types.Context, soFar types.Rotation, pos int) []string {
	valid := make([]string, len(ctx.AvailableCrops))
	copy(valid, ctx.AvailableCrops)

	// Best-effort placement: a required crop not yet in the rotation claims
	// the final slot if it is still in the running.
	if pos == ctx.Horizon-1 {
		for _, c := range ctx.Constraints {
			if c.Type != types.ConstraintRequiredCrop {
				continue
			}
			if containsCrop(soFar, c.CropName) {
				continue
			}
			if containsString(valid, c.CropName) {
				valid = []string{c.CropName}
				break
			}
		}
	}

	for _, c := range ctx.Constraints {
		if c.Type == types.ConstraintExcludedCrop {
			valid = removeString(valid, c.CropName)
		}
	}

	if pos > 0 && len(soFar) >= pos {
		prev := soFar[pos-1]
		for _, avoid := range ctx.Tables.Traits(prev).AvoidNext {
			valid = removeString(valid, avoid)
		}
	}

	if len(valid) == 0 {
		valid = make([]string, len(ctx.AvailableCrops))
		copy(valid, ctx.AvailableCrops)
	}
	return valid
}

// Mutate replaces one random position with a fresh draw from that position's
// valid set, computed against the rest of the rotation. Returns a new
// rotation; the input is not modified.
func Mutate(ctx *types.Context, rot types.Rotation, rng *rand.Rand) types.Rotation {
	if len(rot) == 0 {
		return rot
	}
	out := rot.Clone()
	pos := rng.Intn(len(out))
	valid := validCropsAt(ctx, out[:pos], pos)
	out[pos] = valid[rng.Intn(len(valid))]
	return out
}

// Crossover performs single-point crossover with a cut in [1, horizon-1].
// No repair pass runs afterward: offspring that violate constraints survive
// only if their fitness stays competitive. Mismatched parents (should not
// happen with fixed-horizon rotations) come back as clones.
func Crossover(a, b types.Rotation, rng *rand.Rand) (types.Rotation, types.Rotation) {
	if len(a) != len(b) || len(a) < 2 {
		return a.Clone(), b.Clone()
	}
	cut := 1 + rng.Intn(len(a)-1)

	childA := make(types.Rotation, len(a))
	childB := make(types.Rotation, len(b))
	copy(childA, a[:cut])
	copy(childA[cut:], b[cut:])
	copy(childB, b[:cut])
	copy(childB[cut:], a[cut:])
	return childA, childB
}

// Neighbor is the annealer's move operator: exactly one mutation.
func Neighbor(ctx *types.Context, rot types.Rotation, rng *rand.Rand) types.Rotation {
	return Mutate(ctx, rot, rng)
}

func containsCrop(rot types.Rotation, crop string) bool {
	for _, c := range rot {
		if c == crop {
			return true
		}
	}
	return false
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(ss []string, s string) []string {
	out := ss[:0]
	for _, v := range ss {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
