package cluster

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvtraj/dtw"
	"github.com/katalvlaran/lvtraj/geom"
)

// RandomSeed draws k distinct members uniformly without replacement.
// Members are visited in ascending identifier order before shuffling, so
// the draw depends only on s, k and the rng state.
//
// Errors: geom.ErrEmptySet, geom.ErrEmptyTrajectory, ErrBadK.
func RandomSeed(s geom.Set, k int, rng *rand.Rand) ([]geom.Trajectory, error) {
	keys, err := seedKeys(s, k)
	if err != nil {
		return nil, fmt.Errorf("RandomSeed: %w", err)
	}

	perm := permRange(len(keys), rng)
	out := make([]geom.Trajectory, k)
	for i := 0; i < k; i++ {
		out[i] = s[keys[perm[i]]].Clone()
	}

	return out, nil
}

// WeightedSeed draws k distinct members k-means++ style. The first is
// uniform; each next member is drawn with probability proportional to its
// squared minimum dtw.Distance to the members already drawn (roulette wheel
// over ascending identifiers). When every remaining weight is zero, the
// draw falls back to uniform over the members not yet drawn.
//
// Errors: geom.ErrEmptySet, geom.ErrEmptyTrajectory, ErrBadK.
func WeightedSeed(s geom.Set, k int, rng *rand.Rand) ([]geom.Trajectory, error) {
	keys, err := seedKeys(s, k)
	if err != nil {
		return nil, fmt.Errorf("WeightedSeed: %w", err)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	n := len(keys)
	chosen := make([]bool, n)
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = math.Inf(1)
	}

	next := rng.Intn(n)
	out := make([]geom.Trajectory, 0, k)
	for {
		chosen[next] = true
		weights[next] = 0
		last := s[keys[next]]
		out = append(out, last.Clone())
		if len(out) == k {
			break
		}

		for i, key := range keys {
			if chosen[i] {
				continue
			}
			d, err := dtw.Distance(s[key], last)
			if err != nil {
				return nil, fmt.Errorf("WeightedSeed: %w", err)
			}
			weights[i] = math.Min(weights[i], d*d)
		}
		next = roulette(weights, chosen, rng)
	}

	return out, nil
}

// roulette picks an index with probability weights[i]/sum(weights), or
// uniformly among unchosen indices when the total is not positive.
func roulette(weights []float64, chosen []bool, rng *rand.Rand) int {
	total := floats.Sum(weights)
	if total > 0 && !math.IsInf(total, 1) {
		r := rng.Float64() * total
		var acc float64
		pick := -1
		for i, w := range weights {
			if chosen[i] || w == 0 {
				continue
			}
			pick = i
			acc += w
			if r < acc {
				return i
			}
		}
		// rounding left r at the very top of the wheel
		return pick
	}

	free := make([]int, 0, len(chosen))
	for i, c := range chosen {
		if !c {
			free = append(free, i)
		}
	}

	return free[rng.Intn(len(free))]
}

func seedKeys(s geom.Set, k int) ([]string, error) {
	if err := s.Validate(1); err != nil {
		return nil, err
	}
	if k < 1 || k > len(s) {
		return nil, fmt.Errorf("%w: k=%d, have %d", ErrBadK, k, len(s))
	}
	return s.Keys(), nil
}
