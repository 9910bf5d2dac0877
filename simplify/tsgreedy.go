package simplify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtraj/geom"
)

// TSGreedy returns the ε-simplification of t.
//
// Contract:
//   - ε == 0 returns a copy of t unchanged.
//   - len(t) ≤ 2 returns a copy of t.
//   - Otherwise the result is an ordered subsequence of t containing both
//     endpoints, such that every dropped sample lies within ε of the
//     simplified segment that replaced it.
//
// Ties on the maximum error keep the first index encountered.
//
// Errors:
//   - geom.ErrEmptyTrajectory if t is empty.
//   - ErrBadEpsilon if ε < 0, NaN or +Inf.
func TSGreedy(t geom.Trajectory, epsilon float64) (geom.Trajectory, error) {
	if err := t.Validate(1); err != nil {
		return nil, fmt.Errorf("TSGreedy: %w", err)
	}
	if epsilon < 0 || math.IsNaN(epsilon) || math.IsInf(epsilon, 1) {
		return nil, ErrBadEpsilon
	}
	if epsilon == 0 || len(t) <= 2 {
		return t.Clone(), nil
	}

	out := make(geom.Trajectory, 0, len(t))
	out = tsGreedy(t, 0, len(t)-1, epsilon, out)
	out = append(out, t[len(t)-1])

	return out, nil
}

// tsGreedy appends the simplification of t[lo..hi] to out, excluding t[hi];
// the caller owns the closing endpoint so shared split points are emitted once.
func tsGreedy(t geom.Trajectory, lo, hi int, epsilon float64, out geom.Trajectory) geom.Trajectory {
	index, worst := worstPoint(t, lo, hi)
	if worst >= epsilon {
		out = tsGreedy(t, lo, index, epsilon, out)

		return tsGreedy(t, index, hi, epsilon, out)
	}

	return append(out, t[lo])
}

// worstPoint returns the interior index of t[lo..hi] farthest from the chord
// and its distance. With no interior samples it returns (lo, 0).
func worstPoint(t geom.Trajectory, lo, hi int) (int, float64) {
	var (
		index = lo
		worst = 0.0
	)
	for i := lo + 1; i < hi; i++ {
		d := geom.PointToSegment(t[i], t[lo], t[hi])
		if d > worst {
			index, worst = i, d
		}
	}

	return index, worst
}

// Set simplifies every member of s with the same ε.
func Set(s geom.Set, epsilon float64) (geom.Set, error) {
	out := make(geom.Set, len(s))
	for _, id := range s.Keys() {
		st, err := TSGreedy(s[id], epsilon)
		if err != nil {
			return nil, fmt.Errorf("Set(%q): %w", id, err)
		}
		out[id] = st
	}

	return out, nil
}

// CompressionRatio reports len(original)/len(simplified); 0 if simplified is empty.
func CompressionRatio(original, simplified geom.Trajectory) float64 {
	if len(simplified) == 0 {
		return 0
	}

	return float64(len(original)) / float64(len(simplified))
}
