package centroid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvtraj/dtw"
	"github.com/katalvlaran/lvtraj/geom"
)

// Compute dispatches to the chosen strategy.
func Compute(s geom.Set, strategy Strategy) (geom.Trajectory, error) {
	switch strategy {
	case Medoid:
		return ComputeMedoid(s, 1)
	case TimeScaled:
		return ComputeTimeScaled(s)
	case DistanceScaled:
		return ComputeDistanceScaled(s)
	default:
		return nil, ErrUnknownStrategy
	}
}

// ComputeMedoid returns a copy of the member with the minimum summed
// dtw.Distance to every other member. workers is forwarded to dtw.Pairwise.
//
// Errors:
//   - geom.ErrEmptySet, geom.ErrEmptyTrajectory.
func ComputeMedoid(s geom.Set, workers int) (geom.Trajectory, error) {
	if err := s.Validate(1); err != nil {
		return nil, fmt.Errorf("ComputeMedoid: %w", err)
	}
	trajs := s.Trajectories()
	d, err := dtw.Pairwise(trajs, nil, workers)
	if err != nil {
		return nil, fmt.Errorf("ComputeMedoid: %w", err)
	}

	best, bestSum := -1, math.Inf(1)
	for i := range trajs {
		var sum float64
		for j := range trajs {
			sum += d.At(i, j)
		}
		if sum < bestSum {
			best, bestSum = i, sum
		}
	}
	if best < 0 {
		// every total is +Inf (windowed DTW with no admissible path)
		best = 0
	}

	return trajs[best].Clone(), nil
}

// ComputeTimeScaled resamples every member to maxLen samples, the length of
// the longest member, and averages them index by index. Sample k of a member
// of length L sits at fractional index k·(L-1)/(maxLen-1).
//
// Errors:
//   - geom.ErrEmptySet; geom.ErrTooShort if any member has fewer than 2 samples.
func ComputeTimeScaled(s geom.Set) (geom.Trajectory, error) {
	if err := s.Validate(2); err != nil {
		return nil, fmt.Errorf("ComputeTimeScaled: %w", err)
	}
	trajs := s.Trajectories()
	maxLen := longest(trajs)

	return average(trajs, maxLen, func(i, k int) geom.Point {
		t := trajs[i]
		return t.At(float64(k) * float64(len(t)-1) / float64(maxLen-1))
	}), nil
}

// ComputeDistanceScaled resamples every member at maxLen arc-length stations
// s_k = k·Lmax/(maxLen-1), Lmax being the longest total arc length in the
// set, and averages them station by station. A member shorter than s_k
// contributes its final sample; a member of zero length contributes its
// first sample everywhere.
//
// Errors:
//   - geom.ErrEmptySet, geom.ErrEmptyTrajectory.
func ComputeDistanceScaled(s geom.Set) (geom.Trajectory, error) {
	if err := s.Validate(1); err != nil {
		return nil, fmt.Errorf("ComputeDistanceScaled: %w", err)
	}
	trajs := s.Trajectories()
	maxLen := longest(trajs)

	cums := make([][]float64, len(trajs))
	var lmax float64
	for i, t := range trajs {
		cums[i] = t.CumulativeLength()
		lmax = math.Max(lmax, cums[i][len(t)-1])
	}

	return average(trajs, maxLen, func(i, k int) geom.Point {
		if maxLen == 1 {
			return trajs[i][0]
		}
		station := lmax * float64(k) / float64(maxLen-1)
		return atLength(trajs[i], cums[i], station)
	}), nil
}

// atLength interpolates t at arc length target along its cumulative lengths.
func atLength(t geom.Trajectory, cum []float64, target float64) geom.Point {
	last := len(t) - 1
	if target <= 0 || cum[last] == 0 {
		return t[0]
	}
	if target >= cum[last] {
		return t[last]
	}
	seg := 0
	for seg < last-1 && cum[seg+1] < target {
		seg++
	}
	span := cum[seg+1] - cum[seg]
	if span == 0 {
		return t[seg]
	}

	return geom.Lerp(t[seg], t[seg+1], (target-cum[seg])/span)
}

// average samples every member n times via at(member, k) and
// returns the per-index mean.
func average(trajs []geom.Trajectory, n int, at func(i, k int) geom.Point) geom.Trajectory {
	out := make(geom.Trajectory, n)
	xs := make([]float64, len(trajs))
	ys := make([]float64, len(trajs))
	for k := 0; k < n; k++ {
		for i := range trajs {
			p := at(i, k)
			xs[i], ys[i] = p.X, p.Y
		}
		out[k] = geom.Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
	}

	return out
}

func longest(trajs []geom.Trajectory) int {
	n := 0
	for _, t := range trajs {
		n = max(n, len(t))
	}
	return n
}
