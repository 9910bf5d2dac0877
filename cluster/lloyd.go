package cluster

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvtraj/centroid"
	"github.com/katalvlaran/lvtraj/dtw"
	"github.com/katalvlaran/lvtraj/geom"
	"github.com/katalvlaran/lvtraj/internal/concurrent"
)

// Lloyd clusters s into opts.K groups.
//
// Errors:
//   - ErrBadK, ErrBadMaxIter, ErrNilSeeding, centroid.ErrUnknownStrategy.
//   - geom.ErrEmptySet, geom.ErrEmptyTrajectory; geom.ErrTooShort when the
//     chosen centroid strategy needs two samples per member.
func Lloyd(s geom.Set, opts Options) (*Result, error) {
	if err := validate(s, opts); err != nil {
		return nil, fmt.Errorf("Lloyd: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	rng := rngFromSeed(opts.Seed)
	centers, err := opts.Seeding(s, opts.K, rng)
	if err != nil {
		return nil, fmt.Errorf("Lloyd: seeding: %w", err)
	}
	if len(centers) != opts.K {
		return nil, fmt.Errorf("Lloyd: seeding returned %d centers: %w", len(centers), ErrBadK)
	}

	keys := s.Keys()
	res := &Result{}
	for it := 1; it <= opts.MaxIter; it++ {
		assignment, cost, err := assign(s, keys, centers, opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("Lloyd: iteration %d: %w", it, err)
		}
		res.Assignment = assignment
		res.Costs = append(res.Costs, cost)
		res.Iterations = it

		next, empty, err := update(s, keys, assignment, opts, rng)
		if err != nil {
			return nil, fmt.Errorf("Lloyd: iteration %d: %w", it, err)
		}
		log.Debug("lloyd iteration",
			zap.Int("iteration", it),
			zap.Float64("cost", cost),
			zap.Int("empty_partitions", empty),
		)

		if equalCenters(centers, next) {
			res.Converged = true
			centers = next
			break
		}
		centers = next
	}
	res.Centers = centers

	log.Info("lloyd finished",
		zap.Int("k", opts.K),
		zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged),
		zap.Float64("cost", res.Cost()),
	)

	return res, nil
}

// Cluster runs Lloyd with k clusters, at most tMax iterations, the given
// seeding and RNG seed, and returns the final centers with the cost history.
func Cluster(s geom.Set, seeding SeedFunc, k, tMax int, seed int64) ([]geom.Trajectory, []float64, error) {
	opts := DefaultOptions(k)
	opts.Seeding = seeding
	opts.MaxIter = tMax
	opts.Seed = seed

	res, err := Lloyd(s, opts)
	if err != nil {
		return nil, nil, err
	}
	return res.Centers, res.Costs, nil
}

func validate(s geom.Set, opts Options) error {
	minLen := 1
	switch opts.Centroid {
	case centroid.TimeScaled:
		minLen = 2
	case centroid.Medoid, centroid.DistanceScaled:
	default:
		return centroid.ErrUnknownStrategy
	}
	if err := s.Validate(minLen); err != nil {
		return err
	}
	if opts.K < 1 || opts.K > len(s) {
		return fmt.Errorf("%w: k=%d, have %d", ErrBadK, opts.K, len(s))
	}
	if opts.MaxIter < 1 {
		return ErrBadMaxIter
	}
	if opts.Seeding == nil {
		return ErrNilSeeding
	}
	return nil
}

type nearest struct {
	center int
	dist   float64
	err    error
}

// assign maps every key to its nearest center. Distances are computed in
// parallel and reduced in key order.
func assign(s geom.Set, keys []string, centers []geom.Trajectory, workers int) (map[string]int, float64, error) {
	found := concurrent.Map(workers, keys, func(key string) nearest {
		best := nearest{center: -1}
		for c, center := range centers {
			d, err := dtw.Distance(s[key], center)
			if err != nil {
				return nearest{err: err}
			}
			if best.center < 0 || d < best.dist {
				best = nearest{center: c, dist: d}
			}
		}
		return best
	})

	assignment := make(map[string]int, len(keys))
	dists := make([]float64, len(keys))
	for i, key := range keys {
		if found[i].err != nil {
			return nil, 0, fmt.Errorf("assign %q: %w", key, found[i].err)
		}
		assignment[key] = found[i].center
		dists[i] = found[i].dist
	}

	return assignment, floats.Sum(dists), nil
}

// update recomputes one center per partition. It returns the new centers
// and the number of partitions that had to be re-seeded.
func update(s geom.Set, keys []string, assignment map[string]int, opts Options, rng *rand.Rand) ([]geom.Trajectory, int, error) {
	parts := make([]geom.Set, opts.K)
	for _, key := range keys {
		c := assignment[key]
		if parts[c] == nil {
			parts[c] = make(geom.Set)
		}
		parts[c][key] = s[key]
	}

	next := make([]geom.Trajectory, opts.K)
	empty := 0
	for c, part := range parts {
		if len(part) == 0 {
			empty++
			drawn, err := opts.Seeding(s, 1, rng)
			if err != nil {
				return nil, 0, fmt.Errorf("reseed center %d: %w", c, err)
			}
			next[c] = drawn[0]
			continue
		}
		center, err := centroid.Compute(part, opts.Centroid)
		if err != nil {
			return nil, 0, fmt.Errorf("center %d: %w", c, err)
		}
		next[c] = center
	}

	return next, empty, nil
}

func equalCenters(a, b []geom.Trajectory) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
