package cluster

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtraj/centroid"
	"github.com/katalvlaran/lvtraj/geom"
)

var (
	// ErrBadK indicates k outside [1, |set|].
	ErrBadK = fmt.Errorf("cluster: %w: k must be in [1, number of trajectories]", geom.ErrInvalidInput)

	// ErrBadMaxIter indicates MaxIter < 1.
	ErrBadMaxIter = fmt.Errorf("cluster: %w: MaxIter must be at least 1", geom.ErrInvalidInput)

	// ErrNilSeeding indicates Options.Seeding == nil.
	ErrNilSeeding = fmt.Errorf("cluster: %w: nil seeding function", geom.ErrInvalidInput)
)

// SeedFunc draws k distinct members of s as initial centers.
// Implementations must take all randomness from rng.
type SeedFunc func(s geom.Set, k int, rng *rand.Rand) ([]geom.Trajectory, error)

// Options configures Lloyd.
type Options struct {
	K        int               // number of clusters
	MaxIter  int               // iteration cap, >= 1
	Seeding  SeedFunc          // RandomSeed or WeightedSeed
	Centroid centroid.Strategy // how partitions are summarised
	Seed     int64             // RNG seed; 0 selects the default seed
	Workers  int               // goroutines for the assign step; <= 1 runs inline
	Logger   *zap.Logger       // nil disables logging
}

// DefaultOptions returns options for k clusters: 100 iterations,
// k-means++ seeding, time-scaled centroids, default seed, single-threaded.
func DefaultOptions(k int) Options {
	return Options{
		K:        k,
		MaxIter:  100,
		Seeding:  WeightedSeed,
		Centroid: centroid.TimeScaled,
	}
}

// Result is the outcome of Lloyd.
type Result struct {
	// Centers holds the final k centers, in seed order.
	Centers []geom.Trajectory

	// Costs holds one assignment cost per completed iteration.
	Costs []float64

	// Assignment maps each identifier to its center index in the last
	// assign step.
	Assignment map[string]int

	// Iterations is len(Costs).
	Iterations int

	// Converged reports whether the loop stopped on a fixed point rather
	// than on MaxIter.
	Converged bool
}

// Cost returns the last iteration's cost, or 0 if none ran.
func (r *Result) Cost() float64 {
	if len(r.Costs) == 0 {
		return 0
	}
	return r.Costs[len(r.Costs)-1]
}

// Members returns the identifiers assigned to center c, in ascending order.
func (r *Result) Members(c int) []string {
	var out []string
	for _, id := range slices.Sorted(maps.Keys(r.Assignment)) {
		if r.Assignment[id] == c {
			out = append(out, id)
		}
	}
	return out
}
