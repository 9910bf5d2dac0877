// SPDX-License-Identifier: MIT
// Package: lvtraj/builder
//
// set.go - trajectory set construction.
//
// Determinism policy:
//   - The TrajectoryFn receives the configured RNG (nil unless WithSeed or
//     WithRand was given) and is called for i = 0..n-1 in order.
//   - Noise from WithNoise is drawn from the same stream right after each
//     trajectory is generated.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvtraj/geom"
)

// TrajectoryFn generates the i-th member of a set.
type TrajectoryFn func(i int, rng *rand.Rand) (geom.Trajectory, error)

// BuildSet calls gen for i = 0..n-1 and keys each result by the configured
// IDFn.
func BuildSet(n int, gen TrajectoryFn, opts ...BuilderOption) (geom.Set, error) {
	if n < 1 {
		return nil, builderErrorf(MethodBuildSet, ErrTooFewPoints, "n=%d < 1", n)
	}
	if gen == nil {
		return nil, builderErrorf(MethodBuildSet, ErrBadParameter, "nil generator")
	}
	cfg := newBuilderConfig(opts...)
	if cfg.noiseSigma > 0 && cfg.rng == nil {
		return nil, builderErrorf(MethodBuildSet, ErrNeedRandSource, "noise=%g", cfg.noiseSigma)
	}

	s := make(geom.Set, n)
	for i := 0; i < n; i++ {
		t, err := gen(i, cfg.rng)
		if err != nil {
			return nil, builderErrorf(MethodBuildSet, err, "member %d", i)
		}
		if t, err = Jitter(t, cfg.noiseSigma, cfg.rng); err != nil {
			return nil, builderErrorf(MethodBuildSet, err, "member %d", i)
		}
		id := cfg.idFn(i)
		if _, dup := s[id]; dup {
			return nil, builderErrorf(MethodBuildSet, ErrDuplicateID, "%q at index %d", id, i)
		}
		s[id] = t
	}

	return s, nil
}

// Bundles returns a TrajectoryFn cycling through protos: member i is a
// copy of protos[i%len(protos)] jittered by sigma. It is the usual fixture
// for clustering, with len(protos) well-separated groups.
func Bundles(protos []geom.Trajectory, sigma float64) TrajectoryFn {
	return func(i int, rng *rand.Rand) (geom.Trajectory, error) {
		if len(protos) == 0 {
			return nil, ErrTooFewPoints
		}
		return Jitter(protos[i%len(protos)], sigma, rng)
	}
}

// Fixed returns a TrajectoryFn that always yields a copy of t.
func Fixed(t geom.Trajectory) TrajectoryFn {
	return func(int, *rand.Rand) (geom.Trajectory, error) {
		return t.Clone(), nil
	}
}
