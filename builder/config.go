// SPDX-License-Identifier: MIT
// Package: lvtraj/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn  = DefaultIDFn ("0","1","2",...)
//   - rng   = nil (pure unless seeded)
//   - noise = 0   (no jitter)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by BuildSet.
type builderConfig struct {
	// Identifier strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic generators; nil means no randomness.
	rng *rand.Rand
	// Gaussian jitter sigma applied to every generated trajectory.
	noiseSigma float64
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
