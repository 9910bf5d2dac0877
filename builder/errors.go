// SPDX-License-Identifier: MIT
// Package: lvtraj/builder
//
// errors.go - sentinel errors for the builder package.
//
// Every sentinel wraps geom.ErrInvalidInput; callers branch with errors.Is.
// Context is attached at the call site with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtraj/geom"
)

var (
	// ErrTooFewPoints indicates a sample or member count below the minimum.
	ErrTooFewPoints = fmt.Errorf("builder: %w: parameter too small", geom.ErrInvalidInput)

	// ErrBadParameter indicates a non-finite or out-of-range scalar.
	ErrBadParameter = fmt.Errorf("builder: %w: bad parameter", geom.ErrInvalidInput)

	// ErrNeedRandSource indicates a stochastic step without an RNG
	// (set WithSeed or WithRand).
	ErrNeedRandSource = fmt.Errorf("builder: %w: rng is required", geom.ErrInvalidInput)

	// ErrDuplicateID indicates that the IDFn returned the same identifier
	// for two indices.
	ErrDuplicateID = fmt.Errorf("builder: %w: duplicate identifier", geom.ErrInvalidInput)
)

// builderErrorf attaches method context to a sentinel.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}
