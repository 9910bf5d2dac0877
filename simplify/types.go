package simplify

import (
	"fmt"

	"github.com/katalvlaran/lvtraj/geom"
)

var (
	// ErrBadEpsilon indicates a negative or NaN tolerance.
	ErrBadEpsilon = fmt.Errorf("simplify: %w: epsilon must be a finite value ≥ 0", geom.ErrInvalidInput)

	// ErrBadRadius indicates a negative or NaN radial threshold.
	ErrBadRadius = fmt.Errorf("simplify: %w: radius must be a finite value ≥ 0", geom.ErrInvalidInput)
)
