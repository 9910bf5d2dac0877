package simplify

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	orbsimplify "github.com/paulmach/orb/simplify"

	"github.com/katalvlaran/lvtraj/geom"
)

// Radial drops every sample within radius of the previously kept one.
// Endpoints are always kept. The input is not modified.
func Radial(t geom.Trajectory, radius float64) (geom.Trajectory, error) {
	if err := t.Validate(1); err != nil {
		return nil, fmt.Errorf("Radial: %w", err)
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 1) {
		return nil, ErrBadRadius
	}
	if radius == 0 || len(t) <= 2 {
		return t.Clone(), nil
	}

	reduced := orbsimplify.Radial(planar.Distance, radius).Simplify(t.LineString())

	return geom.FromLineString(reduced.(orb.LineString)), nil
}
