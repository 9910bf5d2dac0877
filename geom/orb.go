package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// LineString converts t to an orb.LineString.
func (t Trajectory) LineString() orb.LineString {
	ls := make(orb.LineString, len(t))
	for i, p := range t {
		ls[i] = orb.Point{p.X, p.Y}
	}

	return ls
}

// FromLineString converts an orb.LineString to a Trajectory.
func FromLineString(ls orb.LineString) Trajectory {
	t := make(Trajectory, len(ls))
	for i, p := range ls {
		t[i] = Point{X: p[0], Y: p[1]}
	}

	return t
}

// Bound returns the axis-aligned bounding box of t.
func (t Trajectory) Bound() orb.Bound {
	return t.LineString().Bound()
}

// Length returns the planar arc length of t.
func (t Trajectory) Length() float64 {
	if len(t) < 2 {
		return 0
	}

	return planar.Length(t.LineString())
}

// CumulativeLength returns the arc length travelled up to each sample;
// the first entry is always 0.
func (t Trajectory) CumulativeLength() []float64 {
	cum := make([]float64, len(t))
	for i := 1; i < len(t); i++ {
		cum[i] = cum[i-1] + planar.Distance(orb.Point{t[i-1].X, t[i-1].Y}, orb.Point{t[i].X, t[i].Y})
	}

	return cum
}
