package geom

import "math"

// Lerp returns a + t*(b-a) componentwise.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// At interpolates t at the fractional index f, between t[floor(f)] and
// t[ceil(f)] with weight f-floor(f). f is clamped to [0, len(t)-1].
// t must be non-empty.
func (t Trajectory) At(f float64) Point {
	last := float64(len(t) - 1)
	if f <= 0 {
		return t[0]
	}
	if f >= last {
		return t[len(t)-1]
	}
	lo := math.Floor(f)
	hi := math.Ceil(f)

	return Lerp(t[int(lo)], t[int(hi)], f-lo)
}
