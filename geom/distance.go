package geom

import "math"

// Distance2 returns the squared Euclidean distance between p and q.
func Distance2(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Sqrt(Distance2(p, q))
}

// PointToSegment returns the distance from p to the closed segment [a,b].
//
// The projection parameter t is clamped to the segment: t < 0 measures to a,
// t > 1 measures to b. A degenerate segment (a == b) measures to a.
//
// Complexity: O(1).
func PointToSegment(p, a, b Point) float64 {
	l2 := Distance2(a, b)
	if l2 == 0 {
		return Distance(p, a)
	}

	t := ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / l2
	if t < 0 {
		return Distance(p, a)
	}
	if t > 1 {
		return Distance(p, b)
	}

	return Distance(p, Lerp(a, b, t))
}
