// Package geom holds the planar primitives shared by every lvtraj package:
// points, trajectories, identifier-keyed trajectory sets and the distance
// helpers the alignment, simplification and clustering code is built on.
//
// 🚀 What lives here?
//
//   - Point / Trajectory / Set value types
//   - Distance2, Distance and PointToSegment (the simplification error metric)
//   - Lerp / At for fractional-index interpolation
//   - Arc length, bounds and orb.LineString conversion (via paulmach/orb)
//   - Encoded polyline interchange (via twpayne/go-polyline)
//
// Error kinds:
//
//	ErrInvalidInput is the root "bad input" sentinel. Every package in the
//	module wraps its own validation sentinels around it, so callers can
//	branch on errors.Is(err, geom.ErrInvalidInput) regardless of origin.
//
// A zero-length segment is not an error: PointToSegment degrades to the
// point distance to the segment's (single) endpoint.
package geom
