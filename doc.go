// Package lvtraj measures, simplifies and clusters 2-D trajectories:
// ordered (x, y) samples keyed by an identifier.
//
// 🚀 What is lvtraj?
//
//	A small, deterministic toolkit that brings together:
//		• Geometry: points, trajectories, sets, segment distance, orb bridges
//		• Simplification: error-bounded TS-Greedy, radial thinning
//		• Alignment: averaged DTW and discrete Fréchet with optimal paths
//		• Distance: classical DTW, raw and size-normalised, pairwise matrices
//		• Centroids: medoid, time-scaled and distance-scaled averages
//		• Clustering: Lloyd's algorithm with random and k-means++ seeding
//		• Hubs: density-ranked, well-separated sample hotspots
//
// ✨ Why lvtraj?
//
//   - Reproducible: every random choice flows from an explicit seed
//   - Parallel where it pays: distance jobs fan out, tie-breaks stay ordered
//   - Typed errors: every validation failure matches geom.ErrInvalidInput
//
// Packages:
//
//	geom/      fundamental Point, Trajectory and Set types
//	simplify/  polyline reduction
//	align/     alignment paths (DTW, Fréchet)
//	dtw/       metric DTW distance and pairwise matrices
//	centroid/  representative trajectory of a set
//	cluster/   Lloyd's loop and seeding
//	hubs/      grid-density hub detection
//	builder/   synthetic trajectories and sets for tests and demos
//	cmd/trajlab  end-to-end pipeline over synthetic data
//
// Quick example:
//
//	P = (0,0)─(1,0)─(2,0)
//	Q = (0,0)─(1,1)─(2,0)
//
//	align.DTW(P, Q)     → 1/3, path (0,0) (1,1) (2,2)
//	align.Frechet(P, Q) → 1,   path (0,0) (1,1) (1,2) (2,2)
//	dtw.Distance(P, Q)  → √(1/3)
//
//	go get github.com/katalvlaran/lvtraj
package lvtraj
