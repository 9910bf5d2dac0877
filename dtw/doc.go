// Package dtw computes Dynamic Time Warping distances between trajectories,
// for use as a clustering metric.
//
// 🚀 What is DTW?
//
//	DTW finds the best monotone correspondence between two sequences by
//	warping the time axis to minimise the cumulative cost. Here the cost
//	of matching P[i] with Q[j] is the squared Euclidean distance.
//
// ✨ Key features:
//   - classical cumulative recurrence D = dist + min(D↑, D←, D↖)
//   - the number of cells on the optimal path is tracked alongside D, so
//     Result exposes both the raw sum and the size-normalised root mean
//     square distance used throughout clustering
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - FullMatrix or TwoRows storage
//   - Pairwise distance matrices over many trajectories, optionally on a
//     worker pool
//
// ⚙️ Usage:
//
//	d, err := dtw.Distance(p, q)          // sqrt(Sum/Size)
//	raw, err := dtw.Raw(p, q)             // Sum
//	res, err := dtw.Compute(p, q, &dtw.Options{Window: 10, MemoryMode: dtw.TwoRows})
//
// This package never returns a path; package align owns path recovery
// (and uses a different, running-average recurrence).
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
