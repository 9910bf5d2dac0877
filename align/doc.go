// Package align computes alignment distances between two trajectories
// together with the optimal correspondence path.
//
// 🚀 What is here?
//
//   - DTW: averaged Dynamic Time Warping. Every cell holds the running
//     mean of squared point distances along the best path reaching it, not
//     a cumulative sum; the size table remembers how many cells the mean
//     covers so predecessors can be re-weighted.
//   - Frechet: discrete Fréchet distance: the minimax over monotone
//     correspondences of the pointwise Euclidean distance.
//
// Both return the path from (0,0) to (n-1,m-1). Paths are recovered by
// backtracking from the last cell and stepping to the predecessor that
// realises the cell's value, with the fixed priority
//
//	StepFromP (i-1,j)  >  StepFromQ (i,j-1)  >  StepDiagonal (i-1,j-1)
//
// The same priority decides which predecessor's size propagates during the
// fill, so results are reproducible bit for bit.
//
// For a clustering metric (distance only, classical cumulative DTW) see
// package dtw.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
package align
