// Package simplify reduces trajectories to error-bounded subsequences.
//
// 🚀 TS-Greedy
//
//	TSGreedy is a recursive worst-point split in the Douglas–Peucker family:
//	  1. find the interior sample farthest from the chord (T[lo], T[hi]);
//	  2. if its distance is ≥ ε, keep it and recurse on both halves;
//	  3. otherwise drop every interior sample of the range.
//	The kept samples are an ordered subsequence of T that always contains
//	T[0] and T[len-1]. ε == 0 is a no-op.
//
// ✨ Extras:
//   - Set: simplify every member of a geom.Set with the same ε
//   - CompressionRatio: len(original)/len(simplified)
//   - Radial: orb's radial-distance thinning, a cheap pre-filter
//
// Complexity:
//
//	Time   = O(n log n) typical, O(n²) worst case
//	Memory = O(n) output + O(depth) recursion
package simplify
