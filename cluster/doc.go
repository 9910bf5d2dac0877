// Package cluster groups trajectories around k representative centers with
// Lloyd's algorithm, using the normalised DTW distance as the metric.
//
// The loop is a small state machine:
//
//	Seed → Assign → Update → (Converged | Iterate) → Done
//
//   - Seed: a SeedFunc draws k distinct members as initial centers.
//     RandomSeed samples uniformly; WeightedSeed follows k-means++ and
//     favours members far from the centers already drawn.
//   - Assign: every member joins the center with the smallest
//     dtw.Distance, lowest center index on ties. The sum of those minima is
//     the iteration cost.
//   - Update: each non-empty partition is replaced by its centroid
//     (centroid.TimeScaled unless Options.Centroid says otherwise). An empty
//     partition is re-seeded with one fresh draw from the SeedFunc, which
//     can raise the cost of the next iteration.
//   - Converged: the new centers equal the previous ones point for point.
//     Equality is exact, so floating-point drift can keep the loop running
//     until MaxIter; convergence is best effort.
//
// Randomness comes only from a *rand.Rand built from Options.Seed
// (0 selects a fixed default), so runs are reproducible. Distance jobs of
// the assign step may fan out over Options.Workers goroutines; results are
// merged by identifier before any tie-break runs.
package cluster
