// Package centroid derives one representative trajectory from a set.
//
// Strategies:
//
//   - Medoid: the member with the smallest summed DTW distance to
//     all other members. Never invents points.
//   - TimeScaled: every member is resampled by linear interpolation to
//     the length of the longest member over a virtual time axis, then the
//     samples are averaged index by index. This is the strategy the
//     clustering loop uses by default.
//   - DistanceScaled: every member is resampled at equal arc-length
//     stations spanning the longest member's total length, then averaged
//     station by station, so samples line up by distance travelled rather
//     than by sample count.
//
// Ties in Medoid resolve to the first identifier in ascending order.
package centroid
