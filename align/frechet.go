package align

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvtraj/geom"
)

// Frechet: discrete Fréchet distance with path.
//
// Algorithm Outline:
//  1. F[0][0] = Distance(P[0], Q[0]).
//  2. Row 0 / column 0: running max of the direct point distance.
//  3. F[i][j] = max(min(F[i-1][j], F[i][j-1], F[i-1][j-1]), Distance(P[i], Q[j])).
//  4. distance = F[n-1][m-1].
//  5. Backtrack choosing the predecessor equal to the local minimum
//     (priority i-step, j-step, diagonal).
//
// Frechet(P, Q) == Frechet(Q, P).
//
// Errors:
//   - ErrEmptyInput if either trajectory is empty.
func Frechet(p, q geom.Trajectory) (float64, Path, error) {
	n, m := len(p), len(q)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	f := mat.NewDense(n, m, nil)
	f.Set(0, 0, geom.Distance(p[0], q[0]))
	for i := 1; i < n; i++ {
		f.Set(i, 0, math.Max(f.At(i-1, 0), geom.Distance(p[i], q[0])))
	}
	for j := 1; j < m; j++ {
		f.Set(0, j, math.Max(f.At(0, j-1), geom.Distance(p[0], q[j])))
	}
	for i := 1; i < n; i++ {
		for j := 1; j < m; j++ {
			reach := min3(f.At(i-1, j), f.At(i, j-1), f.At(i-1, j-1))
			f.Set(i, j, math.Max(reach, geom.Distance(p[i], q[j])))
		}
	}

	path := make(Path, 0, n+m-1)
	i, j := n-1, m-1
	for i > 0 || j > 0 {
		path = append(path, Coord{I: i, J: j})
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			s, _ := pick(f.At(i-1, j), f.At(i, j-1), f.At(i-1, j-1))
			i, j = move(s, i, j)
		}
	}
	path = append(path, Coord{I: 0, J: 0})
	reverse(path)

	return f.At(n-1, m-1), path, nil
}

// EdgeLengths returns Distance(P[c.I], Q[c.J]) for every correspondence of
// path, in path order. Callers histogram these to inspect alignment quality.
// path is expected to come from DTW(p, q) or Frechet(p, q).
//
// Errors:
//   - ErrPathOutOfRange if a correspondence indexes past p or q.
func EdgeLengths(p, q geom.Trajectory, path Path) ([]float64, error) {
	out := make([]float64, len(path))
	for k, c := range path {
		if c.I < 0 || c.I >= len(p) || c.J < 0 || c.J >= len(q) {
			return nil, fmt.Errorf("EdgeLengths: step %d %v on %dx%d: %w", k, c, len(p), len(q), ErrPathOutOfRange)
		}
		out[k] = geom.Distance(p[c.I], q[c.J])
	}

	return out, nil
}
