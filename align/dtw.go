package align

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvtraj/geom"
)

// DTW: averaged Dynamic Time Warping with path.
//
// Algorithm Outline:
//  1. dist[i][j] = Distance2(P[i], Q[j]).
//  2. acc[0][0] = dist[0][0], size[0][0] = 1.
//     Row 0 / column 0 extend the running mean along their only predecessor.
//  3. For i,j > 0, each predecessor (pi,pj) proposes
//     (dist[i][j] + size[pi][pj]·acc[pi][pj]) / (size[pi][pj] + 1)
//     and the minimum wins (priority from-P, from-Q, diagonal);
//     size[i][j] = size[winner] + 1.
//  4. distance = acc[n-1][m-1].
//  5. Backtrack from (n-1,m-1), re-evaluating the same candidates, until (0,0).
//
// The result is a mean squared distance along the path, not the classical
// cumulative sum; package dtw provides the latter.
//
// Errors:
//   - ErrEmptyInput if either trajectory is empty.
func DTW(p, q geom.Trajectory) (float64, Path, error) {
	n, m := len(p), len(q)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	t := newAveragedTable(p, q)
	t.fill()

	return t.acc.At(n-1, m-1), t.backtrace(), nil
}

// averagedTable holds the three DP tables of one DTW call.
type averagedTable struct {
	n, m int
	dist *mat.Dense // squared point distances
	acc  *mat.Dense // running mean along the best path
	size []int      // cells covered by acc, row-major n·m
}

func newAveragedTable(p, q geom.Trajectory) *averagedTable {
	n, m := len(p), len(q)
	t := &averagedTable{
		n:    n,
		m:    m,
		dist: mat.NewDense(n, m, nil),
		acc:  mat.NewDense(n, m, nil),
		size: make([]int, n*m),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			t.dist.Set(i, j, geom.Distance2(p[i], q[j]))
		}
	}

	return t
}

// candidate re-weights the mean at (pi,pj) with one more cell of cost d.
func (t *averagedTable) candidate(d float64, pi, pj int) float64 {
	s := float64(t.size[pi*t.m+pj])

	return (d + s*t.acc.At(pi, pj)) / (s + 1)
}

// step evaluates the three predecessors of interior cell (i,j).
func (t *averagedTable) step(i, j int) (Step, float64) {
	d := t.dist.At(i, j)

	return pick(
		t.candidate(d, i-1, j),
		t.candidate(d, i, j-1),
		t.candidate(d, i-1, j-1),
	)
}

func (t *averagedTable) extend(i, j, pi, pj int, v float64) {
	t.acc.Set(i, j, v)
	t.size[i*t.m+j] = t.size[pi*t.m+pj] + 1
}

func (t *averagedTable) fill() {
	t.acc.Set(0, 0, t.dist.At(0, 0))
	t.size[0] = 1

	for i := 1; i < t.n; i++ {
		t.extend(i, 0, i-1, 0, t.candidate(t.dist.At(i, 0), i-1, 0))
	}
	for j := 1; j < t.m; j++ {
		t.extend(0, j, 0, j-1, t.candidate(t.dist.At(0, j), 0, j-1))
	}

	for i := 1; i < t.n; i++ {
		for j := 1; j < t.m; j++ {
			s, v := t.step(i, j)
			pi, pj := move(s, i, j)
			t.extend(i, j, pi, pj, v)
		}
	}
}

func (t *averagedTable) backtrace() Path {
	path := make(Path, 0, t.n+t.m-1)
	i, j := t.n-1, t.m-1
	for i > 0 || j > 0 {
		path = append(path, Coord{I: i, J: j})
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			s, _ := t.step(i, j)
			i, j = move(s, i, j)
		}
	}
	path = append(path, Coord{I: 0, J: 0})
	reverse(path)

	return path
}
