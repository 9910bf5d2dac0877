package dtw

import (
	"math"

	"github.com/katalvlaran/lvtraj/geom"
)

// Compute runs classical DTW over p and q.
//
// Algorithm Outline:
//  1. D[0][0] = dist(0,0), size 1.
//  2. Row 0 / column 0 accumulate along their single predecessor.
//  3. D[i][j] = dist(i,j) + min(D[i-1][j], D[i][j-1], D[i-1][j-1]);
//     the size of the first minimal predecessor (in that order) plus one
//     becomes size[i][j].
//  4. Cells outside the window are +Inf with size 0.
//
// opts == nil uses DefaultOptions.
//
// Errors:
//   - ErrEmptyInput, ErrBadWindow, ErrBadMemoryMode.
func Compute(p, q geom.Trajectory, opts *Options) (Result, error) {
	n, m := len(p), len(q)
	if n == 0 || m == 0 {
		return Result{}, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n
	}
	acc := make([][]float64, rows)
	size := make([][]int, rows)
	for r := range acc {
		acc[r] = make([]float64, m)
		size[r] = make([]int, m)
	}

	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		cur, prev := i%rows, (i-1+rows)%rows
		for j := 0; j < m; j++ {
			if o.Window >= 0 && abs(i-j) > o.Window {
				acc[cur][j], size[cur][j] = inf, 0
				continue
			}
			cost := geom.Distance2(p[i], q[j])

			var (
				best  float64
				bestN int
			)
			switch {
			case i == 0 && j == 0:
				best, bestN = 0, 0
			case i == 0:
				best, bestN = acc[cur][j-1], size[cur][j-1]
			case j == 0:
				best, bestN = acc[prev][j], size[prev][j]
			default:
				best, bestN = acc[prev][j], size[prev][j]
				if acc[cur][j-1] < best {
					best, bestN = acc[cur][j-1], size[cur][j-1]
				}
				if acc[prev][j-1] < best {
					best, bestN = acc[prev][j-1], size[prev][j-1]
				}
			}

			if math.IsInf(best, 1) {
				acc[cur][j], size[cur][j] = inf, 0
				continue
			}
			acc[cur][j] = cost + best
			size[cur][j] = bestN + 1
		}
	}

	last := (n - 1) % rows

	return Result{Sum: acc[last][m-1], Size: size[last][m-1]}, nil
}

// Distance returns the size-normalised DTW distance sqrt(Sum/Size) with
// default options. Distance(p, p) == 0.
func Distance(p, q geom.Trajectory) (float64, error) {
	r, err := Compute(p, q, nil)
	if err != nil {
		return 0, err
	}
	return r.Normalized(), nil
}

// Raw returns the unnormalised cumulative DTW cost with default options.
func Raw(p, q geom.Trajectory) (float64, error) {
	r, err := Compute(p, q, nil)
	if err != nil {
		return 0, err
	}
	return r.Sum, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
