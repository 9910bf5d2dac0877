package dtw

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvtraj/geom"
	"github.com/katalvlaran/lvtraj/internal/concurrent"
)

type pairJob struct {
	i, j int
}

type pairResult struct {
	d   float64
	err error
}

// Pairwise returns the symmetric matrix of normalised DTW distances between
// every pair of trajs. Entry (i,j) for i<j is computed as Compute(trajs[i],
// trajs[j]) and mirrored; the diagonal is 0.
//
// workers > 1 spreads the n(n-1)/2 computations over a worker pool; results
// are placed by index, so the matrix does not depend on scheduling.
//
// Errors:
//   - ErrEmptyInput if trajs is empty or any member is empty.
//   - option errors from Compute.
func Pairwise(trajs []geom.Trajectory, opts *Options, workers int) (*mat.SymDense, error) {
	n := len(trajs)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if opts != nil {
		if err := opts.validate(); err != nil {
			return nil, err
		}
	}
	for i, t := range trajs {
		if len(t) == 0 {
			return nil, fmt.Errorf("Pairwise: trajectory %d: %w", i, ErrEmptyInput)
		}
	}

	jobs := make([]pairJob, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			jobs = append(jobs, pairJob{i: i, j: j})
		}
	}
	results := concurrent.Map(workers, jobs, func(job pairJob) pairResult {
		r, err := Compute(trajs[job.i], trajs[job.j], opts)
		return pairResult{d: r.Normalized(), err: err}
	})

	sym := mat.NewSymDense(n, nil)
	for k, job := range jobs {
		if err := results[k].err; err != nil {
			return nil, fmt.Errorf("Pairwise(%d,%d): %w", job.i, job.j, err)
		}
		sym.SetSym(job.i, job.j, results[k].d)
	}
	return sym, nil
}
