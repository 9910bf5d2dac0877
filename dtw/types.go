package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtraj/geom"
)

var (
	// ErrEmptyInput indicates one or both trajectories are empty.
	ErrEmptyInput = fmt.Errorf("dtw: %w: trajectories must be non-empty", geom.ErrInvalidInput)

	// ErrBadWindow indicates Window < -1.
	ErrBadWindow = fmt.Errorf("dtw: %w: window must be ≥ -1", geom.ErrInvalidInput)

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = fmt.Errorf("dtw: %w: unknown memory mode", geom.ErrInvalidInput)
)

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix: keep every row. Memory: O(n·m).
//   - TwoRows: keep the previous and current row. Memory: O(m).
//
// Both produce identical results.
type MemoryMode int

const (
	// FullMatrix mode: store all rows.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows.
	TwoRows
)

// Options configures DTW.
//
// Fields:
//   - Window: maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     -1 means no constraint; values below -1 are rejected.
//   - MemoryMode: FullMatrix or TwoRows storage.
type Options struct {
	Window     int
	MemoryMode MemoryMode
}

// DefaultOptions returns an unconstrained, two-row configuration.
func DefaultOptions() Options {
	return Options{
		Window:     -1,
		MemoryMode: TwoRows,
	}
}

func (o Options) validate() error {
	if o.Window < -1 {
		return ErrBadWindow
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return ErrBadMemoryMode
	}
	return nil
}

// Result is the cumulative cost of the optimal warping path and the number
// of cells on it. Size is 0 when the window admits no path (Sum is +Inf).
type Result struct {
	Sum  float64
	Size int
}

// Normalized returns sqrt(Sum/Size), the root mean squared point distance
// along the optimal path, or +Inf if no path exists.
func (r Result) Normalized() float64 {
	if r.Size == 0 || math.IsInf(r.Sum, 1) {
		return math.Inf(1)
	}
	return math.Sqrt(r.Sum / float64(r.Size))
}
