package align

import (
	"fmt"

	"github.com/katalvlaran/lvtraj/geom"
)

var (
	// ErrEmptyInput indicates one or both trajectories are empty.
	ErrEmptyInput = fmt.Errorf("align: %w: trajectories must be non-empty", geom.ErrInvalidInput)

	// ErrPathOutOfRange indicates a path that does not fit the trajectories.
	ErrPathOutOfRange = fmt.Errorf("align: %w: path index out of range", geom.ErrInvalidInput)
)

// Coord is one (i, j) correspondence: P[I] is matched with Q[J].
type Coord struct {
	I, J int
}

// Path is an ordered, monotone sequence of correspondences.
type Path []Coord

// Step names a backtrace move. The declaration order is the tie-break
// priority.
type Step int

const (
	// StepFromP moves to (i-1, j): P advanced while Q stayed.
	StepFromP Step = iota
	// StepFromQ moves to (i, j-1): Q advanced while P stayed.
	StepFromQ
	// StepDiagonal moves to (i-1, j-1): both advanced.
	StepDiagonal
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepFromP:
		return "from-P"
	case StepFromQ:
		return "from-Q"
	case StepDiagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// pick returns the first step, in priority order, whose candidate equals the
// minimum of the three.
func pick(fromP, fromQ, diag float64) (Step, float64) {
	best := min3(fromP, fromQ, diag)
	switch best {
	case fromP:
		return StepFromP, best
	case fromQ:
		return StepFromQ, best
	default:
		return StepDiagonal, best
	}
}

// move applies s to (i, j).
func move(s Step, i, j int) (int, int) {
	switch s {
	case StepFromP:
		return i - 1, j
	case StepFromQ:
		return i, j - 1
	default:
		return i - 1, j - 1
	}
}

// reverse flips p in place.
func reverse(p Path) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
