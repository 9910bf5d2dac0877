package geom

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrInvalidInput is the root sentinel for rejected arguments.
	ErrInvalidInput = errors.New("geom: invalid input")

	// ErrEmptyTrajectory indicates a trajectory with no points.
	ErrEmptyTrajectory = fmt.Errorf("%w: empty trajectory", ErrInvalidInput)

	// ErrTooShort indicates a trajectory shorter than an operation requires.
	ErrTooShort = fmt.Errorf("%w: trajectory too short", ErrInvalidInput)

	// ErrEmptySet indicates a trajectory set with no members.
	ErrEmptySet = fmt.Errorf("%w: empty trajectory set", ErrInvalidInput)

	// ErrUnknownID indicates a key that is not a member of the set.
	ErrUnknownID = fmt.Errorf("%w: unknown trajectory id", ErrInvalidInput)
)

// Point is an immutable planar sample.
type Point struct {
	X, Y float64
}

// Trajectory is an ordered sequence of points. The index acts as time.
type Trajectory []Point

// Set maps an opaque identifier to a trajectory.
type Set map[string]Trajectory

// Len returns the number of samples.
func (t Trajectory) Len() int { return len(t) }

// Clone returns an independent copy of t.
func (t Trajectory) Clone() Trajectory {
	if t == nil {
		return nil
	}
	out := make(Trajectory, len(t))
	copy(out, t)

	return out
}

// Equal reports exact pointwise equality.
func (t Trajectory) Equal(o Trajectory) bool {
	return slices.Equal(t, o)
}

// Validate returns ErrEmptyTrajectory for an empty trajectory and
// ErrTooShort when len(t) < min.
func (t Trajectory) Validate(min int) error {
	if len(t) == 0 {
		return ErrEmptyTrajectory
	}
	if len(t) < min {
		return fmt.Errorf("%w: have %d points, need %d", ErrTooShort, len(t), min)
	}

	return nil
}

// Keys returns the identifiers of s in ascending order. This is the
// canonical iteration order for every deterministic tie-break.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Subset returns a new Set holding only the given keys.
func (s Set) Subset(keys []string) (Set, error) {
	out := make(Set, len(keys))
	for _, k := range keys {
		t, ok := s[k]
		if !ok {
			return nil, fmt.Errorf("Subset(%q): %w", k, ErrUnknownID)
		}
		out[k] = t
	}

	return out, nil
}

// Validate checks that s is non-empty and every member has at least min points.
func (s Set) Validate(min int) error {
	if len(s) == 0 {
		return ErrEmptySet
	}
	for _, k := range s.Keys() {
		if err := s[k].Validate(min); err != nil {
			return fmt.Errorf("trajectory %q: %w", k, err)
		}
	}

	return nil
}

// Trajectories returns the members of s in Keys() order.
func (s Set) Trajectories() []Trajectory {
	keys := s.Keys()
	out := make([]Trajectory, len(keys))
	for i, k := range keys {
		out[i] = s[k]
	}

	return out
}
