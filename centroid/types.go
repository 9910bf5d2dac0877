package centroid

import (
	"fmt"

	"github.com/katalvlaran/lvtraj/geom"
)

// ErrUnknownStrategy indicates a Strategy value outside the declared set.
var ErrUnknownStrategy = fmt.Errorf("centroid: %w: unknown strategy", geom.ErrInvalidInput)

// Strategy selects how Compute builds the representative trajectory.
type Strategy int

const (
	// Medoid picks the member minimising total DTW distance.
	Medoid Strategy = iota
	// TimeScaled averages members resampled by sample index.
	TimeScaled
	// DistanceScaled averages members resampled by arc length.
	DistanceScaled
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Medoid:
		return "medoid"
	case TimeScaled:
		return "time"
	case DistanceScaled:
		return "distance"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "medoid":
		return Medoid, nil
	case "time":
		return TimeScaled, nil
	case "distance":
		return DistanceScaled, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}
