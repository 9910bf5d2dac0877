package hubs

import (
	"fmt"

	"github.com/katalvlaran/lvtraj/geom"
)

// Sentinel errors for hub detection.
var (
	// ErrNoPoints indicates an empty point cloud.
	ErrNoPoints = fmt.Errorf("hubs: %w: no points", geom.ErrInvalidInput)
	// ErrBadPoint indicates a point with a NaN or infinite coordinate.
	ErrBadPoint = fmt.Errorf("hubs: %w: point coordinates must be finite", geom.ErrInvalidInput)
	// ErrBadBin indicates a non-positive or non-finite bin dimension.
	ErrBadBin = fmt.Errorf("hubs: %w: bin width and height must be positive", geom.ErrInvalidInput)
	// ErrBadK indicates K < 1.
	ErrBadK = fmt.Errorf("hubs: %w: K must be at least 1", geom.ErrInvalidInput)
	// ErrBadRadius indicates a negative or non-finite radius.
	ErrBadRadius = fmt.Errorf("hubs: %w: radius must be non-negative", geom.ErrInvalidInput)
)

// Options controls binning and selection.
type Options struct {
	BinWidth  float64 // bin size along X
	BinHeight float64 // bin size along Y
	K         int     // maximum number of hubs
	Radius    float64 // minimum distance between hubs
}

// DefaultOptions returns unit bins, 10 hubs, radius 8.
func DefaultOptions() Options {
	return Options{
		BinWidth:  1,
		BinHeight: 1,
		K:         10,
		Radius:    8,
	}
}

// Bin is one grid cell with its neighbourhood density.
type Bin struct {
	Col, Row int        // grid coordinates
	Center   geom.Point // cell centre in input coordinates
	Density  int        // points in the 3×3 block around the cell
}
