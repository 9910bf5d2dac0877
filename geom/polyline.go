package geom

import (
	"fmt"

	"github.com/twpayne/go-polyline"
)

// EncodePolyline encodes t in the Google polyline format (5 decimal places).
// Points are written as (Y, X) pairs, the lat/lng order the format expects.
func EncodePolyline(t Trajectory) string {
	coords := make([][]float64, 0, len(t))
	for _, p := range t {
		coords = append(coords, []float64{p.Y, p.X})
	}

	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline is the inverse of EncodePolyline. Precision is limited to
// the format's 1e-5 quantum.
func DecodePolyline(s string) (Trajectory, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("DecodePolyline: %w: %v", ErrInvalidInput, err)
	}
	t := make(Trajectory, len(coords))
	for i, c := range coords {
		t[i] = Point{X: c[1], Y: c[0]}
	}

	return t, nil
}
