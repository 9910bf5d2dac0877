package centroid_test

import (
	"fmt"

	"github.com/katalvlaran/lvtraj/centroid"
	"github.com/katalvlaran/lvtraj/geom"
)

// ExampleCompute averages a short and a long trajectory on a shared
// virtual time axis.
func ExampleCompute() {
	s := geom.Set{
		"short": {{0, 0}, {2, 0}},
		"long":  {{0, 2}, {1, 2}, {2, 2}},
	}
	c, _ := centroid.Compute(s, centroid.TimeScaled)
	fmt.Println(c)
	// Output: [{0 1} {1 1} {2 1}]
}
