package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/lvtraj/dtw"
	"github.com/katalvlaran/lvtraj/geom"
)

// ExampleCompute contrasts the raw cumulative cost with the normalised form.
//
// Scenario:
//
//	p is a straight run, q the same run with a unit bump in the middle.
//	The optimal path is the diagonal, cost 0 + 1 + 0 over 3 cells.
func ExampleCompute() {
	p := geom.Trajectory{{0, 0}, {1, 0}, {2, 0}}
	q := geom.Trajectory{{0, 0}, {1, 1}, {2, 0}}

	res, err := dtw.Compute(p, q, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("sum=%.0f size=%d normalized=%.4f\n", res.Sum, res.Size, res.Normalized())
	// Output:
	// sum=1 size=3 normalized=0.5774
}
