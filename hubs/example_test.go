package hubs_test

import (
	"fmt"

	"github.com/katalvlaran/lvtraj/geom"
	"github.com/katalvlaran/lvtraj/hubs"
)

// ExampleFind pulls two separated hubs out of two blobs of samples.
func ExampleFind() {
	pts := []geom.Point{
		{1.2, 1.4}, {1.5, 1.5}, {1.7, 1.1},
		{8.2, 8.4}, {8.6, 8.9},
	}
	opts := hubs.Options{BinWidth: 1, BinHeight: 1, K: 2, Radius: 4}
	found, _ := hubs.Find(pts, opts)
	fmt.Println(found)
	// Output: [{1.5 1.5} {7.5 7.5}]
}
