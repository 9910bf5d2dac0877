package cluster_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvtraj/cluster"
	"github.com/katalvlaran/lvtraj/geom"
)

func benchSet(n, length int) geom.Set {
	s := make(geom.Set, n)
	for i := 0; i < n; i++ {
		tr := make(geom.Trajectory, length)
		for j := range tr {
			x := float64(j) * 0.1
			tr[j] = geom.Point{X: x, Y: float64(i%4)*3 + math.Sin(x+float64(i))}
		}
		s[fmt.Sprintf("t%03d", i)] = tr
	}
	return s
}

func BenchmarkLloyd(b *testing.B) {
	s := benchSet(40, 60)
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			opts := cluster.DefaultOptions(4)
			opts.MaxIter = 10
			opts.Workers = w
			for i := 0; i < b.N; i++ {
				if _, err := cluster.Lloyd(s, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
