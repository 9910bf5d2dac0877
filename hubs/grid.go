package hubs

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvtraj/geom"
)

// conn8 lists the cell itself and its 8 neighbours.
var conn8 = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// grid holds per-cell point counts; counts[col][row].
type grid struct {
	minX, minY    float64
	width, height float64
	cols, rows    int
	counts        [][]int
}

// newGrid bins points. Bounds are floored/ceiled to integers; a point on
// the upper bound falls into the last cell.
func newGrid(points []geom.Point, bw, bh float64) *grid {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	g := &grid{
		minX:   math.Floor(minX),
		minY:   math.Floor(minY),
		width:  bw,
		height: bh,
	}
	g.cols = max(1, int(math.Ceil((math.Ceil(maxX)-g.minX)/bw)))
	g.rows = max(1, int(math.Ceil((math.Ceil(maxY)-g.minY)/bh)))

	g.counts = make([][]int, g.cols)
	for c := range g.counts {
		g.counts[c] = make([]int, g.rows)
	}
	for _, p := range points {
		c := clamp(int(math.Floor((p.X-g.minX)/bw)), g.cols)
		r := clamp(int(math.Floor((p.Y-g.minY)/bh)), g.rows)
		g.counts[c][r]++
	}

	return g
}

// inBounds reports whether (c, r) lies inside the grid.
func (g *grid) inBounds(c, r int) bool {
	return c >= 0 && c < g.cols && r >= 0 && r < g.rows
}

// density sums the counts of (c, r) and its in-bounds neighbours.
func (g *grid) density(c, r int) int {
	sum := 0
	for _, off := range conn8 {
		nc, nr := c+off[0], r+off[1]
		if !g.inBounds(nc, nr) {
			continue
		}
		sum += g.counts[nc][nr]
	}
	return sum
}

func (g *grid) center(c, r int) geom.Point {
	return geom.Point{
		X: (float64(c)+0.5)*g.width + g.minX,
		Y: (float64(r)+0.5)*g.height + g.minY,
	}
}

// ranked returns every bin, densest first, ties by (Col, Row).
func (g *grid) ranked() []Bin {
	bins := make([]Bin, 0, g.cols*g.rows)
	for c := 0; c < g.cols; c++ {
		for r := 0; r < g.rows; r++ {
			bins = append(bins, Bin{Col: c, Row: r, Center: g.center(c, r), Density: g.density(c, r)})
		}
	}
	// bins are generated in (Col, Row) order; a stable sort keeps it for ties
	sort.SliceStable(bins, func(i, j int) bool {
		return bins[i].Density > bins[j].Density
	})

	return bins
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
