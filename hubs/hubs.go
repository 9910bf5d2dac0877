package hubs

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/lvtraj/geom"
)

// hub is an accepted centre stored in the separation index.
type hub struct {
	p    geom.Point
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (h *hub) Bounds() rtreego.Rect {
	return h.rect
}

// Find returns at most opts.K bin centres, densest first, pairwise at least
// opts.Radius apart.
func Find(points []geom.Point, opts Options) ([]geom.Point, error) {
	bins, err := Rank(points, opts)
	if err != nil {
		return nil, err
	}

	half := opts.Radius / 2
	tree := rtreego.NewTree(2, 25, 50)
	out := make([]geom.Point, 0, opts.K)
	for _, b := range bins {
		if opts.Radius > 0 && tooClose(tree, b.Center, half, opts.Radius) {
			continue
		}
		out = append(out, b.Center)
		tree.Insert(&hub{p: b.Center, rect: rtreego.Point{b.Center.X, b.Center.Y}.ToRect(half)})
		if len(out) == opts.K {
			break
		}
	}

	return out, nil
}

// Rank bins points per opts and returns every bin in selection order.
func Rank(points []geom.Point, opts Options) ([]Bin, error) {
	if err := validate(points, opts); err != nil {
		return nil, err
	}
	return newGrid(points, opts.BinWidth, opts.BinHeight).ranked(), nil
}

// tooClose reports whether an accepted hub lies strictly within r of p.
// Hub boxes have half-side r/2, so any hub within r overlaps the query box.
func tooClose(tree *rtreego.Rtree, p geom.Point, half, r float64) bool {
	query := rtreego.Point{p.X, p.Y}.ToRect(half)
	for _, s := range tree.SearchIntersect(query) {
		if geom.Distance(p, s.(*hub).p) < r {
			return true
		}
	}
	return false
}

func validate(points []geom.Point, opts Options) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("point %d %v: %w", i, p, ErrBadPoint)
		}
	}
	if !positive(opts.BinWidth) || !positive(opts.BinHeight) {
		return ErrBadBin
	}
	if opts.K < 1 {
		return ErrBadK
	}
	if opts.Radius < 0 || math.IsNaN(opts.Radius) || math.IsInf(opts.Radius, 0) {
		return ErrBadRadius
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
