// SPDX-License-Identifier: MIT
// Package: lvtraj/builder
//
// trajectory.go - deterministic single-trajectory generators.
//
// All generators are O(n) time and memory and return a fresh slice.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvtraj/geom"
)

// Method tokens for error context.
const (
	MethodLine     = "Line"
	MethodArc      = "Arc"
	MethodZigZag   = "ZigZag"
	MethodJitter   = "Jitter"
	MethodBuildSet = "BuildSet"
)

// minSamples is the smallest trajectory a generator will produce.
const minSamples = 2

// Line returns n evenly spaced samples from `from` to `to`, both included.
func Line(from, to geom.Point, n int) (geom.Trajectory, error) {
	if n < minSamples {
		return nil, builderErrorf(MethodLine, ErrTooFewPoints, "n=%d < %d", n, minSamples)
	}
	out := make(geom.Trajectory, n)
	for i := range out {
		out[i] = geom.Lerp(from, to, float64(i)/float64(n-1))
	}
	out[n-1] = to

	return out, nil
}

// Arc returns n samples on the circle of the given radius around center,
// from angle start sweeping by sweep radians (negative sweeps run clockwise).
func Arc(center geom.Point, radius, start, sweep float64, n int) (geom.Trajectory, error) {
	if n < minSamples {
		return nil, builderErrorf(MethodArc, ErrTooFewPoints, "n=%d < %d", n, minSamples)
	}
	if !(radius > 0) || !finite(radius, start, sweep) {
		return nil, builderErrorf(MethodArc, ErrBadParameter, "radius=%g start=%g sweep=%g", radius, start, sweep)
	}
	out := make(geom.Trajectory, n)
	for i := range out {
		th := start + sweep*float64(i)/float64(n-1)
		out[i] = geom.Point{X: center.X + radius*math.Cos(th), Y: center.Y + radius*math.Sin(th)}
	}

	return out, nil
}

// ZigZag returns n samples advancing step along X and alternating between
// +amp and -amp along Y, starting at (0, 0).
func ZigZag(n int, step, amp float64) (geom.Trajectory, error) {
	if n < minSamples {
		return nil, builderErrorf(MethodZigZag, ErrTooFewPoints, "n=%d < %d", n, minSamples)
	}
	if !(step > 0) || !finite(step, amp) {
		return nil, builderErrorf(MethodZigZag, ErrBadParameter, "step=%g amp=%g", step, amp)
	}
	out := make(geom.Trajectory, n)
	for i := 1; i < n; i++ {
		y := amp
		if i%2 == 0 {
			y = -amp
		}
		out[i] = geom.Point{X: float64(i) * step, Y: y}
	}

	return out, nil
}

// Jitter returns a copy of t with independent N(0, sigma²) noise added to
// every coordinate. sigma == 0 returns a plain copy without touching rng.
func Jitter(t geom.Trajectory, sigma float64, rng *rand.Rand) (geom.Trajectory, error) {
	if sigma < 0 || !finite(sigma) {
		return nil, builderErrorf(MethodJitter, ErrBadParameter, "sigma=%g", sigma)
	}
	out := t.Clone()
	if sigma == 0 {
		return out, nil
	}
	if rng == nil {
		return nil, builderErrorf(MethodJitter, ErrNeedRandSource, "sigma=%g", sigma)
	}
	for i := range out {
		out[i].X += rng.NormFloat64() * sigma
		out[i].Y += rng.NormFloat64() * sigma
	}

	return out, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
