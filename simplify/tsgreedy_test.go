package simplify_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtraj/geom"
	"github.com/katalvlaran/lvtraj/simplify"
)

// zigzag is a small trajectory whose simplification is easy to verify by hand.
var zigzag = geom.Trajectory{{0, 0}, {1, 0.1}, {2, -0.1}, {3, 5}, {4, 6}, {5, 7}, {6, 8.1}, {7, 9}}

func TestTSGreedy_EmptyAndBadEpsilon(t *testing.T) {
	_, err := simplify.TSGreedy(geom.Trajectory{}, 0.1)
	assert.ErrorIs(t, err, geom.ErrEmptyTrajectory)

	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = simplify.TSGreedy(zigzag, eps)
		assert.ErrorIs(t, err, simplify.ErrBadEpsilon)
		assert.ErrorIs(t, err, geom.ErrInvalidInput)
	}
}

// TestTSGreedy_ZeroEpsilon verifies ε == 0 returns T unchanged.
func TestTSGreedy_ZeroEpsilon(t *testing.T) {
	out, err := simplify.TSGreedy(zigzag, 0)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(zigzag, out))

	out[0].X = 42
	assert.Equal(t, 0.0, zigzag[0].X, "result must not alias the input")
}

func TestTSGreedy_ShortInputs(t *testing.T) {
	one := geom.Trajectory{{1, 1}}
	out, err := simplify.TSGreedy(one, 0.5)
	require.NoError(t, err)
	assert.Equal(t, one, out)

	two := geom.Trajectory{{1, 1}, {2, 2}}
	out, err = simplify.TSGreedy(two, 0.5)
	require.NoError(t, err)
	assert.Equal(t, two, out)
}

// TestTSGreedy_CollinearCollapses: ten collinear samples with ε=0.01 reduce
// to the two endpoints.
func TestTSGreedy_CollinearCollapses(t *testing.T) {
	line := make(geom.Trajectory, 10)
	for i := range line {
		line[i] = geom.Point{X: float64(i), Y: 2 * float64(i)}
	}

	out, err := simplify.TSGreedy(line, 0.01)
	require.NoError(t, err)
	assert.Equal(t, geom.Trajectory{line[0], line[9]}, out)
}

func TestTSGreedy_HugeEpsilonKeepsEndpoints(t *testing.T) {
	out, err := simplify.TSGreedy(zigzag, 1e9)
	require.NoError(t, err)
	assert.Equal(t, geom.Trajectory{zigzag[0], zigzag[len(zigzag)-1]}, out)
}

// TestTSGreedy_KeepsCorner: the bend at (3,5) is the only point far from the
// chords, the ±0.1 wiggles are below ε.
func TestTSGreedy_KeepsCorner(t *testing.T) {
	out, err := simplify.TSGreedy(zigzag, 0.5)
	require.NoError(t, err)
	assert.Equal(t, geom.Trajectory{{0, 0}, {2, -0.1}, {3, 5}, {7, 9}}, out)
}

// TestTSGreedy_ErrorBound checks that every original sample lies within ε of
// the simplified polyline segment spanning it.
func TestTSGreedy_ErrorBound(t *testing.T) {
	const eps = 0.3
	tr := make(geom.Trajectory, 60)
	for i := range tr {
		x := float64(i) / 4
		tr[i] = geom.Point{X: x, Y: math.Sin(x)}
	}

	out, err := simplify.TSGreedy(tr, eps)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(out), 2)
	assert.Equal(t, tr[0], out[0])
	assert.Equal(t, tr[len(tr)-1], out[len(out)-1])

	// walk the original, tracking which simplified segment covers each sample
	seg := 0
	for _, p := range tr {
		if seg+1 < len(out)-1 && p == out[seg+1] {
			seg++
		}
		d := geom.PointToSegment(p, out[seg], out[seg+1])
		assert.Less(t, d, eps)
	}
}

func TestTSGreedy_Idempotent(t *testing.T) {
	for _, eps := range []float64{0.05, 0.5, 3} {
		once, err := simplify.TSGreedy(zigzag, eps)
		require.NoError(t, err)
		twice, err := simplify.TSGreedy(once, eps)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(once, twice), "eps=%v", eps)
	}
}

func TestSet_And_CompressionRatio(t *testing.T) {
	s := geom.Set{
		"a": zigzag,
		"b": {{0, 0}, {1, 1}, {2, 2}, {3, 3}},
	}

	out, err := simplify.Set(s, 0.5)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Len(t, out["b"], 2)
	assert.Equal(t, 2.0, simplify.CompressionRatio(s["a"], out["a"]))
	assert.Equal(t, 0.0, simplify.CompressionRatio(s["a"], nil))

	_, err = simplify.Set(geom.Set{"bad": {}}, 0.5)
	assert.ErrorIs(t, err, geom.ErrEmptyTrajectory)
}
