package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtraj/dtw"
	"github.com/katalvlaran/lvtraj/geom"
)

var (
	flat = geom.Trajectory{{0, 0}, {1, 0}, {2, 0}}
	bump = geom.Trajectory{{0, 0}, {1, 1}, {2, 0}}
)

func wave(n int, phase float64) geom.Trajectory {
	t := make(geom.Trajectory, n)
	for i := range t {
		x := float64(i) * 0.25
		t[i] = geom.Point{X: x, Y: math.Cos(x + phase)}
	}
	return t
}

// TestCompute_EmptyInput verifies that Compute returns ErrEmptyInput
// when either trajectory is empty.
func TestCompute_EmptyInput(t *testing.T) {
	_, err := dtw.Compute(geom.Trajectory{}, flat, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first trajectory should error")

	_, err = dtw.Compute(flat, nil, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second trajectory should error")
	assert.ErrorIs(t, err, geom.ErrInvalidInput)
}

// TestCompute_BadOptions ensures Window < -1 and unknown modes are rejected.
func TestCompute_BadOptions(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = -2
	_, err := dtw.Compute(flat, bump, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadWindow)

	opts = dtw.DefaultOptions()
	opts.MemoryMode = dtw.MemoryMode(9)
	_, err = dtw.Compute(flat, bump, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadMemoryMode)
}

// TestCompute_FlatVsBump checks the classical cumulative table by hand:
// the optimal path is the diagonal with costs 0 + 1 + 0.
func TestCompute_FlatVsBump(t *testing.T) {
	res, err := dtw.Compute(flat, bump, nil)
	require.NoError(t, err)
	assert.Equal(t, dtw.Result{Sum: 1, Size: 3}, res)
	assert.InDelta(t, math.Sqrt(1.0/3.0), res.Normalized(), 1e-12)

	raw, err := dtw.Raw(flat, bump)
	require.NoError(t, err)
	assert.Equal(t, 1.0, raw)

	d, err := dtw.Distance(flat, bump)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.0/3.0), d, 1e-12)
}

// TestCompute_SizeFollowsWarp: a stretched copy costs nothing but the path
// covers every sample of the longer side.
func TestCompute_SizeFollowsWarp(t *testing.T) {
	p := geom.Trajectory{{0, 0}, {1, 0}, {2, 0}}
	q := geom.Trajectory{{0, 0}, {1, 0}, {1, 0}, {1, 0}, {2, 0}}

	res, err := dtw.Compute(p, q, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Sum)
	assert.Equal(t, 5, res.Size)
	assert.Equal(t, 0.0, res.Normalized())
}

func TestDistance_SelfIsZero(t *testing.T) {
	for _, tr := range []geom.Trajectory{flat, bump, wave(30, 0.3), {{7, 7}}} {
		d, err := dtw.Distance(tr, tr)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	}
}

// TestCompute_WindowConstraint verifies that a strict window = 0 with a
// length mismatch leaves no admissible path.
func TestCompute_WindowConstraint(t *testing.T) {
	q := geom.Trajectory{{0, 0}, {2, 0}}
	opts := dtw.Options{Window: 0, MemoryMode: dtw.FullMatrix}

	res, err := dtw.Compute(flat, q, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Sum, 1))
	assert.Equal(t, 0, res.Size)
	assert.True(t, math.IsInf(res.Normalized(), 1))

	opts.Window = 1
	res, err = dtw.Compute(flat, q, &opts)
	require.NoError(t, err)
	assert.False(t, math.IsInf(res.Sum, 1))
}

// TestCompute_TwoRowsMatchesFullMatrix confirms both memory modes agree.
func TestCompute_TwoRowsMatchesFullMatrix(t *testing.T) {
	p, q := wave(23, 0), wave(17, 0.8)

	for _, w := range []int{-1, 3, 10} {
		full := dtw.Options{Window: w, MemoryMode: dtw.FullMatrix}
		rows := dtw.Options{Window: w, MemoryMode: dtw.TwoRows}

		a, err := dtw.Compute(p, q, &full)
		require.NoError(t, err)
		b, err := dtw.Compute(p, q, &rows)
		require.NoError(t, err)
		assert.Equal(t, a, b, "window=%d", w)
	}
}

func TestCompute_WindowNeverBeatsUnconstrained(t *testing.T) {
	p, q := wave(20, 0), wave(20, 1.1)

	free, err := dtw.Compute(p, q, nil)
	require.NoError(t, err)
	banded, err := dtw.Compute(p, q, &dtw.Options{Window: 2, MemoryMode: dtw.TwoRows})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, banded.Sum, free.Sum)
}

func TestPairwise(t *testing.T) {
	trajs := []geom.Trajectory{flat, bump, wave(9, 0), wave(12, 2)}

	seq, err := dtw.Pairwise(trajs, nil, 1)
	require.NoError(t, err)
	par, err := dtw.Pairwise(trajs, nil, 4)
	require.NoError(t, err)

	n := len(trajs)
	require.Equal(t, n, seq.SymmetricDim())
	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, seq.At(i, i))
		for j := 0; j < n; j++ {
			assert.Equal(t, seq.At(i, j), seq.At(j, i))
			assert.Equal(t, seq.At(i, j), par.At(i, j), "worker count must not change results")
		}
	}

	d, err := dtw.Distance(flat, bump)
	require.NoError(t, err)
	assert.Equal(t, d, seq.At(0, 1))
}

func TestPairwise_Errors(t *testing.T) {
	_, err := dtw.Pairwise(nil, nil, 1)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, err = dtw.Pairwise([]geom.Trajectory{flat, {}}, nil, 2)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, err = dtw.Pairwise([]geom.Trajectory{flat}, &dtw.Options{Window: -5}, 1)
	assert.ErrorIs(t, err, dtw.ErrBadWindow)
}
