package centroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtraj/centroid"
	"github.com/katalvlaran/lvtraj/geom"
)

const eps = 1e-9

func requirePointsInDelta(t *testing.T, want, got geom.Trajectory) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, eps, "X at %d", i)
		assert.InDelta(t, want[i].Y, got[i].Y, eps, "Y at %d", i)
	}
}

// TestMedoid_PicksMiddle: the bump lies between the flat line and the tall
// bump, so its summed distance is the smallest.
func TestMedoid_PicksMiddle(t *testing.T) {
	s := geom.Set{
		"a": {{0, 0}, {1, 0}, {2, 0}},
		"b": {{0, 0}, {1, 1}, {2, 0}},
		"c": {{0, 0}, {1, 2}, {2, 0}},
	}
	got, err := centroid.Compute(s, centroid.Medoid)
	require.NoError(t, err)
	assert.True(t, got.Equal(s["b"]))

	// result is a copy
	got[0].X = 42
	assert.Equal(t, 0.0, s["b"][0].X)
}

// TestMedoid_TieGoesToFirstKey checks the ascending identifier tie-break.
func TestMedoid_TieGoesToFirstKey(t *testing.T) {
	s := geom.Set{
		"y": {{0, 0}, {1, 1}, {2, 0}},
		"x": {{0, 0}, {1, 0}, {2, 0}},
	}
	got, err := centroid.Compute(s, centroid.Medoid)
	require.NoError(t, err)
	assert.True(t, got.Equal(s["x"]))
}

func TestMedoid_Singleton(t *testing.T) {
	s := geom.Set{"only": {{3, 4}}}
	got, err := centroid.ComputeMedoid(s, 4)
	require.NoError(t, err)
	assert.True(t, got.Equal(s["only"]))
}

// TestTimeScaled_Resamples: the two-point member is stretched to three
// samples before averaging.
func TestTimeScaled_Resamples(t *testing.T) {
	s := geom.Set{
		"a": {{0, 0}, {2, 0}},
		"b": {{0, 2}, {1, 2}, {2, 2}},
	}
	got, err := centroid.Compute(s, centroid.TimeScaled)
	require.NoError(t, err)
	requirePointsInDelta(t, geom.Trajectory{{0, 1}, {1, 1}, {2, 1}}, got)
}

func TestTimeScaled_TooShort(t *testing.T) {
	s := geom.Set{
		"a": {{0, 0}, {2, 0}},
		"b": {{1, 1}},
	}
	_, err := centroid.Compute(s, centroid.TimeScaled)
	assert.ErrorIs(t, err, geom.ErrTooShort)
	assert.ErrorIs(t, err, geom.ErrInvalidInput)
}

// TestDistanceScaled_HoldsLastPoint: stations run to the longest arc length,
// so the shorter member repeats its end point.
func TestDistanceScaled_HoldsLastPoint(t *testing.T) {
	s := geom.Set{
		"a": {{0, 0}, {4, 0}},
		"b": {{0, 1}, {1, 1}, {2, 1}},
	}
	got, err := centroid.Compute(s, centroid.DistanceScaled)
	require.NoError(t, err)
	requirePointsInDelta(t, geom.Trajectory{{0, 0.5}, {2, 0.5}, {3, 0.5}}, got)
}

func TestDistanceScaled_ZeroLengthMember(t *testing.T) {
	s := geom.Set{
		"a": {{1, 1}, {1, 1}},
		"b": {{0, 0}, {2, 0}},
	}
	got, err := centroid.ComputeDistanceScaled(s)
	require.NoError(t, err)
	requirePointsInDelta(t, geom.Trajectory{{0.5, 0.5}, {1.5, 0.5}}, got)
}

func TestDistanceScaled_SinglePoints(t *testing.T) {
	s := geom.Set{"a": {{1, 1}}, "b": {{3, 3}}}
	got, err := centroid.ComputeDistanceScaled(s)
	require.NoError(t, err)
	requirePointsInDelta(t, geom.Trajectory{{2, 2}}, got)
}

// TestCompute_IdenticalMembers: every strategy returns the shared member.
func TestCompute_IdenticalMembers(t *testing.T) {
	tr := geom.Trajectory{{0, 0}, {3, 4}, {3, 9}, {6, 13}}
	s := geom.Set{"a": tr.Clone(), "b": tr.Clone(), "c": tr.Clone()}
	for _, st := range []centroid.Strategy{centroid.Medoid, centroid.TimeScaled, centroid.DistanceScaled} {
		t.Run(st.String(), func(t *testing.T) {
			got, err := centroid.Compute(s, st)
			require.NoError(t, err)
			requirePointsInDelta(t, tr, got)
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	for _, st := range []centroid.Strategy{centroid.Medoid, centroid.TimeScaled, centroid.DistanceScaled} {
		_, err := centroid.Compute(geom.Set{}, st)
		assert.ErrorIs(t, err, geom.ErrEmptySet, st.String())
	}

	_, err := centroid.Compute(geom.Set{"a": {{0, 0}}}, centroid.Strategy(9))
	assert.ErrorIs(t, err, centroid.ErrUnknownStrategy)

	_, err = centroid.Compute(geom.Set{"a": {}}, centroid.Medoid)
	assert.ErrorIs(t, err, geom.ErrEmptyTrajectory)
}

func TestParseStrategy(t *testing.T) {
	for _, st := range []centroid.Strategy{centroid.Medoid, centroid.TimeScaled, centroid.DistanceScaled} {
		got, err := centroid.ParseStrategy(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	_, err := centroid.ParseStrategy("mean")
	assert.ErrorIs(t, err, centroid.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(7)", centroid.Strategy(7).String())
}
