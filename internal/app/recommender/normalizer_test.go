package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTransform(t *testing.T) {
	batch := []Vector{
		{200000, 80},
		{200000, 10},
		{100000, 50},
	}

	scaled, params, err := FitTransform(batch)
	require.NoError(t, err)

	assert.Equal(t, []float64{100000, 10}, params.Min)
	assert.Equal(t, []float64{200000, 80}, params.Max)
	assert.Equal(t, []bool{false, false}, params.Degenerate)
	require.Len(t, scaled, 3)

	expected := []Vector{{1, 1}, {1, 0}, {0, 40.0 / 70.0}}
	for i := range expected {
		assert.InDeltaSlice(t, expected[i], scaled[i], 1e-9, "row %d", i)
	}

	// fitting must not touch the input
	assert.Equal(t, Vector{200000, 80}, batch[0])
}

func TestTransformUsesBatchParameters(t *testing.T) {
	_, params, err := FitTransform([]Vector{{100000, 10}, {200000, 80}})
	require.NoError(t, err)

	query, err := params.Transform(Vector{150000, 60})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 50.0 / 70.0}, query, 1e-9)

	// outside the fitted range is not clipped
	outside, err := params.Transform(Vector{300000, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, -10.0 / 70.0}, outside, 1e-9)
}

func TestFitTransformDegenerateColumn(t *testing.T) {
	scaled, params, err := FitTransform([]Vector{{200000, 10}, {200000, 50}, {200000, 90}})
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false}, params.Degenerate)
	assert.Equal(t, []int{0}, params.DegenerateColumns())
	for _, row := range scaled {
		assert.Equal(t, float64(0), row[0])
	}

	query, err := params.Transform(Vector{999, 30})
	require.NoError(t, err)
	assert.Equal(t, float64(0), query[0])
	assert.InDelta(t, 0.25, query[1], 1e-9)
}

func TestFitTransformSingleRow(t *testing.T) {
	scaled, params, err := FitTransform([]Vector{{5, 5}})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, params.DegenerateColumns())
	assert.Equal(t, []Vector{{0, 0}}, scaled)
}

func TestFitTransformEmptyBatch(t *testing.T) {
	scaled, params, err := FitTransform(nil)

	assert.NoError(t, err)
	assert.NotNil(t, scaled)
	assert.Empty(t, scaled)
	assert.Equal(t, 0, params.Dimensions())
}

func TestNormalizerDimensionErrors(t *testing.T) {
	_, _, err := FitTransform([]Vector{{1, 2}, {1}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, params, err := FitTransform([]Vector{{1, 2}, {3, 4}})
	require.NoError(t, err)
	_, err = params.Transform(Vector{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
