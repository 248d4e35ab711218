package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"track-recommender/internal/app/model"
)

func TestExtractFeatures(t *testing.T) {
	testCases := []struct {
		name     string
		track    model.Track
		expected Vector
	}{
		{
			name:     "both attributes present",
			track:    model.Track{ID: "a", DurationMs: model.IntPtr(215000), Popularity: model.IntPtr(73)},
			expected: Vector{215000, 73},
		},
		{
			name:     "missing duration",
			track:    model.Track{ID: "b", Popularity: model.IntPtr(40)},
			expected: Vector{0, 40},
		},
		{
			name:     "missing popularity",
			track:    model.Track{ID: "c", DurationMs: model.IntPtr(180000)},
			expected: Vector{180000, 0},
		},
		{
			name:     "nothing reported",
			track:    model.Track{ID: "d"},
			expected: Vector{0, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := ExtractFeatures(tc.track)
			assert.Len(t, v, FeatureCount)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestExtractBatchPreservesOrder(t *testing.T) {
	tracks := []model.Track{
		{ID: "x", DurationMs: model.IntPtr(3), Popularity: model.IntPtr(1)},
		{ID: "y", DurationMs: model.IntPtr(1), Popularity: model.IntPtr(2)},
		{ID: "z"},
	}

	batch := ExtractBatch(tracks)

	assert.Equal(t, []Vector{{3, 1}, {1, 2}, {0, 0}}, batch)
	assert.Empty(t, ExtractBatch(nil))
}
