package recommender

import "track-recommender/internal/app/model"

// FeatureCount is the dimensionality of every feature vector
const FeatureCount = 2

// FeatureNames lists the vector columns in positional order
var FeatureNames = [FeatureCount]string{"duration_ms", "popularity"}

// Vector is a positional feature vector
type Vector []float64

// ExtractFeatures maps a track to [duration_ms, popularity], using 0 for
// attributes the catalog did not report.
func ExtractFeatures(track model.Track) Vector {
	return Vector{intOrZero(track.DurationMs), intOrZero(track.Popularity)}
}

// ExtractBatch extracts a vector per track, preserving order
func ExtractBatch(tracks []model.Track) []Vector {
	vectors := make([]Vector, len(tracks))
	for i := range tracks {
		vectors[i] = ExtractFeatures(tracks[i])
	}
	return vectors
}

func intOrZero(v *int) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}
