package recommender

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SimilarityCalculator defines the interface for similarity calculations
type SimilarityCalculator interface {
	Calculate(a, b Vector) (float64, error)
}

// CosineSimilarityCalculator implements cosine similarity calculation
type CosineSimilarityCalculator struct{}

// NewCosineSimilarityCalculator creates a new cosine similarity calculator
func NewCosineSimilarityCalculator() *CosineSimilarityCalculator {
	return &CosineSimilarityCalculator{}
}

// Calculate computes cosine similarity between two vectors.
// Zero-norm vectors have similarity 0 with everything; results lie in [-1, 1].
func (c *CosineSimilarityCalculator) Calculate(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	if len(a) == 0 {
		return 0, nil
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	// rounding can push collinear vectors just past 1
	return math.Max(-1, math.Min(1, floats.Dot(a, b)/(normA*normB))), nil
}
