package recommender

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch is returned when vectors of different lengths are mixed
var ErrDimensionMismatch = errors.New("vectors must have same dimension")

// ScaleParams holds per-column min-max parameters fitted on a batch
type ScaleParams struct {
	Min        []float64
	Max        []float64
	Degenerate []bool
}

// Dimensions returns the number of fitted columns
func (p ScaleParams) Dimensions() int {
	return len(p.Min)
}

// DegenerateColumns returns the indices of zero-variance columns
func (p ScaleParams) DegenerateColumns() []int {
	var cols []int
	for i, d := range p.Degenerate {
		if d {
			cols = append(cols, i)
		}
	}
	return cols
}

// Transform scales a vector with the fitted parameters. The batch is not
// refit, so values outside the fitted range map outside [0, 1].
func (p ScaleParams) Transform(v Vector) (Vector, error) {
	if len(v) != p.Dimensions() {
		return nil, fmt.Errorf("%w: got %d, fitted %d", ErrDimensionMismatch, len(v), p.Dimensions())
	}

	scaled := make(Vector, len(v))
	for i, value := range v {
		if p.Degenerate[i] {
			continue
		}
		scaled[i] = (value - p.Min[i]) / (p.Max[i] - p.Min[i])
	}
	return scaled, nil
}

// FitTransform fits min-max parameters on batch and returns the scaled
// batch. An empty batch yields an empty result and zero-valued params.
func FitTransform(batch []Vector) ([]Vector, ScaleParams, error) {
	if len(batch) == 0 {
		return []Vector{}, ScaleParams{}, nil
	}

	dims := len(batch[0])
	column := make([]float64, len(batch))
	params := ScaleParams{
		Min:        make([]float64, dims),
		Max:        make([]float64, dims),
		Degenerate: make([]bool, dims),
	}

	for _, row := range batch {
		if len(row) != dims {
			return nil, ScaleParams{}, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(row), dims)
		}
	}

	for col := 0; col < dims; col++ {
		for i, row := range batch {
			column[i] = row[col]
		}
		params.Min[col] = floats.Min(column)
		params.Max[col] = floats.Max(column)
		params.Degenerate[col] = params.Max[col] == params.Min[col]
	}

	scaled := make([]Vector, len(batch))
	for i, row := range batch {
		// dimensions were checked above
		scaled[i], _ = params.Transform(row)
	}
	return scaled, params, nil
}
