package recommender

import (
	"sort"
)

// Match is a ranked batch row
type Match struct {
	Index int
	Score float64
}

// Ranker scores a query against a batch and keeps the best K rows
type Ranker struct {
	calculator SimilarityCalculator
}

// NewRanker creates a ranker; a nil calculator means cosine similarity
func NewRanker(calculator SimilarityCalculator) *Ranker {
	if calculator == nil {
		calculator = NewCosineSimilarityCalculator()
	}
	return &Ranker{calculator: calculator}
}

// Rank returns at most k matches ordered by descending score. Equal scores
// keep batch order, so the lower index ranks first.
func (r *Ranker) Rank(query Vector, batch []Vector, k int) ([]Match, error) {
	if k < 1 || len(batch) == 0 {
		return []Match{}, nil
	}

	matches := make([]Match, len(batch))
	for i, row := range batch {
		score, err := r.calculator.Calculate(query, row)
		if err != nil {
			return nil, err
		}
		matches[i] = Match{Index: i, Score: score}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}
