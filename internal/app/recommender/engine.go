package recommender

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/metrics"
	"track-recommender/internal/app/model"
)

// DefaultK is the number of recommendations returned when none is requested
const DefaultK = 5

// ErrInvalidK is returned for a non-positive result size
var ErrInvalidK = errors.New("k must be a positive integer")

// CatalogReader is the read contract the engine needs from the catalog store
type CatalogReader interface {
	GetTrack(ctx context.Context, id string) (*model.Track, error)
	ListTracks(ctx context.Context, exclude ...string) ([]model.Track, error)
}

// Recommendation is a candidate track with its similarity to the seed
type Recommendation struct {
	Track model.Track
	Score float64
}

// Engine produces track-to-track recommendations from duration and
// popularity. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	store  CatalogReader
	ranker *Ranker
	logger *zap.Logger
}

// NewEngine creates an engine reading from store
func NewEngine(store CatalogReader, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:  store,
		ranker: NewRanker(NewCosineSimilarityCalculator()),
		logger: logger,
	}
}

// Recommend returns up to k tracks most similar to the seed, most similar
// first. A missing seed yields an error matching apperrors.ErrTrackNotFound.
func (e *Engine) Recommend(ctx context.Context, seedID string, k int) ([]Recommendation, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	if k < 1 {
		metrics.Recommendations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	seed, err := e.store.GetTrack(ctx, seedID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTrackNotFound) {
			metrics.Recommendations.WithLabelValues("not_found").Inc()
		} else {
			metrics.Recommendations.WithLabelValues("error").Inc()
		}
		return nil, apperrors.Wrapf(err, "load seed %s", seedID)
	}

	candidates, err := e.store.ListTracks(ctx, seedID)
	if err != nil {
		metrics.Recommendations.WithLabelValues("error").Inc()
		return nil, apperrors.Wrap(err, "list candidates")
	}

	recs, err := e.rank(*seed, candidates, k)
	if err != nil {
		metrics.Recommendations.WithLabelValues("error").Inc()
		return nil, err
	}

	if len(recs) == 0 {
		metrics.Recommendations.WithLabelValues("empty").Inc()
	} else {
		metrics.Recommendations.WithLabelValues("ok").Inc()
	}
	e.logger.Debug("recommendations computed",
		zap.String("seed", seedID),
		zap.Int("candidates", len(candidates)),
		zap.Int("k", k),
		zap.Int("returned", len(recs)),
	)
	return recs, nil
}

// RecommendTracks ranks in-memory candidates against seed without touching
// the catalog store.
func (e *Engine) RecommendTracks(seed model.Track, candidates []model.Track, k int) ([]Recommendation, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return e.rank(seed, candidates, k)
}

func (e *Engine) rank(seed model.Track, candidates []model.Track, k int) ([]Recommendation, error) {
	candidates = excludeSeed(seed.ID, candidates)
	if len(candidates) == 0 {
		return []Recommendation{}, nil
	}
	metrics.CandidateSetSize.Observe(float64(len(candidates)))

	batch, params, err := FitTransform(ExtractBatch(candidates))
	if err != nil {
		return nil, apperrors.Wrap(err, "normalize candidates")
	}
	for _, col := range params.DegenerateColumns() {
		e.logger.Debug("degenerate feature column",
			zap.String("feature", FeatureNames[col]),
			zap.Float64("value", params.Min[col]),
		)
	}

	query, err := params.Transform(ExtractFeatures(seed))
	if err != nil {
		return nil, apperrors.Wrap(err, "normalize seed")
	}

	matches, err := e.ranker.Rank(query, batch, k)
	if err != nil {
		return nil, apperrors.Wrap(err, "rank candidates")
	}

	recs := make([]Recommendation, len(matches))
	for i, m := range matches {
		recs[i] = Recommendation{Track: candidates[m.Index], Score: m.Score}
	}
	return recs, nil
}

// excludeSeed drops any candidate sharing the seed id. The store already
// excludes it, so the common path returns candidates unchanged.
func excludeSeed(seedID string, candidates []model.Track) []model.Track {
	if seedID == "" {
		return candidates
	}
	for i := range candidates {
		if candidates[i].ID == seedID {
			filtered := make([]model.Track, 0, len(candidates)-1)
			for _, c := range candidates {
				if c.ID != seedID {
					filtered = append(filtered, c)
				}
			}
			return filtered
		}
	}
	return candidates
}
