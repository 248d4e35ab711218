package services

import (
	"context"
	"fmt"
	"strconv"

	"track-recommender/internal/api/errors"
	"track-recommender/internal/api/v1/dto"
	"track-recommender/internal/app/cache"
	"track-recommender/internal/app/recommender"
)

// Recommender computes recommendations for a stored seed track
type Recommender interface {
	Recommend(ctx context.Context, seedID string, k int) ([]recommender.Recommendation, error)
}

// RecommendationServiceImpl serves recommendations through the result cache
type RecommendationServiceImpl struct {
	engine   Recommender
	cache    cache.RecommendationCache
	defaultK int
	maxK     int
}

// NewRecommendationService creates a recommendation service. A nil cache disables caching.
func NewRecommendationService(engine Recommender, recCache cache.RecommendationCache, defaultK, maxK int) RecommendationService {
	if recCache == nil {
		recCache = cache.NoopCache{}
	}
	if defaultK < 1 {
		defaultK = recommender.DefaultK
	}
	if maxK < defaultK {
		maxK = defaultK
	}
	return &RecommendationServiceImpl{
		engine:   engine,
		cache:    recCache,
		defaultK: defaultK,
		maxK:     maxK,
	}
}

// Recommend returns up to k tracks most similar to the seed. A nil k selects
// the default; k above the configured maximum is rejected.
func (s *RecommendationServiceImpl) Recommend(ctx context.Context, seedID string, k *int) (*dto.RecommendationsResponse, error) {
	size := s.defaultK
	if k != nil {
		size = *k
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", recommender.ErrInvalidK, size)
	}
	if size > s.maxK {
		return nil, errors.NewValidationError("Invalid result size", map[string]string{
			"k": "must be at most " + strconv.Itoa(s.maxK),
		})
	}

	if recs, ok := s.cache.Get(ctx, seedID, size); ok {
		return s.response(seedID, size, recs, true), nil
	}

	recs, err := s.engine.Recommend(ctx, seedID, size)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, seedID, size, recs)

	return s.response(seedID, size, recs, false), nil
}

func (s *RecommendationServiceImpl) response(seedID string, k int, recs []recommender.Recommendation, cached bool) *dto.RecommendationsResponse {
	return &dto.RecommendationsResponse{
		SeedID:          seedID,
		K:               k,
		Cached:          cached,
		Recommendations: dto.ToRecommendationResponses(recs),
	}
}
