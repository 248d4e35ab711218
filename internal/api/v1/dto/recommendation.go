package dto

import (
	"github.com/samber/lo"

	"track-recommender/internal/app/recommender"
)

// RecommendationQuery represents query parameters for recommendations.
// A nil K selects the configured default.
type RecommendationQuery struct {
	K *int `form:"k"`
}

// RecommendationResponse is one ranked candidate
type RecommendationResponse struct {
	Rank  int           `json:"rank"`
	Score float64       `json:"score"`
	Track TrackResponse `json:"track"`
}

// RecommendationsResponse lists the tracks most similar to a seed, most similar first
type RecommendationsResponse struct {
	SeedID          string                   `json:"seed_id"`
	K               int                      `json:"k"`
	Cached          bool                     `json:"cached"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// ToRecommendationResponses converts engine output, numbering ranks from 1
func ToRecommendationResponses(recs []recommender.Recommendation) []RecommendationResponse {
	return lo.Map(recs, func(r recommender.Recommendation, i int) RecommendationResponse {
		return RecommendationResponse{
			Rank:  i + 1,
			Score: r.Score,
			Track: ToTrackResponse(r.Track),
		}
	})
}
