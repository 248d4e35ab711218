package services

import (
	"context"

	"track-recommender/internal/api/v1/dto"
)

// TrackService defines the interface for reading the stored catalog
type TrackService interface {
	ListTracks(ctx context.Context, query dto.ListTracksQuery) (*dto.PaginatedTracksResponse, error)
	GetTrack(ctx context.Context, id string) (*dto.TrackResponse, error)
}

// RecommendationService defines the interface for recommendation operations
type RecommendationService interface {
	Recommend(ctx context.Context, seedID string, k *int) (*dto.RecommendationsResponse, error)
}

// CatalogService defines the interface for catalog service operations
type CatalogService interface {
	ImportTrack(ctx context.Context, req *dto.ImportTrackRequest) (*dto.ImportTrackResponse, error)
	Search(ctx context.Context, query dto.SearchQuery) (*dto.SearchResponse, error)
	Import(ctx context.Context, req *dto.ImportRequest) (*dto.ImportResponse, error)
}
