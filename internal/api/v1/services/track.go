package services

import (
	"context"

	"track-recommender/internal/api/v1/dto"
	"track-recommender/internal/app/repository"
)

// TrackServiceImpl implements TrackService over the catalog store
type TrackServiceImpl struct {
	store repository.CatalogDAO
}

// NewTrackService creates a new track service
func NewTrackService(store repository.CatalogDAO) TrackService {
	return &TrackServiceImpl{store: store}
}

// ListTracks returns one page of stored tracks ordered by id
func (s *TrackServiceImpl) ListTracks(ctx context.Context, query dto.ListTracksQuery) (*dto.PaginatedTracksResponse, error) {
	total, err := s.store.CountTracks(ctx)
	if err != nil {
		return nil, err
	}

	tracks, err := s.store.ListTracksPage(ctx, query.Offset(), query.Limit)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedTracksResponse{
		Tracks:     dto.ToTrackResponses(tracks),
		Pagination: dto.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// GetTrack returns a stored track with its album, artists, markets and external ids
func (s *TrackServiceImpl) GetTrack(ctx context.Context, id string) (*dto.TrackResponse, error) {
	track, err := s.store.GetTrack(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToTrackResponse(*track)
	return &resp, nil
}
