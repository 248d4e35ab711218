package services

import (
	"context"

	"github.com/samber/lo"

	"track-recommender/internal/api/v1/dto"
	"track-recommender/internal/app/catalog/spotify"
	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/importer"
)

// CatalogServiceImpl searches the catalog service and imports its tracks.
// Without configured credentials both dependencies are nil and every
// operation reports ErrMissingCredentials.
type CatalogServiceImpl struct {
	catalog  spotify.Catalog
	importer *importer.Importer
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog spotify.Catalog, imp *importer.Importer) CatalogService {
	return &CatalogServiceImpl{catalog: catalog, importer: imp}
}

// ImportTrack copies one track into the store
func (s *CatalogServiceImpl) ImportTrack(ctx context.Context, req *dto.ImportTrackRequest) (*dto.ImportTrackResponse, error) {
	if s.importer == nil {
		return nil, apperrors.ErrMissingCredentials
	}

	track, created, err := s.importer.ImportTrack(ctx, req.TrackID)
	if err != nil {
		return nil, err
	}
	return &dto.ImportTrackResponse{Created: created, Track: dto.ToTrackResponse(*track)}, nil
}

// Search queries the catalog service without storing anything
func (s *CatalogServiceImpl) Search(ctx context.Context, query dto.SearchQuery) (*dto.SearchResponse, error) {
	if s.catalog == nil {
		return nil, apperrors.ErrMissingCredentials
	}

	items, err := s.catalog.SearchTracks(ctx, query.Q, query.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.SearchResponse{
		Query: query.Q,
		Tracks: lo.Map(items, func(item spotify.TrackObject, _ int) dto.TrackResponse {
			return dto.ToTrackResponse(item.ToModel())
		}),
	}, nil
}

// Import stores every result of a catalog search
func (s *CatalogServiceImpl) Import(ctx context.Context, req *dto.ImportRequest) (*dto.ImportResponse, error) {
	if s.importer == nil {
		return nil, apperrors.ErrMissingCredentials
	}

	summary, err := s.importer.ImportSearch(ctx, req.Query, req.Limit)
	if err != nil {
		return nil, err
	}
	resp := dto.ToImportResponse(summary)
	return &resp, nil
}
