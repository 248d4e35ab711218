package repository

import (
	"context"

	"track-recommender/internal/app/model"
)

// CatalogDAO persists catalog tracks together with their albums and artists
type CatalogDAO interface {
	Close() error

	EnsureSchema(ctx context.Context) error

	GetTrack(ctx context.Context, id string) (*model.Track, error)

	// ListTracks returns every track except the excluded ids, ordered by id
	ListTracks(ctx context.Context, exclude ...string) ([]model.Track, error)

	ListTracksPage(ctx context.Context, offset, limit int) ([]model.Track, error)

	CountTracks(ctx context.Context) (int, error)

	SaveArtist(ctx context.Context, artist model.Artist) error

	// SaveAlbum stores an album, its artists and images; existing rows are kept
	SaveAlbum(ctx context.Context, album model.Album) error

	// SaveTrack stores the track row and reports whether it was newly created
	SaveTrack(ctx context.Context, track model.Track) (bool, error)

	SetTrackArtists(ctx context.Context, trackID string, artistIDs []string) error

	SaveMarkets(ctx context.Context, trackID string, markets []string) error

	SaveExternalIDs(ctx context.Context, trackID string, ids model.ExternalIDs) error
}
