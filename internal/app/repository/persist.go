package repository

import (
	"context"

	"github.com/samber/lo"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/model"
)

// PersistTrack writes a track with its album, artists, markets and external
// ids. Existing rows are kept as they are; the artist links are replaced.
// It reports whether the track row was newly created.
func PersistTrack(ctx context.Context, dao CatalogDAO, t model.Track) (bool, error) {
	if t.ID == "" {
		return false, apperrors.RequiredField("track id")
	}

	if t.Album != nil && t.Album.ID != "" {
		if err := dao.SaveAlbum(ctx, *t.Album); err != nil {
			return false, err
		}
		t.AlbumID = t.Album.ID
	}

	for _, artist := range t.Artists {
		if err := dao.SaveArtist(ctx, artist); err != nil {
			return false, err
		}
	}

	created, err := dao.SaveTrack(ctx, t)
	if err != nil {
		return false, err
	}

	artistIDs := lo.Uniq(lo.Map(t.Artists, func(a model.Artist, _ int) string { return a.ID }))
	if err := dao.SetTrackArtists(ctx, t.ID, artistIDs); err != nil {
		return created, err
	}

	if err := dao.SaveMarkets(ctx, t.ID, lo.Uniq(t.Markets)); err != nil {
		return created, err
	}

	if t.ExternalIDs != nil && !t.ExternalIDs.IsEmpty() {
		if err := dao.SaveExternalIDs(ctx, t.ID, *t.ExternalIDs); err != nil {
			return created, err
		}
	}

	return created, nil
}
