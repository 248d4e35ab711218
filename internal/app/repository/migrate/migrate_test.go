package migrate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"track-recommender/internal/app/repository/migrate"
	"track-recommender/internal/app/testutil"
)

func TestCopyCatalog(t *testing.T) {
	ctx := context.Background()
	src := testutil.SetupTestSQLite(t)
	testutil.SeedTracks(t, src, testutil.FixtureTracks())
	testutil.SeedTracks(t, src, testutil.WorkedExampleTracks())
	dst := testutil.NewMemoryCatalog()

	summary, err := migrate.CopyCatalog(ctx, src, dst, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Copied)
	assert.Equal(t, 0, summary.Existing)

	copied, err := dst.GetTrack(ctx, "track2")
	require.NoError(t, err)
	assert.Equal(t, []string{"First Artist", "Second Artist"}, copied.ArtistNames())
	assert.Equal(t, []string{"DE", "GB", "US"}, copied.Markets)
	require.NotNil(t, copied.Album)
	assert.Equal(t, "album1", copied.Album.ID)

	again, err := migrate.CopyCatalog(ctx, src, dst, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Copied)
	assert.Equal(t, 7, again.Existing)
}

func TestCopyCatalogIntoSQLite(t *testing.T) {
	ctx := context.Background()
	src := testutil.SetupTestSQLite(t)
	testutil.SeedTracks(t, src, testutil.FixtureTracks())
	dst := testutil.SetupTestSQLite(t)

	summary, err := migrate.CopyCatalog(ctx, src, dst, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Copied)

	got, err := dst.GetTrack(ctx, "track3")
	require.NoError(t, err)
	assert.Equal(t, 243000, *got.DurationMs)
	require.NotNil(t, got.Album)
	assert.Len(t, got.Album.Images, 2)
}

func TestCopyCatalogSourceError(t *testing.T) {
	src := testutil.NewMemoryCatalog(testutil.WorkedExampleTracks()...)
	src.Err = errors.New("source offline")

	_, err := migrate.CopyCatalog(context.Background(), src, testutil.NewMemoryCatalog(), 10, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "source offline")
}
