package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/model"
)

var trackColumnNames = []string{
	"id", "name", "disc_number", "duration_ms", "explicit", "href", "uri", "external_url",
	"popularity", "preview_url", "track_number", "is_playable", "is_local", "album_id", "created_at",
}

func newMockStore(t *testing.T, driver string) (*CommonDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCommonDB(db, driver), mock
}

// TestCommonDB_Interface verifies CommonDB implements CatalogDAO
func TestCommonDB_Interface(t *testing.T) {
	var _ CatalogDAO = (*CommonDB)(nil)
}

func TestPlaceholders(t *testing.T) {
	pgStore, _ := newMockStore(t, "postgres")
	liteStore, _ := newMockStore(t, "sqlite3")

	assert.Equal(t, "$3, $4, $5", pgStore.bind(3, 3))
	assert.Equal(t, "?, ?", liteStore.bind(1, 2))
}

func TestGetTrack_NotFound(t *testing.T) {
	store, mock := newMockStore(t, "postgres")

	mock.ExpectQuery(`SELECT (.+) FROM tracks WHERE id = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	track, err := store.GetTrack(context.Background(), "nope")

	assert.Nil(t, track)
	assert.ErrorIs(t, err, apperrors.ErrTrackNotFound)
	assert.Contains(t, err.Error(), `"nope"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrack_StoreFailure(t *testing.T) {
	store, mock := newMockStore(t, "postgres")

	mock.ExpectQuery(`SELECT (.+) FROM tracks WHERE id = \$1`).
		WithArgs("t1").
		WillReturnError(errors.New("connection reset by peer"))

	_, err := store.GetTrack(context.Background(), "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	assert.ErrorIs(t, err, apperrors.ErrQueryFailed)
	assert.False(t, errors.Is(err, apperrors.ErrTrackNotFound))
}

func TestGetTrack_WithoutAlbum(t *testing.T) {
	store, mock := newMockStore(t, "postgres")
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM tracks WHERE id = \$1`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(trackColumnNames).
			AddRow("t1", "Song", nil, 180000, false, nil, "spotify:track:t1", nil, nil, nil, 2, true, false, nil, created))
	mock.ExpectQuery(`FROM track_artists ta JOIN artists a (.+) WHERE ta.track_id = \$1`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"track_id", "id", "name", "href", "uri", "external_url"}).
			AddRow("t1", "a1", "Artist", nil, "spotify:artist:a1", nil))
	mock.ExpectQuery(`SELECT market FROM available_markets WHERE track_id = \$1`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"market"}).AddRow("GB").AddRow("US"))
	mock.ExpectQuery(`SELECT isrc, ean, upc FROM external_ids WHERE track_id = \$1`).
		WithArgs("t1").
		WillReturnError(sql.ErrNoRows)

	track, err := store.GetTrack(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, 180000, *track.DurationMs)
	assert.Nil(t, track.Popularity)
	assert.Nil(t, track.DiscNumber)
	assert.Equal(t, 2, *track.TrackNumber)
	assert.Nil(t, track.Album)
	assert.Nil(t, track.ExternalIDs)
	assert.Equal(t, []string{"Artist"}, track.ArtistNames())
	assert.Equal(t, []string{"GB", "US"}, track.Markets)
	assert.Equal(t, created, track.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTracks_ExcludesIDs(t *testing.T) {
	store, mock := newMockStore(t, "postgres")
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM tracks WHERE id NOT IN ($1, $2) ORDER BY id")).
		WithArgs("seed", "other").
		WillReturnRows(sqlmock.NewRows(trackColumnNames).
			AddRow("a", "A", 1, 200000, false, nil, "spotify:track:a", nil, 80, nil, 1, true, false, nil, now).
			AddRow("b", "B", 1, 100000, true, nil, "spotify:track:b", nil, 50, nil, 2, true, false, nil, now))
	mock.ExpectQuery(`FROM track_artists ta JOIN artists a (.+) ORDER BY ta.track_id, ta.position`).
		WillReturnRows(sqlmock.NewRows([]string{"track_id", "id", "name", "href", "uri", "external_url"}).
			AddRow("a", "x", "X", nil, nil, nil).
			AddRow("b", "y", "Y", nil, nil, nil).
			AddRow("b", "z", "Z", nil, nil, nil))

	tracks, err := store.ListTracks(context.Background(), "seed", "other")
	require.NoError(t, err)

	require.Len(t, tracks, 2)
	assert.Equal(t, "a", tracks[0].ID)
	assert.Equal(t, 80, *tracks[0].Popularity)
	assert.Equal(t, []string{"X"}, tracks[0].ArtistNames())
	assert.Equal(t, []string{"Y", "Z"}, tracks[1].ArtistNames())
	assert.True(t, tracks[1].Explicit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTracks_Empty(t *testing.T) {
	store, mock := newMockStore(t, "sqlite3")

	mock.ExpectQuery(regexp.QuoteMeta("FROM tracks ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(trackColumnNames))

	tracks, err := store.ListTracks(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTracksPage(t *testing.T) {
	store, mock := newMockStore(t, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id LIMIT $1 OFFSET $2")).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(trackColumnNames))

	tracks, err := store.ListTracksPage(context.Background(), 20, 10)

	require.NoError(t, err)
	assert.Empty(t, tracks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountTracks(t *testing.T) {
	store, mock := newMockStore(t, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tracks")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := store.CountTracks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestSaveTrack_ReportsCreation(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "new_track", affected: 1, want: true},
		{name: "existing_track", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t, "postgres")
			fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			store.now = func() time.Time { return fixed }

			mock.ExpectExec(`INSERT INTO tracks (.+) ON CONFLICT \(id\) DO NOTHING`).
				WithArgs("t1", "Song", nil, int64(1000), false, nil, "spotify:track:t1", nil,
					int64(30), nil, nil, true, false, "al1", fixed).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			created, err := store.SaveTrack(context.Background(), model.Track{
				ID: "t1", Name: "Song", URI: "spotify:track:t1", IsPlayable: true, AlbumID: "al1",
				DurationMs: model.IntPtr(1000), Popularity: model.IntPtr(30),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveTrack_InsertError(t *testing.T) {
	store, mock := newMockStore(t, "postgres")

	mock.ExpectExec(`INSERT INTO tracks`).WillReturnError(errors.New("constraint violation"))

	_, err := store.SaveTrack(context.Background(), model.Track{ID: "t1"})

	assert.ErrorIs(t, err, apperrors.ErrInsertFailed)
	assert.Contains(t, err.Error(), "t1")
}

func TestSaveAlbum_RollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t, "postgres")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO albums`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO artists`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.SaveAlbum(context.Background(), model.Album{
		ID: "al1", Name: "Album", Artists: []model.Artist{{ID: "ar1", Name: "Artist"}},
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTrackArtists_ReplacesLinks(t *testing.T) {
	store, mock := newMockStore(t, "postgres")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM track_artists WHERE track_id = $1")).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO track_artists`).WithArgs("t1", "a1", 0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO track_artists`).WithArgs("t1", "a2", 1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.SetTrackArtists(context.Background(), "t1", []string{"a1", "a2"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Dialects(t *testing.T) {
	pgSchema := strings.Join(schemaFor("postgres"), "\n")
	liteSchema := strings.Join(schemaFor("sqlite3"), "\n")

	assert.Contains(t, pgSchema, "SERIAL PRIMARY KEY")
	assert.NotContains(t, pgSchema, "AUTOINCREMENT")
	assert.Contains(t, liteSchema, "INTEGER PRIMARY KEY AUTOINCREMENT")
	assert.NotContains(t, liteSchema, "{{serial}}")

	store, mock := newMockStore(t, "postgres")
	for range TableNames() {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTrackArtists_DeleteError(t *testing.T) {
	store, mock := newMockStore(t, "postgres")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM track_artists`).WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err := store.SetTrackArtists(context.Background(), "t1", []string{"a1"})

	assert.ErrorIs(t, err, apperrors.ErrUpdateFailed)
	assert.Contains(t, err.Error(), "lock timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMarkets_InsertError(t *testing.T) {
	store, mock := newMockStore(t, "sqlite3")

	mock.ExpectExec(`INSERT INTO available_markets`).WillReturnError(errors.New("disk I/O error"))

	err := store.SaveMarkets(context.Background(), "t1", []string{"US", "GB"})

	assert.ErrorIs(t, err, apperrors.ErrInsertFailed)
	assert.Contains(t, err.Error(), "market US")
	assert.NoError(t, mock.ExpectationsWereMet())
}
