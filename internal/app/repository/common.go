package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/model"
)

// CommonDB implements CatalogDAO for both SQLite and PostgreSQL
type CommonDB struct {
	db           *sql.DB
	driverName   string
	placeholders PlaceholderFunc
	now          func() time.Time
}

// PlaceholderFunc generates parameter placeholders for different SQL dialects
type PlaceholderFunc func(n int) string

// NewCommonDB creates a new CommonDB instance
func NewCommonDB(db *sql.DB, driverName string) *CommonDB {
	var placeholders PlaceholderFunc

	switch driverName {
	case "sqlite3":
		placeholders = func(n int) string { return "?" }
	case "postgres":
		placeholders = func(n int) string { return fmt.Sprintf("$%d", n) }
	default:
		placeholders = func(n int) string { return "?" }
	}

	return &CommonDB{
		db:           db,
		driverName:   driverName,
		placeholders: placeholders,
		now:          time.Now,
	}
}

// bind returns count comma separated placeholders numbered from start
func (c *CommonDB) bind(start, count int) string {
	params := make([]string, count)
	for i := 0; i < count; i++ {
		params[i] = c.placeholders(start + i)
	}
	return strings.Join(params, ", ")
}

const trackColumns = `id, name, disc_number, duration_ms, explicit, href, uri, external_url,
	popularity, preview_url, track_number, is_playable, is_local, album_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrack(row rowScanner) (model.Track, error) {
	var (
		t                                   model.Track
		discNumber, duration, pop, trackNum sql.NullInt64
		href, externalURL, previewURL       sql.NullString
		albumID                             sql.NullString
	)
	err := row.Scan(
		&t.ID, &t.Name, &discNumber, &duration, &t.Explicit, &href, &t.URI, &externalURL,
		&pop, &previewURL, &trackNum, &t.IsPlayable, &t.IsLocal, &albumID, &t.CreatedAt,
	)
	if err != nil {
		return t, err
	}
	t.DiscNumber = nullableInt(discNumber)
	t.DurationMs = nullableInt(duration)
	t.Popularity = nullableInt(pop)
	t.TrackNumber = nullableInt(trackNum)
	t.Href = href.String
	t.ExternalURL = externalURL.String
	t.PreviewURL = previewURL.String
	t.AlbumID = albumID.String
	return t, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func intOrNull(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func stringOrNull(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// GetTrack loads a track with its album, artists, markets and external ids
func (c *CommonDB) GetTrack(ctx context.Context, id string) (*model.Track, error) {
	query := fmt.Sprintf("SELECT %s FROM tracks WHERE id = %s", trackColumns, c.placeholders(1))

	t, err := scanTrack(c.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.TrackNotFound(id)
	}
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "get track")
	}

	tracks := []model.Track{t}
	if err := c.attachArtists(ctx, tracks); err != nil {
		return nil, err
	}
	t = tracks[0]

	if t.AlbumID != "" {
		album, err := c.getAlbum(ctx, t.AlbumID)
		if err != nil {
			return nil, err
		}
		t.Album = album
	}

	if t.Markets, err = c.getMarkets(ctx, t.ID); err != nil {
		return nil, err
	}
	if t.ExternalIDs, err = c.getExternalIDs(ctx, t.ID); err != nil {
		return nil, err
	}

	return &t, nil
}

// ListTracks returns all tracks except the excluded ids, ordered by id
func (c *CommonDB) ListTracks(ctx context.Context, exclude ...string) ([]model.Track, error) {
	query := fmt.Sprintf("SELECT %s FROM tracks", trackColumns)
	args := make([]any, 0, len(exclude))
	if len(exclude) > 0 {
		query += fmt.Sprintf(" WHERE id NOT IN (%s)", c.bind(1, len(exclude)))
		for _, id := range exclude {
			args = append(args, id)
		}
	}
	query += " ORDER BY id"

	return c.queryTracks(ctx, query, args...)
}

// ListTracksPage returns one page of tracks ordered by id
func (c *CommonDB) ListTracksPage(ctx context.Context, offset, limit int) ([]model.Track, error) {
	query := fmt.Sprintf("SELECT %s FROM tracks ORDER BY id LIMIT %s OFFSET %s",
		trackColumns, c.placeholders(1), c.placeholders(2))

	return c.queryTracks(ctx, query, limit, offset)
}

// CountTracks returns the number of stored tracks
func (c *CommonDB) CountTracks(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tracks").Scan(&count); err != nil {
		return 0, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "count tracks")
	}
	return count, nil
}

func (c *CommonDB) queryTracks(ctx context.Context, query string, args ...any) ([]model.Track, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "list tracks")
	}
	defer rows.Close()

	tracks := make([]model.Track, 0)
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrScanFailed.Error())
		}
		tracks = append(tracks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "rows error")
	}

	if err := c.attachArtists(ctx, tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// attachArtists fills Artists for every track with a single query
func (c *CommonDB) attachArtists(ctx context.Context, tracks []model.Track) error {
	if len(tracks) == 0 {
		return nil
	}

	index := make(map[string]int, len(tracks))
	for i := range tracks {
		index[tracks[i].ID] = i
	}

	query := `SELECT ta.track_id, a.id, a.name, a.href, a.uri, a.external_url
		FROM track_artists ta JOIN artists a ON a.id = ta.artist_id`
	var args []any
	if len(tracks) == 1 {
		query += fmt.Sprintf(" WHERE ta.track_id = %s", c.placeholders(1))
		args = append(args, tracks[0].ID)
	}
	query += " ORDER BY ta.track_id, ta.position"

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "list track artists")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			trackID                string
			a                      model.Artist
			href, uri, externalURL sql.NullString
		)
		if err := rows.Scan(&trackID, &a.ID, &a.Name, &href, &uri, &externalURL); err != nil {
			return apperrors.Wrap(err, apperrors.ErrScanFailed.Error())
		}
		a.Href, a.URI, a.ExternalURL = href.String, uri.String, externalURL.String
		if i, ok := index[trackID]; ok {
			tracks[i].Artists = append(tracks[i].Artists, a)
		}
	}
	return rows.Err()
}

func (c *CommonDB) getAlbum(ctx context.Context, id string) (*model.Album, error) {
	query := fmt.Sprintf(`SELECT id, name, album_type, total_tracks, release_date, release_date_precision,
		href, uri, external_url FROM albums WHERE id = %s`, c.placeholders(1))

	var (
		a                                 model.Album
		albumType, releaseDate, precision sql.NullString
		href, uri, externalURL            sql.NullString
	)
	err := c.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &albumType, &a.TotalTracks, &releaseDate, &precision, &href, &uri, &externalURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "get album")
	}
	a.AlbumType, a.ReleaseDate, a.ReleaseDatePrecision = albumType.String, releaseDate.String, precision.String
	a.Href, a.URI, a.ExternalURL = href.String, uri.String, externalURL.String

	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(`SELECT a.id, a.name FROM album_artists aa
		JOIN artists a ON a.id = aa.artist_id WHERE aa.album_id = %s ORDER BY aa.position`, c.placeholders(1)), id)
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "get album artists")
	}
	for rows.Next() {
		var artist model.Artist
		if err := rows.Scan(&artist.ID, &artist.Name); err != nil {
			rows.Close()
			return nil, apperrors.Wrap(err, apperrors.ErrScanFailed.Error())
		}
		a.Artists = append(a.Artists, artist)
	}
	rows.Close()

	rows, err = c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT url, height, width FROM images WHERE album_id = %s ORDER BY id", c.placeholders(1)), id)
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "get album images")
	}
	defer rows.Close()
	for rows.Next() {
		var (
			img           model.Image
			height, width sql.NullInt64
		)
		if err := rows.Scan(&img.URL, &height, &width); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrScanFailed.Error())
		}
		img.Height, img.Width = nullableInt(height), nullableInt(width)
		a.Images = append(a.Images, img)
	}
	return &a, rows.Err()
}

func (c *CommonDB) getMarkets(ctx context.Context, trackID string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT market FROM available_markets WHERE track_id = %s ORDER BY market", c.placeholders(1)), trackID)
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "get markets")
	}
	defer rows.Close()

	var markets []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrScanFailed.Error())
		}
		markets = append(markets, m)
	}
	return markets, rows.Err()
}

func (c *CommonDB) getExternalIDs(ctx context.Context, trackID string) (*model.ExternalIDs, error) {
	var isrc, ean, upc sql.NullString
	err := c.db.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT isrc, ean, upc FROM external_ids WHERE track_id = %s", c.placeholders(1)), trackID).
		Scan(&isrc, &ean, &upc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrQueryFailed.Error()), "get external ids")
	}
	return &model.ExternalIDs{ISRC: isrc.String, EAN: ean.String, UPC: upc.String}, nil
}

// SaveArtist inserts an artist unless it already exists
func (c *CommonDB) SaveArtist(ctx context.Context, artist model.Artist) error {
	query := fmt.Sprintf(`INSERT INTO artists (id, name, href, uri, external_url)
		VALUES (%s) ON CONFLICT (id) DO NOTHING`, c.bind(1, 5))

	_, err := c.db.ExecContext(ctx, query,
		artist.ID, artist.Name, stringOrNull(artist.Href), stringOrNull(artist.URI), stringOrNull(artist.ExternalURL))
	if err != nil {
		return apperrors.WrapAs(err, apperrors.ErrInsertFailed, "artist %s", artist.ID)
	}
	return nil
}

// SaveAlbum inserts an album with its artists and images, keeping existing rows
func (c *CommonDB) SaveAlbum(ctx context.Context, album model.Album) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Unavailable(err, "begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO albums (id, name, album_type, total_tracks,
		release_date, release_date_precision, href, uri, external_url)
		VALUES (%s) ON CONFLICT (id) DO NOTHING`, c.bind(1, 9)),
		album.ID, album.Name, stringOrNull(album.AlbumType), album.TotalTracks,
		stringOrNull(album.ReleaseDate), stringOrNull(album.ReleaseDatePrecision),
		stringOrNull(album.Href), stringOrNull(album.URI), stringOrNull(album.ExternalURL))
	if err != nil {
		return apperrors.WrapAs(err, apperrors.ErrInsertFailed, "album %s", album.ID)
	}

	for i, artist := range album.Artists {
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO artists (id, name, href, uri, external_url)
			VALUES (%s) ON CONFLICT (id) DO NOTHING`, c.bind(1, 5)),
			artist.ID, artist.Name, stringOrNull(artist.Href), stringOrNull(artist.URI), stringOrNull(artist.ExternalURL))
		if err != nil {
			return apperrors.WrapAs(err, apperrors.ErrInsertFailed, "artist %s", artist.ID)
		}
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO album_artists (album_id, artist_id, position)
			VALUES (%s) ON CONFLICT (album_id, artist_id) DO NOTHING`, c.bind(1, 3)),
			album.ID, artist.ID, i)
		if err != nil {
			return apperrors.WrapAs(err, apperrors.ErrInsertFailed, "album artist %s", artist.ID)
		}
	}

	for _, img := range album.Images {
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO images (album_id, url, height, width)
			VALUES (%s) ON CONFLICT (album_id, url) DO NOTHING`, c.bind(1, 4)),
			album.ID, img.URL, intOrNull(img.Height), intOrNull(img.Width))
		if err != nil {
			return apperrors.WrapAs(err, apperrors.ErrInsertFailed, "image %s", img.URL)
		}
	}

	return tx.Commit()
}

// SaveTrack inserts the track row unless it exists and reports creation
func (c *CommonDB) SaveTrack(ctx context.Context, t model.Track) (bool, error) {
	query := fmt.Sprintf(`INSERT INTO tracks (%s)
		VALUES (%s) ON CONFLICT (id) DO NOTHING`, trackColumns, c.bind(1, 15))

	result, err := c.db.ExecContext(ctx, query,
		t.ID, t.Name, intOrNull(t.DiscNumber), intOrNull(t.DurationMs), t.Explicit,
		stringOrNull(t.Href), t.URI, stringOrNull(t.ExternalURL), intOrNull(t.Popularity),
		stringOrNull(t.PreviewURL), intOrNull(t.TrackNumber), t.IsPlayable, t.IsLocal,
		stringOrNull(t.AlbumID), c.now().UTC(),
	)
	if err != nil {
		return false, apperrors.WrapAs(err, apperrors.ErrInsertFailed, "track %s", t.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "rows affected")
	}
	return affected > 0, nil
}

// SetTrackArtists replaces the credited artists of a track, keeping order
func (c *CommonDB) SetTrackArtists(ctx context.Context, trackID string, artistIDs []string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Unavailable(err, "begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM track_artists WHERE track_id = %s", c.placeholders(1)), trackID); err != nil {
		return apperrors.WrapAs(err, apperrors.ErrUpdateFailed, "clear artists of track %s", trackID)
	}

	for i, artistID := range artistIDs {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO track_artists (track_id, artist_id, position)
			VALUES (%s) ON CONFLICT (track_id, artist_id) DO NOTHING`, c.bind(1, 3)), trackID, artistID, i); err != nil {
			return apperrors.WrapAs(err, apperrors.ErrInsertFailed, "track artist %s", artistID)
		}
	}

	return tx.Commit()
}

// SaveMarkets records the markets a track is available in
func (c *CommonDB) SaveMarkets(ctx context.Context, trackID string, markets []string) error {
	query := fmt.Sprintf(`INSERT INTO available_markets (track_id, market)
		VALUES (%s) ON CONFLICT (track_id, market) DO NOTHING`, c.bind(1, 2))

	for _, market := range markets {
		if _, err := c.db.ExecContext(ctx, query, trackID, market); err != nil {
			return apperrors.WrapAs(err, apperrors.ErrInsertFailed, "market %s", market)
		}
	}
	return nil
}

// SaveExternalIDs stores the external ids of a track unless already present
func (c *CommonDB) SaveExternalIDs(ctx context.Context, trackID string, ids model.ExternalIDs) error {
	query := fmt.Sprintf(`INSERT INTO external_ids (track_id, isrc, ean, upc)
		VALUES (%s) ON CONFLICT (track_id) DO NOTHING`, c.bind(1, 4))

	_, err := c.db.ExecContext(ctx, query, trackID, stringOrNull(ids.ISRC), stringOrNull(ids.EAN), stringOrNull(ids.UPC))
	if err != nil {
		return apperrors.WrapAs(err, apperrors.ErrInsertFailed, "external ids %s", trackID)
	}
	return nil
}

// EnsureSchema creates the catalog tables when missing
func (c *CommonDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaFor(c.driverName) {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return apperrors.Wrapf(err, "create schema (%s)", c.driverName)
		}
	}
	return nil
}

// Close closes the database connection
func (c *CommonDB) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// DB returns the underlying database connection
func (c *CommonDB) DB() *sql.DB {
	return c.db
}

// DriverName returns the SQL driver the store was opened with
func (c *CommonDB) DriverName() string {
	return c.driverName
}
