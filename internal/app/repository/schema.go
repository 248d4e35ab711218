package repository

import "strings"

// catalogSchema uses {{serial}} for the auto-increment key, which differs per dialect
var catalogSchema = []string{
	`CREATE TABLE IF NOT EXISTS artists (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		href         TEXT,
		uri          TEXT,
		external_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS albums (
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL,
		album_type             TEXT,
		total_tracks           INTEGER NOT NULL DEFAULT 0,
		release_date           TEXT,
		release_date_precision TEXT,
		href                   TEXT,
		uri                    TEXT,
		external_url           TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS album_artists (
		album_id  TEXT NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
		artist_id TEXT NOT NULL REFERENCES artists(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (album_id, artist_id)
	)`,
	`CREATE TABLE IF NOT EXISTS images (
		id       {{serial}},
		album_id TEXT NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
		url      TEXT NOT NULL,
		height   INTEGER,
		width    INTEGER,
		UNIQUE (album_id, url)
	)`,
	`CREATE TABLE IF NOT EXISTS tracks (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		disc_number  INTEGER,
		duration_ms  INTEGER,
		explicit     BOOLEAN NOT NULL DEFAULT FALSE,
		href         TEXT,
		uri          TEXT NOT NULL,
		external_url TEXT,
		popularity   INTEGER,
		preview_url  TEXT,
		track_number INTEGER,
		is_playable  BOOLEAN NOT NULL DEFAULT TRUE,
		is_local     BOOLEAN NOT NULL DEFAULT FALSE,
		album_id     TEXT REFERENCES albums(id) ON DELETE SET NULL,
		created_at   TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS track_artists (
		track_id  TEXT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
		artist_id TEXT NOT NULL REFERENCES artists(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (track_id, artist_id)
	)`,
	`CREATE TABLE IF NOT EXISTS available_markets (
		track_id TEXT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
		market   TEXT NOT NULL,
		PRIMARY KEY (track_id, market)
	)`,
	`CREATE TABLE IF NOT EXISTS external_ids (
		track_id TEXT PRIMARY KEY REFERENCES tracks(id) ON DELETE CASCADE,
		isrc     TEXT,
		ean      TEXT,
		upc      TEXT
	)`,
}

func schemaFor(driverName string) []string {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driverName == "postgres" {
		serial = "SERIAL PRIMARY KEY"
	}

	stmts := make([]string, len(catalogSchema))
	for i, stmt := range catalogSchema {
		stmts[i] = strings.ReplaceAll(stmt, "{{serial}}", serial)
	}
	return stmts
}

// TableNames lists the catalog tables in dependency order
func TableNames() []string {
	return []string{"artists", "albums", "album_artists", "images", "tracks", "track_artists", "available_markets", "external_ids"}
}
