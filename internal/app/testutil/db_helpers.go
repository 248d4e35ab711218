package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"track-recommender/internal/app/model"
	"track-recommender/internal/app/repository"
	"track-recommender/internal/app/repository/pg"
	"track-recommender/internal/app/repository/sqlite"
)

// SetupTestSQLite creates a SQLite catalog in a temp file with the schema applied
func SetupTestSQLite(t *testing.T) *repository.CommonDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), fmt.Sprintf("catalog_%d.sqlite", time.Now().UnixNano()))

	store, err := sqlite.NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite test database: %v", err)
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		store.Close()
		t.Fatalf("Failed to create test tables: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// SetupTestPostgres opens the database named by POSTGRES_TEST_URL and resets
// the catalog tables. The test is skipped when the variable is unset.
func SetupTestPostgres(t *testing.T) *repository.CommonDB {
	t.Helper()

	dsn := os.Getenv("POSTGRES_TEST_URL")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	store, err := pg.NewPostgresDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to PostgreSQL test database: %v", err)
	}
	if err := store.DB().Ping(); err != nil {
		store.Close()
		t.Fatalf("Failed to ping PostgreSQL test database: %v", err)
	}

	ctx := context.Background()
	dropAll := func() {
		tables := repository.TableNames()
		for i := len(tables) - 1; i >= 0; i-- {
			if _, err := store.DB().ExecContext(ctx, "DROP TABLE IF EXISTS "+tables[i]+" CASCADE"); err != nil {
				t.Logf("Failed to drop %s: %v", tables[i], err)
			}
		}
	}
	dropAll()
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		t.Fatalf("Failed to create test tables: %v", err)
	}

	t.Cleanup(func() {
		dropAll()
		store.Close()
	})

	return store
}

// SeedTracks persists tracks into store, failing the test on error
func SeedTracks(t *testing.T, store repository.CatalogDAO, tracks []model.Track) {
	t.Helper()

	for _, track := range tracks {
		if _, err := repository.PersistTrack(context.Background(), store, track); err != nil {
			t.Fatalf("Failed to seed track %s: %v", track.ID, err)
		}
	}
}
