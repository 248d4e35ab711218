package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/repository"
)

// DriverName is the database/sql driver registered by go-sqlite3
const DriverName = "sqlite3"

// NewSQLiteDB opens (creating if needed) the catalog database at path
func NewSQLiteDB(path string) (*repository.CommonDB, error) {
	if path == "" {
		return nil, apperrors.RequiredField("sqlite path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, apperrors.Wrapf(err, "create database directory for %s", path)
		}
	}

	db, err := sql.Open(DriverName, DSN(path))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseConnection.Error())
	}
	// sqlite serialises writers; a single connection avoids "database is locked"
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseConnection.Error())
	}

	return repository.NewCommonDB(db, DriverName), nil
}

// DSN builds the go-sqlite3 connection string for path
func DSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	return fmt.Sprintf("file:%s?mode=rwc&_foreign_keys=on", path)
}
