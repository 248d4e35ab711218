package pg

import (
	"database/sql"

	_ "github.com/lib/pq"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/repository"
)

// DriverName is the database/sql driver registered by lib/pq
const DriverName = "postgres"

// NewPostgresDB opens a catalog store on the PostgreSQL database at dsn.
// The connection is not verified until first use.
func NewPostgresDB(dsn string) (*repository.CommonDB, error) {
	if dsn == "" {
		return nil, apperrors.RequiredField("postgres dsn")
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseConnection.Error())
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return repository.NewCommonDB(db, DriverName), nil
}
