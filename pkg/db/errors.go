package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// pgInvalidTextRepresentation is raised when a malformed literal (e.g. a bad uuid) reaches Postgres.
	pgInvalidTextRepresentation = "22P02"
	// pgNumericValueOutOfRange is raised when a number does not fit its column type.
	pgNumericValueOutOfRange = "22003"
)

// IsNotFound reports whether err means no row matched.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsInvalidInput reports whether Postgres rejected a value supplied in the query.
func IsInvalidInput(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgInvalidTextRepresentation, pgNumericValueOutOfRange:
		return true
	}
	return false
}
