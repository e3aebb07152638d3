package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// MapError translates database errors to domain errors.
// sql.ErrNoRows becomes notFoundErr and a PostgreSQL unique violation becomes
// duplicateErr. Other errors pass through unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	if IsUniqueViolation(err, "") {
		return duplicateErr
	}

	return err
}

// IsUniqueViolation reports whether err is a PostgreSQL unique violation.
// A non-empty constraint narrows the match to that constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
