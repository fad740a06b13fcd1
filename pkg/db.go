package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	code, _ := pgErrorCode(err)
	return code == pgCodeUniqueViolation
}

// IsUniqueViolationOf reports whether err is a unique violation of the named constraint.
func IsUniqueViolationOf(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	return code == pgCodeUniqueViolation && name == constraint
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	code, _ := pgErrorCode(err)
	return code == pgCodeForeignKeyViolation
}
