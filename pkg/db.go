package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

// IsUniqueViolationError reports a unique violation. With constraints given,
// only violations of one of those named constraints match.
func IsUniqueViolationError(err error, constraints ...string) bool {
	return pgErrorMatches(err, pgCodeUniqueViolation, constraints)
}

// IsForeignKeyViolationError reports a foreign key violation, optionally
// limited to the named constraints.
func IsForeignKeyViolationError(err error, constraints ...string) bool {
	return pgErrorMatches(err, pgCodeForeignKeyViolation, constraints)
}

func pgErrorMatches(err error, code string, constraints []string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}
