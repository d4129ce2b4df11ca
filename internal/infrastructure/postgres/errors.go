package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgCode returns the SQLSTATE of err, or "" if err is not a server error.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

// isInvalidText matches malformed input for typed columns, e.g. a non-UUID id.
func isInvalidText(err error) bool {
	return pgCode(err) == pgerrcode.InvalidTextRepresentation
}
