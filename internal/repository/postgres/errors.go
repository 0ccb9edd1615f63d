package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes relied on as the authoritative guard behind the
// application-level existence checks.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func isPQError(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}
