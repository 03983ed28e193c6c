package repo

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pgUniqueViolation = pq.ErrorCode("23505")
	pgInvalidRegex    = pq.ErrorCode("2201B")

	orderNoConstraint = "orders_order_no_key"
)

func pgError(err error, code pq.ErrorCode) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == code {
		return pqErr, true
	}
	return nil, false
}

func isOrderNoTaken(err error) bool {
	pqErr, ok := pgError(err, pgUniqueViolation)
	return ok && pqErr.Constraint == orderNoConstraint
}

// isInvalidRegex reports a search pattern Go accepts but Postgres ARE syntax
// rejects.
func isInvalidRegex(err error) bool {
	_, ok := pgError(err, pgInvalidRegex)
	return ok
}
