package core

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE classes the service discriminates on.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// ValidationError reports malformed or missing caller input, detected before
// any store interaction. Surfaced as HTTP 400 with the offending field named.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// ConflictError reports a uniqueness violation, e.g. a duplicate SKU.
// Surfaced as HTTP 409.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string { return e.Detail }

// ConstraintError reports any other store-level constraint violation surfaced
// at write time, e.g. referencing a non-existent warehouse or driving a
// quantity negative. Surfaced as HTTP 400.
type ConstraintError struct {
	Detail string
}

func (e *ConstraintError) Error() string { return e.Detail }

// NotFoundError reports a missing record on direct lookups.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

// storeError maps PostgreSQL constraint violations onto the typed error
// taxonomy. The unique-violation path is the authoritative conflict signal:
// there is deliberately no check-then-insert pre-read anywhere, so two
// concurrent writers racing on the same key both land here and exactly one
// wins. conflictDetail is the message for that case; foreign-key and check
// violations keep the database's own message, which names the constraint.
// Anything else passes through unchanged.
func storeError(err error, conflictDetail string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConflictError{Detail: conflictDetail}
		case pgForeignKeyViolation, pgCheckViolation:
			return &ConstraintError{Detail: pgErr.Message}
		}
	}
	return err
}
