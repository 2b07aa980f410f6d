package infra

import (
	"errors"

	"court-booking/internal/pkg/errs"
)

// RepositoryErrorKind tells the use case layer how a storage failure should surface.
type RepositoryErrorKind string

const (
	KindNotFound  RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure RepositoryErrorKind = "DB_FAILURE"
	// KindConflict is a write refused by a uniqueness or exclusion constraint,
	// e.g. two bookings claiming the same court hour.
	KindConflict RepositoryErrorKind = "CONFLICT"
)

type RepositoryError struct {
	Kind  RepositoryErrorKind
	op    string
	cause error
}

func (e *RepositoryError) Error() string {
	msg := string(e.Kind) + ": " + e.op
	if e.cause == nil {
		return msg
	}
	return msg + ": " + e.cause.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.cause
}

// WrapRepoErr classifies a failed store operation, KindDBFailure unless told otherwise.
// The cause, when present, gets a stack so the handler log can point at the query.
func WrapRepoErr(op string, cause error, kind ...RepositoryErrorKind) error {
	e := &RepositoryError{Kind: KindDBFailure, op: op}
	if len(kind) > 0 {
		e.Kind = kind[0]
	}
	if cause != nil {
		e.cause = errs.Wrap(cause, op)
	}
	return e
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e *RepositoryError
	return errors.As(err, &e) && e.Kind == kind
}
