package infra

import (
	"errors"

	"gleamshop/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound RepositoryErrorKind = "not_found"
	KindConflict RepositoryErrorKind = "conflict"
	KindUnknown  RepositoryErrorKind = "unknown"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr tags a low-level DB error with a coarse kind the usecase layer
// can branch on without knowing pgx internals.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindUnknown
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
