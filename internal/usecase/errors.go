package usecase

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrStoreFailure = crerr.New("store failure")
)

// storeFailure wraps an error returned by a repository and marks it so that
// crerr.Is(err, ErrStoreFailure) holds while the original cause stays
// reachable.
func storeFailure(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(crerr.Wrap(err, msg), ErrStoreFailure)
}

// IsStoreFailure reports whether err came from the entity store.
func IsStoreFailure(err error) bool {
	return crerr.Is(err, ErrStoreFailure)
}
