package service

import (
	"errors"

	"github.com/vedran77/roomchat/internal/repository"
)

var (
	ErrUsernameTaken      = errors.New("username exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// PersistenceError is an unexpected store failure. Public is safe to show
// to clients; Err carries the full cause for logs.
type PersistenceError struct {
	Op     string
	Public string
	Err    error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op, public string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Public: public, Err: err}
}

// withStoreDetail prefers the store's own diagnostic over the fallback.
func withStoreDetail(err error, fallback string) string {
	var storeErr *repository.StoreError
	if errors.As(err, &storeErr) && storeErr.Detail != "" {
		return storeErr.Detail
	}
	return fallback
}
