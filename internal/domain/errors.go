package domain

import (
	"errors"
	"fmt"
)

// Domain errors are transport-agnostic. The handler maps them to HTTP status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("not permitted")
	ErrStorage            = errors.New("storage failure")
)

// StorageError reports a failed gateway call. Err keeps the low-level cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("error occurred during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes every StorageError match ErrStorage.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }
