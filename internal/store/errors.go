package store

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable indicates the database could not be opened, read or
// written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageError wraps a driver failure with the store operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorageUnavailable, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is matches ErrStorageUnavailable.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
