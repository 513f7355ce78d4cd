package repository

import (
	"errors"
	"fmt"
)

// Backend selection errors.
var (
	// ErrNotImplemented is returned for a known backend that has no implementation.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnknownBackend is returned for a backend code or name that does not exist.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// FileError is the single failure kind for reading or writing a backing
// file. No retry is attempted.
type FileError struct {
	Op   string // "create", "read", "write"
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.File, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
