package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Error types for buffer file operations

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNotFound indicates the requested file does not exist
	ErrTypeNotFound ErrorType = iota
	// ErrTypePermission indicates the file exists but cannot be accessed
	ErrTypePermission
	// ErrTypeIO indicates a read or write failure
	ErrTypeIO
	// ErrTypeDeclined indicates a large load was not confirmed by the caller
	ErrTypeDeclined
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNotFound:
		return "File Not Found"
	case ErrTypePermission:
		return "Permission Denied"
	case ErrTypeIO:
		return "I/O Failure"
	case ErrTypeDeclined:
		return "Load Declined"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// FileError represents a failure to load or save a buffer. It carries the
// offending path and operation so callers can present a useful message
// without string matching.
type FileError struct {
	Type ErrorType // Category of error
	Op   string    // Operation that failed ("load", "save")
	Path string    // File path involved
	Err  error     // Underlying error, if any
}

// Error implements the error interface
func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Type, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s %s", e.Type, e.Op, e.Path)
}

// Unwrap returns the underlying error for errors.Is/As chains
func (e *FileError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a FileError for a missing file
func IsNotFound(err error) bool {
	var fe *FileError
	return errors.As(err, &fe) && fe.Type == ErrTypeNotFound
}

// IsDeclined reports whether err is a FileError for an unconfirmed large load
func IsDeclined(err error) bool {
	var fe *FileError
	return errors.As(err, &fe) && fe.Type == ErrTypeDeclined
}

// classifyFileError maps an os-level error to our error taxonomy
func classifyFileError(op, path string, err error) *FileError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &FileError{Type: ErrTypeNotFound, Op: op, Path: path, Err: err}
	case errors.Is(err, fs.ErrPermission), errors.Is(err, os.ErrPermission):
		return &FileError{Type: ErrTypePermission, Op: op, Path: path, Err: err}
	default:
		return &FileError{Type: ErrTypeIO, Op: op, Path: path, Err: err}
	}
}
