package types

import "errors"

// Domain errors surfaced by the engine and its components
var (
	// Fatal: the search never starts.
	ErrEmptyPattern = errors.New("search pattern cannot be empty")
	ErrRootNotFound = errors.New("search root does not exist")
	ErrNotDirectory = errors.New("search root is not a directory")

	// ErrBinaryFile marks a file skipped by binary detection. It is an
	// expected condition, not a failure: the engine counts it but emits
	// no warning.
	ErrBinaryFile = errors.New("binary file")
)
