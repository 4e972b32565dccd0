package pcderrors

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDatabase indicates the database does not have the expected
	// "sequence of single-key group mappings" shape.
	ErrMalformedDatabase = errors.New("malformed database")

	// ErrDuplicateGroup indicates a group name appears more than once. It is
	// always reported wrapped in [ErrMalformedDatabase].
	ErrDuplicateGroup = errors.New("duplicate group")

	// ErrUnknownGroup indicates a requested group does not exist in the database.
	ErrUnknownGroup = errors.New("unknown group")

	// ErrUnsupportedLanguage indicates no dialect is registered for a language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrIO indicates an I/O failure.
	ErrIO = errors.New("I/O failure")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = fmt.Errorf("read file: %w", ErrIO)

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("write file: %w", ErrIO)

	// ErrFileNotFound indicates a file wasn't found in the searched paths.
	ErrFileNotFound = fmt.Errorf("file not found: %w", ErrIO)
)
