package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrMissingInput        = errors.New("no data file provided")
	ErrUnsupportedFormat   = errors.New("unsupported file format")
	ErrInsufficientColumns = errors.New("data must have at least two columns (categories and values)")

	// Lookup errors
	ErrNotFound         = errors.New("resource not found")
	ErrArtifactNotFound = fmt.Errorf("%w: artifact", ErrNotFound)

	// Composition errors
	ErrTemplateInvalid = errors.New("template could not be loaded")
)

// Error constructors with context
func NewUnsupportedFormatError(filename string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
}

func NewArtifactNotFoundError(id string) error {
	return fmt.Errorf("%w: %s", ErrArtifactNotFound, id)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrInsufficientColumns)
}
