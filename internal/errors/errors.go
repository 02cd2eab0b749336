// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrUniversityNotFound indicates a lookup named an unknown university id.
	ErrUniversityNotFound = errors.New("university not found")

	// ErrProgramNotFound indicates a lookup named an unknown program id.
	ErrProgramNotFound = errors.New("program not found")

	// ErrInvalidInput indicates the caller provided invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// CatalogError represents a catalog authoring defect detected at load time.
type CatalogError struct {
	Source  string // catalog file the defect was found in
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog %s: %s", e.Source, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// NewCatalogError creates a new catalog authoring error.
func NewCatalogError(source, message string, cause error) *CatalogError {
	return &CatalogError{Source: source, Message: message, Cause: cause}
}
