package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: sharda", ErrUniversityNotFound)
	if !errors.Is(wrapped, ErrUniversityNotFound) {
		t.Error("wrapped sentinel should match with errors.Is")
	}
	if errors.Is(wrapped, ErrProgramNotFound) {
		t.Error("sentinels must not match each other")
	}
}

func TestCatalogError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	err := NewCatalogError("sharda.json", "parse failed", cause)

	if got := err.Error(); got != "catalog sharda.json: parse failed: unexpected end of JSON input" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("CatalogError should unwrap to its cause")
	}

	var catErr *CatalogError
	if !errors.As(err, &catErr) {
		t.Fatal("errors.As should find CatalogError")
	}
	if catErr.Source != "sharda.json" {
		t.Errorf("Source = %q", catErr.Source)
	}
}

func TestCatalogErrorWithoutCause(t *testing.T) {
	t.Parallel()

	err := NewCatalogError("niu.json", "missing university id", nil)
	if got := err.Error(); got != "catalog niu.json: missing university id" {
		t.Errorf("Error() = %q", got)
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap() should be nil without a cause")
	}
}
