package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/periodic-api/internal/periodic"
	"github.com/phrazzld/periodic-api/internal/store"
)

// Sentinel errors returned by the catalog service. The API layer maps these
// to HTTP status codes.
var (
	// ErrElementNotFound indicates that a symbol does not name an element.
	// API layer should map this to HTTP 404 Not Found.
	ErrElementNotFound = errors.New("element not found")

	// ErrQuantityNotFound indicates that no stored quantity exists for a subject.
	// API layer should map this to HTTP 404 Not Found.
	ErrQuantityNotFound = errors.New("quantity not found")

	// ErrStoreUnavailable indicates that the operation needs a database and
	// none is configured. API layer should map this to HTTP 503.
	ErrStoreUnavailable = errors.New("quantity store not configured")
)

// CatalogServiceError wraps unexpected errors from the catalog service with context.
type CatalogServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CatalogServiceError.
func (e *CatalogServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CatalogServiceError) Unwrap() error {
	return e.Err
}

// NewCatalogServiceError wraps err. Known conditions are returned as the
// matching service sentinel instead of being wrapped.
func NewCatalogServiceError(operation, message string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, periodic.ErrUnknownElement), errors.Is(err, ErrElementNotFound):
		return ErrElementNotFound
	case store.IsNotFoundError(err), errors.Is(err, ErrQuantityNotFound):
		return ErrQuantityNotFound
	}
	return &CatalogServiceError{Operation: operation, Message: message, Err: err}
}
