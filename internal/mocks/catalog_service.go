package mocks

import (
	"context"

	"github.com/phrazzld/periodic-api/internal/periodic"
	"github.com/phrazzld/periodic-api/internal/store"
)

// MockCatalogService implements service.CatalogService for testing.
// Unset function fields fall back to the real tables for Elements and
// Element, and to DefaultError otherwise.
type MockCatalogService struct {
	ElementsFn         func(ctx context.Context) []periodic.Element
	ElementFn          func(ctx context.Context, symbol string) (periodic.Element, error)
	StoredQuantitiesFn func(ctx context.Context, subject string) ([]store.QuantityRecord, error)
	SeedFn             func(ctx context.Context) (int, error)

	Records      []store.QuantityRecord
	DefaultError error
}

// Elements implements the CatalogService.Elements method
func (m *MockCatalogService) Elements(ctx context.Context) []periodic.Element {
	if m.ElementsFn != nil {
		return m.ElementsFn(ctx)
	}
	return periodic.Elements()
}

// Element implements the CatalogService.Element method
func (m *MockCatalogService) Element(ctx context.Context, symbol string) (periodic.Element, error) {
	if m.ElementFn != nil {
		return m.ElementFn(ctx, symbol)
	}
	if m.DefaultError != nil {
		return 0, m.DefaultError
	}
	return periodic.ParseElement(symbol)
}

// StoredQuantities implements the CatalogService.StoredQuantities method
func (m *MockCatalogService) StoredQuantities(ctx context.Context, subject string) ([]store.QuantityRecord, error) {
	if m.StoredQuantitiesFn != nil {
		return m.StoredQuantitiesFn(ctx, subject)
	}
	return m.Records, m.DefaultError
}

// Seed implements the CatalogService.Seed method
func (m *MockCatalogService) Seed(ctx context.Context) (int, error) {
	if m.SeedFn != nil {
		return m.SeedFn(ctx)
	}
	return len(m.Records), m.DefaultError
}
