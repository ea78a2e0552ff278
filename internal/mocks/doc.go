// Package mocks provides centralized mock implementations for testing.
//
// Mocks come in two styles. Service mocks use function fields with default
// return values, for handler tests that only need canned answers:
//
//	svc := &mocks.MockCatalogService{
//	    ElementFn: func(ctx context.Context, symbol string) (periodic.Element, error) {
//	        return 0, service.ErrElementNotFound
//	    },
//	}
//
// Store mocks embed testify's mock.Mock, for tests that assert on the calls
// a service makes.
package mocks
