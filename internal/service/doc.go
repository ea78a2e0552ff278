// Package service contains the application use cases over the element
// catalog. It resolves elements and their quantities from the built-in
// tables in internal/periodic and, when a database is configured, mirrors
// those quantities into a store.QuantityStore and reads them back.
//
// The service depends on store interfaces only, never on a specific
// database implementation. Delivery mechanisms (the HTTP API and the CLI)
// call the service and translate its sentinel errors for their callers.
package service
