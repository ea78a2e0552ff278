// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the catalog, so tabulated quantities can be mirrored into a database
// without the periodic tables depending on it.
package store
