// Package postgres provides the PostgreSQL implementation of the store
// interfaces. It opens connections through the pgx database/sql driver,
// applies the embedded goose migrations, and maps rows to and from
// uncertain.Quantity values.
package postgres
