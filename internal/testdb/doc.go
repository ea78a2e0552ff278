// Package testdb connects integration tests to a real PostgreSQL database.
//
// Tests call Open to obtain a migrated *sql.DB and WithTx to run against a
// transaction that is always rolled back. Without a database URL the test is
// skipped locally and fails in CI.
package testdb
