//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/periodic-api/internal/ciutil"
	"github.com/phrazzld/periodic-api/internal/platform/postgres"
	"github.com/phrazzld/periodic-api/internal/redact"
)

const setupTimeout = 30 * time.Second

var migrateOnce sync.Once

// Open connects to the test database and applies all migrations once per
// process. The connection is closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := ciutil.DatabaseURL(slog.Default())
	if url == "" {
		if ciutil.IsCI() {
			t.Fatalf("no test database configured; set one of %v", ciutil.DatabaseURLVars)
		}
		t.Skipf("no test database configured; set one of %v", ciutil.DatabaseURLVars)
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, url)
	if err != nil {
		t.Fatalf("connect to test database: %s", redact.Error(err))
	}
	t.Cleanup(func() { _ = db.Close() })

	var migrateErr error
	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(ctx, db, postgres.MigrateUp, slog.Default())
	})
	if migrateErr != nil {
		t.Fatalf("migrate test database: %s", redact.Error(migrateErr))
	}
	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin test transaction: %s", redact.Error(err))
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("rollback test transaction: %s", redact.Error(err))
		}
	}()

	fn(t, tx)
}
