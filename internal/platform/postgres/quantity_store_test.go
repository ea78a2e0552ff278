package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/periodic-api/internal/domain"
	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
	"github.com/phrazzld/periodic-api/internal/platform/logger"
	"github.com/phrazzld/periodic-api/internal/store"
)

var recordColumns = []string{"subject", "property", "mode", "kind", "a", "b"}

func newMockStore(t *testing.T) (*PostgresQuantityStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l, _ := logger.NewTestLogger(t)
	return NewPostgresQuantityStore(db, l), mock
}

func TestUpsert(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value uncertain.Quantity
		kind  string
		a, b  float64
	}{
		{name: "interval stores bounds", value: uncertain.MustFromBounds(1.00784, 1.00811), kind: "Interval", a: 1.00784, b: 1.00811},
		{name: "centered stores value and uncertainty", value: uncertain.MustFromValueAndUncertainty(4.002602, 0.000002), kind: "Uncertain", a: 4.002602, b: 0.000002},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMockStore(t)
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quantities")).
				WithArgs("H", store.PropertyStandardAtomicWeight, "unabridged", tc.kind, tc.a, tc.b).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := s.Upsert(context.Background(), store.QuantityRecord{
				Subject:  "H",
				Property: store.PropertyStandardAtomicWeight,
				Mode:     "unabridged",
				Value:    tc.value,
			})
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpsertRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	err := s.Upsert(context.Background(), store.QuantityRecord{Property: "density"})

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query should run for an invalid record")
}

func TestUpsertMapsConstraintViolation(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	l, buf := logger.NewTestLogger(t)
	s := NewPostgresQuantityStore(db, l)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quantities")).
		WillReturnError(&pgconn.PgError{Code: checkViolationCode, ConstraintName: "quantities_interval_check"})

	err = s.Upsert(context.Background(), store.QuantityRecord{
		Subject:  "C-12",
		Property: store.PropertyRelativeAtomicMass,
		Value:    uncertain.Exact(12),
	})

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	var se *store.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "upsert", se.Operation)

	entries, logErr := buf.Entries()
	require.NoError(t, logErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "quantity rejected by check constraint", entries[0]["msg"])
}

func TestGet(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM quantities")).
		WithArgs("B", store.PropertyStandardAtomicWeight, "unabridged").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("B", store.PropertyStandardAtomicWeight, "unabridged", "Interval", 10.806, 10.821))

	r, err := s.Get(context.Background(), "B", store.PropertyStandardAtomicWeight, "unabridged")

	require.NoError(t, err)
	assert.Equal(t, "B", r.Subject)
	assert.Equal(t, uncertain.KindInterval, r.Value.Kind())
	assert.True(t, r.Value.Equal(uncertain.MustFromBounds(10.806, 10.821)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM quantities")).WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "Og", store.PropertyStandardAtomicWeight, "abridged")

	assert.ErrorIs(t, err, store.ErrQuantityNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestGetCorruptRow(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM quantities")).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("X", store.PropertyRelativeAtomicMass, "", "Interval", 2.0, 1.0))

	_, err := s.Get(context.Background(), "X", store.PropertyRelativeAtomicMass, "")

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, uncertain.ErrInvertedBounds)
}

func TestListBySubject(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE subject = $1")).
		WithArgs("H").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("H", store.PropertyStandardAtomicWeight, "abridged", "Uncertain", 1.0080, 0.0002).
			AddRow("H", store.PropertyStandardAtomicWeight, "unabridged", "Interval", 1.00784, 1.00811))

	records, err := s.ListBySubject(context.Background(), "H")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uncertain.KindCentered, records[0].Value.Kind())
	assert.Equal(t, uncertain.KindInterval, records[1].Value.Kind())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBySubjectEmpty(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE subject = $1")).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := s.ListBySubject(context.Background(), "Zz")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCount(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM quantities")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := s.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quantities")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := NewPostgresQuantityStore(db, nil)
	err = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return s.WithTx(tx).Upsert(ctx, store.QuantityRecord{
			Subject:  "He-4",
			Property: store.PropertyRelativeAtomicMass,
			Value:    uncertain.MustFromValueAndUncertainty(4.00260325413, 0.00000000006),
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(sql.ErrNoRows), store.ErrNotFound)
	assert.ErrorIs(t, MapError(&pgconn.PgError{Code: uniqueViolationCode}), store.ErrDuplicate)
	assert.ErrorIs(t, MapError(&pgconn.PgError{Code: notNullViolationCode, ColumnName: "kind"}), store.ErrInvalidEntity)

	other := errors.New("connection refused")
	assert.Same(t, other, MapError(other))

	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: checkViolationCode}))
	assert.False(t, IsCheckViolation(other))
}

func TestEncodeDecodeQuantity(t *testing.T) {
	t.Parallel()

	for _, q := range []uncertain.Quantity{
		uncertain.MustFromBounds(204.382, 204.385),
		uncertain.MustFromValueAndUncertainty(238.02891, 0.00003),
		uncertain.Exact(1),
	} {
		kind, a, b := encodeQuantity(q)
		got, err := decodeQuantity(kind, a, b)
		require.NoError(t, err)
		assert.Equal(t, q, got, "stored quantity must come back unchanged")
	}

	_, err := decodeQuantity("Range", 1, 2)
	assert.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	names, err := Migrations()
	require.NoError(t, err)
	assert.Contains(t, names, "00001_create_quantities.sql")
}

func TestMigrateUnknownCommand(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = Migrate(context.Background(), db, "sideways", nil)
	assert.ErrorContains(t, err, "unknown migration command")
}
