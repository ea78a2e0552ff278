package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
	"github.com/phrazzld/periodic-api/internal/mocks"
	"github.com/phrazzld/periodic-api/internal/periodic"
	"github.com/phrazzld/periodic-api/internal/platform/logger"
	"github.com/phrazzld/periodic-api/internal/service"
	"github.com/phrazzld/periodic-api/internal/store"
)

func newTableOnlyService(t *testing.T) service.CatalogService {
	t.Helper()

	l, _ := logger.NewTestLogger(t)
	svc, err := service.NewCatalogService(nil, nil, l)
	require.NoError(t, err)
	return svc
}

func TestNewCatalogServiceRequiresPairedDependencies(t *testing.T) {
	t.Parallel()

	_, err := service.NewCatalogService(nil, &mocks.MockQuantityStore{}, nil)

	var se *service.CatalogServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "create_service", se.Operation)
}

func TestElement(t *testing.T) {
	t.Parallel()

	svc := newTableOnlyService(t)

	e, err := svc.Element(context.Background(), "Au")
	require.NoError(t, err)
	assert.Equal(t, periodic.Au, e)

	_, err = svc.Element(context.Background(), "Qq")
	assert.ErrorIs(t, err, service.ErrElementNotFound)

	assert.Len(t, svc.Elements(context.Background()), periodic.Count)
}

func TestStoredQuantities(t *testing.T) {
	t.Parallel()

	t.Run("without a store", func(t *testing.T) {
		t.Parallel()

		_, err := newTableOnlyService(t).StoredQuantities(context.Background(), "H")
		assert.ErrorIs(t, err, service.ErrStoreUnavailable)
	})

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		want := []store.QuantityRecord{{
			Subject:  "H",
			Property: store.PropertyStandardAtomicWeight,
			Mode:     "unabridged",
			Value:    uncertain.MustFromBounds(1.00784, 1.00811),
		}}
		qs := &mocks.MockQuantityStore{}
		qs.On("ListBySubject", mock.Anything, "H").Return(want, nil)

		svc, err := service.NewCatalogService(db, qs, nil)
		require.NoError(t, err)

		got, err := svc.StoredQuantities(context.Background(), "H")
		require.NoError(t, err)
		assert.Equal(t, want, got)
		qs.AssertExpectations(t)
	})

	t.Run("empty is not found", func(t *testing.T) {
		t.Parallel()

		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		qs := &mocks.MockQuantityStore{}
		qs.On("ListBySubject", mock.Anything, "Og").Return([]store.QuantityRecord{}, nil)

		svc, err := service.NewCatalogService(db, qs, nil)
		require.NoError(t, err)

		_, err = svc.StoredQuantities(context.Background(), "Og")
		assert.ErrorIs(t, err, service.ErrQuantityNotFound)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()

		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		cause := errors.New("connection reset")
		qs := &mocks.MockQuantityStore{}
		qs.On("ListBySubject", mock.Anything, "Fe").Return(nil, cause)

		svc, err := service.NewCatalogService(db, qs, nil)
		require.NoError(t, err)

		_, err = svc.StoredQuantities(context.Background(), "Fe")
		assert.ErrorIs(t, err, cause)
		var se *service.CatalogServiceError
		assert.ErrorAs(t, err, &se)
	})
}

func TestSeed(t *testing.T) {
	t.Parallel()

	records := service.CatalogRecords()

	t.Run("commits every record", func(t *testing.T) {
		t.Parallel()

		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		qs := &mocks.MockQuantityStore{}
		qs.On("Upsert", mock.Anything, mock.AnythingOfType("store.QuantityRecord")).Return(nil)

		svc, err := service.NewCatalogService(db, qs, nil)
		require.NoError(t, err)

		n, err := svc.Seed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, len(records), n)
		qs.AssertNumberOfCalls(t, "Upsert", len(records))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		t.Parallel()

		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		qs := &mocks.MockQuantityStore{}
		qs.On("Upsert", mock.Anything, mock.Anything).Return(store.ErrInvalidEntity).Once()

		svc, err := service.NewCatalogService(db, qs, nil)
		require.NoError(t, err)

		n, err := svc.Seed(context.Background())
		assert.Error(t, err)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Zero(t, n)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("without a store", func(t *testing.T) {
		t.Parallel()

		_, err := newTableOnlyService(t).Seed(context.Background())
		assert.ErrorIs(t, err, service.ErrStoreUnavailable)
	})
}

func TestCatalogRecords(t *testing.T) {
	t.Parallel()

	records := service.CatalogRecords()
	require.NotEmpty(t, records)

	keys := make(map[string]bool, len(records))
	var weights int
	for _, r := range records {
		require.NoError(t, r.Validate(), "%+v", r)
		key := r.Subject + "|" + r.Property + "|" + r.Mode
		assert.False(t, keys[key], "duplicate record %s", key)
		keys[key] = true
		if r.Property == store.PropertyStandardAtomicWeight {
			weights++
		}
	}

	assert.True(t, keys["H|standard_atomic_weight|unabridged"])
	assert.True(t, keys["C-12|isotopic_composition|"])
	assert.False(t, keys["C-14|isotopic_composition|"])
	assert.Equal(t, 0, weights%2, "every weighted element has both tables")
}
