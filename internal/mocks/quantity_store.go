package mocks

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/periodic-api/internal/store"
)

// MockQuantityStore mocks store.QuantityStore with testify expectations.
// WithTx returns the receiver so expectations carry into transactions.
type MockQuantityStore struct {
	mock.Mock
}

var _ store.QuantityStore = (*MockQuantityStore)(nil)

func (m *MockQuantityStore) Upsert(ctx context.Context, r store.QuantityRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockQuantityStore) Get(ctx context.Context, subject, property, mode string) (store.QuantityRecord, error) {
	args := m.Called(ctx, subject, property, mode)
	return args.Get(0).(store.QuantityRecord), args.Error(1)
}

func (m *MockQuantityStore) ListBySubject(ctx context.Context, subject string) ([]store.QuantityRecord, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.QuantityRecord), args.Error(1)
}

func (m *MockQuantityStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockQuantityStore) WithTx(*sql.Tx) store.QuantityStore {
	return m
}
