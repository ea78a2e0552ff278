package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
	"github.com/phrazzld/periodic-api/internal/platform/logger"
	"github.com/phrazzld/periodic-api/internal/store"
)

// PostgresQuantityStore implements store.QuantityStore on the quantities table.
// Columns a and b hold (start, end) for intervals and (value, uncertainty)
// for centered quantities.
type PostgresQuantityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuantityStore creates a store using db, which may be a *sql.DB
// or a *sql.Tx. If logger is nil, the default logger is used.
func NewPostgresQuantityStore(db store.DBTX, logger *slog.Logger) *PostgresQuantityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresQuantityStore{
		db:     db,
		logger: logger.With(slog.String("component", "quantity_store")),
	}
}

var _ store.QuantityStore = (*PostgresQuantityStore)(nil)

const upsertQuantityQuery = `
	INSERT INTO quantities (subject, property, mode, kind, a, b, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
	ON CONFLICT (subject, property, mode)
	DO UPDATE SET kind = EXCLUDED.kind, a = EXCLUDED.a, b = EXCLUDED.b, updated_at = NOW()
`

// Upsert implements store.QuantityStore.Upsert.
func (s *PostgresQuantityStore) Upsert(ctx context.Context, r store.QuantityRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := r.Validate(); err != nil {
		log.Warn("quantity validation failed during upsert",
			slog.String("subject", r.Subject),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	kind, a, b := encodeQuantity(r.Value)
	if _, err := s.db.ExecContext(ctx, upsertQuantityQuery, r.Subject, r.Property, r.Mode, kind, a, b); err != nil {
		if IsCheckViolation(err) {
			log.Warn("quantity rejected by check constraint",
				slog.String("subject", r.Subject),
				slog.String("property", r.Property),
				slog.String("kind", kind))
		} else {
			log.Error("failed to upsert quantity",
				slog.String("subject", r.Subject),
				slog.String("property", r.Property),
				slog.String("error", err.Error()))
		}
		return store.NewStoreError("quantity", "upsert", "failed to upsert quantity", MapError(err))
	}

	log.Debug("quantity upserted",
		slog.String("subject", r.Subject),
		slog.String("property", r.Property),
		slog.String("mode", r.Mode))
	return nil
}

// Get implements store.QuantityStore.Get.
func (s *PostgresQuantityStore) Get(ctx context.Context, subject, property, mode string) (store.QuantityRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT subject, property, mode, kind, a, b
		FROM quantities
		WHERE subject = $1 AND property = $2 AND mode = $3
	`
	r, err := scanRecord(s.db.QueryRowContext(ctx, query, subject, property, mode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("quantity not found", slog.String("subject", subject), slog.String("property", property))
			return store.QuantityRecord{}, store.ErrQuantityNotFound
		}
		log.Error("failed to get quantity", slog.String("subject", subject), slog.String("error", err.Error()))
		return store.QuantityRecord{}, store.NewStoreError("quantity", "get", "failed to get quantity", MapError(err))
	}
	return r, nil
}

// ListBySubject implements store.QuantityStore.ListBySubject.
func (s *PostgresQuantityStore) ListBySubject(ctx context.Context, subject string) ([]store.QuantityRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT subject, property, mode, kind, a, b
		FROM quantities
		WHERE subject = $1
		ORDER BY property, mode
	`
	rows, err := s.db.QueryContext(ctx, query, subject)
	if err != nil {
		log.Error("failed to list quantities", slog.String("subject", subject), slog.String("error", err.Error()))
		return nil, store.NewStoreError("quantity", "list", "failed to list quantities", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	records := []store.QuantityRecord{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, store.NewStoreError("quantity", "list", "failed to scan quantity", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("quantity", "list", "failed to iterate quantities", MapError(err))
	}
	return records, nil
}

// Count implements store.QuantityStore.Count.
func (s *PostgresQuantityStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quantities`).Scan(&n); err != nil {
		return 0, store.NewStoreError("quantity", "count", "failed to count quantities", MapError(err))
	}
	return n, nil
}

// WithTx implements store.QuantityStore.WithTx.
func (s *PostgresQuantityStore) WithTx(tx *sql.Tx) store.QuantityStore {
	return &PostgresQuantityStore{db: tx, logger: s.logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (store.QuantityRecord, error) {
	var (
		r    store.QuantityRecord
		kind string
		a, b float64
	)
	if err := row.Scan(&r.Subject, &r.Property, &r.Mode, &kind, &a, &b); err != nil {
		return store.QuantityRecord{}, err
	}
	q, err := decodeQuantity(kind, a, b)
	if err != nil {
		return store.QuantityRecord{}, fmt.Errorf("%w: row %s/%s: %w", store.ErrInvalidEntity, r.Subject, r.Property, err)
	}
	r.Value = q
	return r, nil
}

func encodeQuantity(q uncertain.Quantity) (kind string, a, b float64) {
	if q.Kind() == uncertain.KindInterval {
		a, b = q.Bounds()
		return q.Kind().String(), a, b
	}
	return q.Kind().String(), q.Value(), q.Uncertainty()
}

func decodeQuantity(kind string, a, b float64) (uncertain.Quantity, error) {
	switch kind {
	case uncertain.KindInterval.String():
		return uncertain.FromBounds(a, b)
	case uncertain.KindCentered.String():
		return uncertain.FromValueAndUncertainty(a, b)
	default:
		return uncertain.Quantity{}, fmt.Errorf("unknown quantity kind %q", kind)
	}
}
