package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/periodic-api/internal/periodic"
	"github.com/phrazzld/periodic-api/internal/platform/logger"
	"github.com/phrazzld/periodic-api/internal/store"
)

// CatalogService provides read access to the element catalog and keeps the
// optional quantity store in sync with the built-in tables.
type CatalogService interface {
	// Elements returns every element in atomic-number order.
	Elements(ctx context.Context) []periodic.Element

	// Element resolves a chemical symbol. Returns ErrElementNotFound for unknown symbols.
	Element(ctx context.Context, symbol string) (periodic.Element, error)

	// StoredQuantities returns the quantities stored for subject.
	// Returns ErrStoreUnavailable without a database, and ErrQuantityNotFound
	// when nothing is stored for subject.
	StoredQuantities(ctx context.Context, subject string) ([]store.QuantityRecord, error)

	// Seed upserts every tabulated quantity in a single transaction and
	// returns the number of records written.
	Seed(ctx context.Context) (int, error)
}

type catalogServiceImpl struct {
	db     *sql.DB
	store  store.QuantityStore
	logger *slog.Logger
}

// NewCatalogService creates a CatalogService. db and qs may both be nil, in
// which case only the built-in tables are served; they must be nil together.
func NewCatalogService(db *sql.DB, qs store.QuantityStore, logger *slog.Logger) (CatalogService, error) {
	if (db == nil) != (qs == nil) {
		return nil, &CatalogServiceError{
			Operation: "create_service",
			Message:   "db and quantity store must be provided together",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogServiceImpl{
		db:     db,
		store:  qs,
		logger: logger.With(slog.String("component", "catalog_service")),
	}, nil
}

func (s *catalogServiceImpl) Elements(context.Context) []periodic.Element {
	return periodic.Elements()
}

func (s *catalogServiceImpl) Element(ctx context.Context, symbol string) (periodic.Element, error) {
	e, err := periodic.ParseElement(symbol)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("unknown element requested", slog.String("symbol", symbol))
		return 0, NewCatalogServiceError("get_element", "failed to resolve element", err)
	}
	return e, nil
}

func (s *catalogServiceImpl) StoredQuantities(ctx context.Context, subject string) ([]store.QuantityRecord, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	records, err := s.store.ListBySubject(ctx, subject)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list stored quantities",
			slog.String("subject", subject),
			slog.String("error", err.Error()))
		return nil, NewCatalogServiceError("stored_quantities", "failed to list quantities", err)
	}
	if len(records) == 0 {
		return nil, ErrQuantityNotFound
	}
	return records, nil
}

func (s *catalogServiceImpl) Seed(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, ErrStoreUnavailable
	}

	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("correlation_id", uuid.NewString()))
	ctx = logger.WithLogger(ctx, log)

	records := CatalogRecords()
	log.Info("seeding quantity store", slog.Int("records", len(records)))

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.store.WithTx(tx)
		for _, r := range records {
			if err := txStore.Upsert(ctx, r); err != nil {
				return fmt.Errorf("upsert %s %s: %w", r.Subject, r.Property, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("seeding failed", slog.String("error", err.Error()))
		return 0, NewCatalogServiceError("seed", "failed to seed quantities", err)
	}

	log.Info("seeding completed", slog.Int("records", len(records)))
	return len(records), nil
}

// CatalogRecords flattens the built-in tables into store records: both
// standard atomic weight tables per element, then each isotope's relative
// atomic mass and, where measured, its isotopic composition.
func CatalogRecords() []store.QuantityRecord {
	var records []store.QuantityRecord
	for _, e := range periodic.Elements() {
		for _, mode := range []periodic.Mode{periodic.Abridged, periodic.Unabridged} {
			if w, ok := e.StandardAtomicWeight(mode); ok {
				records = append(records, store.QuantityRecord{
					Subject:  e.Symbol(),
					Property: store.PropertyStandardAtomicWeight,
					Mode:     mode.String(),
					Value:    w,
				})
			}
		}
		for _, iso := range e.Isotopes() {
			records = append(records, store.QuantityRecord{
				Subject:  iso.String(),
				Property: store.PropertyRelativeAtomicMass,
				Value:    iso.RelativeAtomicMass(),
			})
			if c, ok := iso.IsotopicComposition(); ok {
				records = append(records, store.QuantityRecord{
					Subject:  iso.String(),
					Property: store.PropertyIsotopicComposition,
					Value:    c,
				})
			}
		}
	}
	return records
}
