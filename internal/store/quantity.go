package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/phrazzld/periodic-api/internal/domain"
	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
)

// Properties under which quantities are recorded.
const (
	PropertyStandardAtomicWeight = "standard_atomic_weight"
	PropertyRelativeAtomicMass   = "relative_atomic_mass"
	PropertyIsotopicComposition  = "isotopic_composition"
)

// ErrUnknownProperty is wrapped by QuantityRecord.Validate for unrecognised properties.
var ErrUnknownProperty = errors.New("unknown property")

// QuantityRecord is one tabulated quantity keyed by subject, property and mode.
// Subject is an element symbol ("Fe") or an isotope ("C-14"). Mode is the
// weight table name for standard atomic weights and empty otherwise.
type QuantityRecord struct {
	Subject  string
	Property string
	Mode     string
	Value    uncertain.Quantity
}

// Validate checks that the record has a usable key.
func (r QuantityRecord) Validate() error {
	if r.Subject == "" {
		return domain.NewValidationError("subject", "cannot be empty", nil)
	}
	switch r.Property {
	case PropertyStandardAtomicWeight:
		if r.Mode == "" {
			return domain.NewValidationError("mode", "is required for standard atomic weights", nil)
		}
	case PropertyRelativeAtomicMass, PropertyIsotopicComposition:
		if r.Mode != "" {
			return domain.NewValidationError("mode", "must be empty for isotope properties", nil)
		}
	default:
		return domain.NewValidationError("property", fmt.Sprintf("%q is not recognised", r.Property), ErrUnknownProperty)
	}
	return nil
}

// QuantityStore defines the interface for persisting tabulated quantities.
type QuantityStore interface {
	// Upsert inserts the record or replaces the stored quantity for its key.
	// Returns ErrInvalidEntity when the record fails validation.
	Upsert(ctx context.Context, r QuantityRecord) error

	// Get retrieves the quantity stored under the given key.
	// Returns ErrQuantityNotFound when nothing is stored.
	Get(ctx context.Context, subject, property, mode string) (QuantityRecord, error)

	// ListBySubject returns every quantity stored for subject ordered by
	// property and mode. An unknown subject yields an empty slice.
	ListBySubject(ctx context.Context, subject string) ([]QuantityRecord, error)

	// Count returns the number of stored quantities.
	Count(ctx context.Context) (int, error)

	// WithTx returns a new QuantityStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) QuantityStore
}
