package uncertain

import (
	"errors"
	"fmt"
	"math"

	"github.com/phrazzld/periodic-api/internal/domain"
)

// Kind identifies which convention a Quantity was recorded in.
type Kind uint8

const (
	// KindCentered is a nominal value with a symmetric tolerance.
	// The zero Quantity is a centered exact zero.
	KindCentered Kind = iota

	// KindInterval is an asymmetric [start, end] bound.
	KindInterval
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCentered:
		return "Uncertain"
	case KindInterval:
		return "Interval"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Construction errors. They are returned wrapped in a *domain.ValidationError,
// so errors.Is matches both the specific cause and domain.ErrValidation.
var (
	// ErrInvertedBounds is returned when an interval's start exceeds its end.
	ErrInvertedBounds = errors.New("interval start exceeds end")

	// ErrNegativeUncertainty is returned when a tolerance is below zero.
	ErrNegativeUncertainty = errors.New("uncertainty is negative")

	// ErrNotFinite is returned when an input is NaN or infinite.
	ErrNotFinite = errors.New("value is not finite")
)

// Quantity is a measured value with its bound of error.
//
// For KindInterval, a and b hold start and end. For KindCentered they hold
// value and uncertainty. Fields are unexported so that every Quantity outside
// this package went through a validating constructor or an arithmetic method.
type Quantity struct {
	kind Kind
	a, b float64
}

// FromBounds returns an interval Quantity covering [start, end].
// It fails when start > end or either bound is not finite.
func FromBounds(start, end float64) (Quantity, error) {
	if !isFinite(start) || !isFinite(end) {
		return Quantity{}, domain.NewValidationError("bounds",
			fmt.Sprintf("[%v, %v] must be finite", start, end), ErrNotFinite)
	}
	if start > end {
		return Quantity{}, domain.NewValidationError("bounds",
			fmt.Sprintf("[%v, %v] are inverted", start, end), ErrInvertedBounds)
	}
	return Quantity{kind: KindInterval, a: start, b: end}, nil
}

// FromValueAndUncertainty returns a centered Quantity value ± uncertainty.
// It fails when uncertainty is negative or either input is not finite.
func FromValueAndUncertainty(value, uncertainty float64) (Quantity, error) {
	if !isFinite(value) || !isFinite(uncertainty) {
		return Quantity{}, domain.NewValidationError("value",
			fmt.Sprintf("%v±%v must be finite", value, uncertainty), ErrNotFinite)
	}
	if uncertainty < 0 {
		return Quantity{}, domain.NewValidationError("uncertainty",
			fmt.Sprintf("%v must not be negative", uncertainty), ErrNegativeUncertainty)
	}
	return Quantity{kind: KindCentered, a: value, b: uncertainty}, nil
}

// Exact returns a centered Quantity with zero uncertainty.
func Exact(value float64) Quantity {
	return Quantity{kind: KindCentered, a: value}
}

// MustFromBounds is like FromBounds but panics on invalid input.
// It is meant for package-level tables of literal measurements.
func MustFromBounds(start, end float64) Quantity {
	q, err := FromBounds(start, end)
	if err != nil {
		panic(fmt.Sprintf("uncertain: MustFromBounds(%v, %v): %v", start, end, err))
	}
	return q
}

// MustFromValueAndUncertainty is like FromValueAndUncertainty but panics on
// invalid input. It is meant for package-level tables of literal measurements.
func MustFromValueAndUncertainty(value, uncertainty float64) Quantity {
	q, err := FromValueAndUncertainty(value, uncertainty)
	if err != nil {
		panic(fmt.Sprintf("uncertain: MustFromValueAndUncertainty(%v, %v): %v", value, uncertainty, err))
	}
	return q
}

// Kind reports which convention q was recorded in.
func (q Quantity) Kind() Kind {
	return q.kind
}

// Minimum returns the lower bound of q.
func (q Quantity) Minimum() float64 {
	switch q.kind {
	case KindInterval:
		return q.a
	default:
		return q.a - q.b
	}
}

// Average returns the nominal value of q: the midpoint of an interval or the
// value of a centered quantity.
func (q Quantity) Average() float64 {
	switch q.kind {
	case KindInterval:
		return midpoint(q.a, q.b)
	default:
		return q.a
	}
}

// Maximum returns the upper bound of q.
func (q Quantity) Maximum() float64 {
	switch q.kind {
	case KindInterval:
		return q.b
	default:
		return q.a + q.b
	}
}

// Bounds returns Minimum and Maximum together.
func (q Quantity) Bounds() (float64, float64) {
	return q.Minimum(), q.Maximum()
}

// Value returns the nominal value used by arithmetic. It equals Average.
func (q Quantity) Value() float64 {
	return q.Average()
}

// Uncertainty returns the symmetric tolerance used by arithmetic. For an
// interval this is its half-width.
func (q Quantity) Uncertainty() float64 {
	switch q.kind {
	case KindInterval:
		return halfWidth(q.a, q.b)
	default:
		return q.b
	}
}

// IsExact reports whether q carries no uncertainty at all.
func (q Quantity) IsExact() bool {
	switch q.kind {
	case KindInterval:
		return q.a == q.b
	default:
		return q.b == 0
	}
}

// Contains reports whether x lies within [Minimum, Maximum].
func (q Quantity) Contains(x float64) bool {
	return q.Minimum() <= x && x <= q.Maximum()
}

// WidenToSymmetric converts an interval into a centered Quantity whose range
// is a superset of the original: the value is the midpoint and the
// uncertainty is the larger of the two half-widths. The conversion is lossy
// when the interval is asymmetric in floating point. Centered quantities are
// returned unchanged.
func (q Quantity) WidenToSymmetric() Quantity {
	if q.kind != KindInterval {
		return q
	}

	value := midpoint(q.a, q.b)
	uncertainty := math.Max(value-q.a, q.b-value)

	// Rounding in value±uncertainty can land one ulp inside the original
	// bounds; grow until both ends are covered.
	for value-uncertainty > q.a || value+uncertainty < q.b {
		uncertainty = math.Nextafter(uncertainty, math.Inf(1))
	}

	return Quantity{kind: KindCentered, a: value, b: uncertainty}
}

// centered returns the (value, uncertainty) reduction used by arithmetic.
func (q Quantity) centered() (float64, float64) {
	return q.Value(), q.Uncertainty()
}

// midpoint returns (a+b)/2 without overflowing for large finite bounds.
func midpoint(a, b float64) float64 {
	if m := (a + b) / 2; !math.IsInf(m, 0) {
		return m
	}
	return a/2 + b/2
}

// halfWidth returns (b-a)/2 without overflowing for large finite bounds.
func halfWidth(a, b float64) float64 {
	if h := (b - a) / 2; !math.IsInf(h, 0) {
		return h
	}
	return b/2 - a/2
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
