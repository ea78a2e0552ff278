package uncertain

import (
	"cmp"
	"math"
	"slices"
)

// Epsilon is the absolute tolerance used by Equal. It sits below the last
// published digit of the isotope tables (1e-11) and above float rounding
// noise on values of that size.
const Epsilon = 5e-12

// Equal reports whether q and other have the same kind and each pair of
// corresponding fields differs by less than Epsilon.
func (q Quantity) Equal(other Quantity) bool {
	if q.kind != other.kind {
		return false
	}
	return math.Abs(q.a-other.a) < Epsilon && math.Abs(q.b-other.b) < Epsilon
}

// Compare orders quantities by nominal value only, ignoring uncertainty.
// It returns -1, 0 or +1. NaN sorts before every other value.
//
// Two quantities whose ranges overlap still compare as strictly less or
// greater when their averages differ.
func (q Quantity) Compare(other Quantity) int {
	return cmp.Compare(q.Average(), other.Average())
}

// Less reports whether q sorts before other.
func (q Quantity) Less(other Quantity) bool {
	return q.Compare(other) < 0
}

// Sort sorts qs in place by nominal value. Equal averages keep their order.
func Sort(qs []Quantity) {
	slices.SortStableFunc(qs, Quantity.Compare)
}
