package periodic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
)

// Count is the number of known elements.
const Count = 118

// ErrUnknownElement is returned when a symbol does not name an element.
var ErrUnknownElement = errors.New("unknown element")

// Element is a chemical element identified by its atomic number.
// The zero Element is not valid.
type Element uint8

type elementRecord struct {
	symbol  string
	name    string
	group   int
	period  int
	valency []int
}

var bySymbol = func() map[string]Element {
	m := make(map[string]Element, Count)
	for e := H; e <= Og; e++ {
		m[e.Symbol()] = e
	}
	return m
}()

// ParseElement resolves an element symbol such as "Fe".
// Matching is case-sensitive; "fe" and "FE" are rejected.
func ParseElement(symbol string) (Element, error) {
	if e, ok := bySymbol[strings.TrimSpace(symbol)]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
}

// Elements returns every element in atomic-number order.
func Elements() []Element {
	out := make([]Element, Count)
	for i := range out {
		out[i] = Element(i + 1)
	}
	return out
}

// Valid reports whether e is one of the known elements.
func (e Element) Valid() bool {
	return e >= H && e <= Og
}

func (e Element) record() elementRecord {
	if !e.Valid() {
		return elementRecord{}
	}
	return elementRecords[e]
}

// Number returns the atomic number.
func (e Element) Number() int {
	return int(e)
}

// Symbol returns the one- to two-letter chemical symbol.
func (e Element) Symbol() string {
	return e.record().symbol
}

// Name returns the English element name.
func (e Element) Name() string {
	return e.record().name
}

// Group returns the IUPAC group (1-18). Lanthanides and actinides report group 3.
func (e Element) Group() int {
	return e.record().group
}

// Period returns the row of the periodic table (1-7).
func (e Element) Period() int {
	return e.record().period
}

// Valency returns the common valencies. The result is a copy.
func (e Element) Valency() []int {
	return slices.Clone(e.record().valency)
}

// String returns the element name, or Element(n) for an invalid value.
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", uint8(e))
	}
	return e.Name()
}

// Split returns the elements before and after e in atomic-number order.
func (e Element) Split() (before, after []Element) {
	if !e.Valid() {
		return nil, nil
	}
	all := Elements()
	i := int(e) - 1
	return all[:i:i], all[i+1:]
}

// StandardAtomicWeight returns the standard atomic weight Ar°(E) in the given
// precision mode. ok is false for elements without a stable isotope.
func (e Element) StandardAtomicWeight(mode Mode) (w uncertain.Quantity, ok bool) {
	switch mode {
	case Abridged:
		w, ok = abridgedWeights[e]
	case Unabridged:
		w, ok = unabridgedWeights[e]
	}
	return w, ok
}

// Isotopes returns the tabulated isotopes of e ordered by mass number.
// The result is a copy and is empty for elements without isotope data.
func (e Element) Isotopes() []Isotope {
	return slices.Clone(isotopeRecords[e])
}

// MarshalText encodes the element as its symbol.
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownElement, uint8(e))
	}
	return []byte(e.Symbol()), nil
}

// UnmarshalText decodes an element symbol.
func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func centered(value, uncertainty float64) uncertain.Quantity {
	return uncertain.MustFromValueAndUncertainty(value, uncertainty)
}

func interval(start, end float64) uncertain.Quantity {
	return uncertain.MustFromBounds(start, end)
}
