package periodic

import (
	"fmt"

	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
)

// Isotope is one nuclide of an element.
type Isotope struct {
	element        Element
	massNumber     int
	mass           uncertain.Quantity
	composition    uncertain.Quantity
	hasComposition bool
}

func init() {
	for e, isotopes := range isotopeRecords {
		for i := range isotopes {
			isotopes[i].element = e
		}
	}
}

func massOnly(massNumber int, mass uncertain.Quantity) Isotope {
	return Isotope{massNumber: massNumber, mass: mass}
}

func withAbundance(massNumber int, mass, composition uncertain.Quantity) Isotope {
	return Isotope{massNumber: massNumber, mass: mass, composition: composition, hasComposition: true}
}

// Element returns the element this isotope belongs to.
func (i Isotope) Element() Element {
	return i.element
}

// MassNumber returns the number of nucleons.
func (i Isotope) MassNumber() int {
	return i.massNumber
}

// RelativeAtomicMass returns Ar(iE).
func (i Isotope) RelativeAtomicMass() uncertain.Quantity {
	return i.mass
}

// IsotopicComposition returns the representative mole fraction of this isotope
// in natural samples. ok is false when no abundance has been measured.
func (i Isotope) IsotopicComposition() (uncertain.Quantity, bool) {
	return i.composition, i.hasComposition
}

// String returns the isotope in symbol-mass notation, for example "C-14".
func (i Isotope) String() string {
	return fmt.Sprintf("%s-%d", i.element.Symbol(), i.massNumber)
}

// LookupIsotope finds the isotope of e with the given mass number.
func LookupIsotope(e Element, massNumber int) (Isotope, bool) {
	for _, iso := range isotopeRecords[e] {
		if iso.massNumber == massNumber {
			return iso, true
		}
	}
	return Isotope{}, false
}
