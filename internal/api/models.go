package api

import (
	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
	"github.com/phrazzld/periodic-api/internal/periodic"
	"github.com/phrazzld/periodic-api/internal/store"
)

// QuantityResponse renders an uncertain quantity. Quantity carries the
// tagged-union form; the remaining fields are derived from it.
type QuantityResponse struct {
	Quantity uncertain.Quantity `json:"quantity"`
	Kind     string             `json:"kind"`
	Text     string             `json:"text"`
	Minimum  float64            `json:"minimum"`
	Average  float64            `json:"average"`
	Maximum  float64            `json:"maximum"`
}

// ElementResponse is the JSON form of an element. StandardAtomicWeight is
// omitted for elements without a tabulated weight.
type ElementResponse struct {
	Number               int               `json:"number"`
	Symbol               string            `json:"symbol"`
	Name                 string            `json:"name"`
	Group                int               `json:"group"`
	Period               int               `json:"period"`
	Valency              []int             `json:"valency"`
	Mode                 string            `json:"mode"`
	StandardAtomicWeight *QuantityResponse `json:"standard_atomic_weight,omitempty"`
}

// IsotopeResponse is the JSON form of an isotope.
type IsotopeResponse struct {
	Symbol              string            `json:"symbol"`
	MassNumber          int               `json:"mass_number"`
	RelativeAtomicMass  QuantityResponse  `json:"relative_atomic_mass"`
	IsotopicComposition *QuantityResponse `json:"isotopic_composition,omitempty"`
}

// StoredQuantityResponse is the JSON form of a persisted quantity.
type StoredQuantityResponse struct {
	Subject  string           `json:"subject"`
	Property string           `json:"property"`
	Mode     string           `json:"mode,omitempty"`
	Value    QuantityResponse `json:"value"`
}

// TableResponse is a periodic table grid. Empty cells are empty strings.
type TableResponse struct {
	Layout string     `json:"layout"`
	Rows   [][]string `json:"rows"`
}

func quantityToResponse(q uncertain.Quantity, precision int) QuantityResponse {
	return QuantityResponse{
		Quantity: q,
		Kind:     q.Kind().String(),
		Text:     q.Text(precision),
		Minimum:  q.Minimum(),
		Average:  q.Average(),
		Maximum:  q.Maximum(),
	}
}

func optionalQuantity(q uncertain.Quantity, ok bool, precision int) *QuantityResponse {
	if !ok {
		return nil
	}
	resp := quantityToResponse(q, precision)
	return &resp
}

func elementToResponse(e periodic.Element, mode periodic.Mode, precision int) ElementResponse {
	w, ok := e.StandardAtomicWeight(mode)
	return ElementResponse{
		Number:               e.Number(),
		Symbol:               e.Symbol(),
		Name:                 e.Name(),
		Group:                e.Group(),
		Period:               e.Period(),
		Valency:              e.Valency(),
		Mode:                 mode.String(),
		StandardAtomicWeight: optionalQuantity(w, ok, precision),
	}
}

func elementsToResponse(elements []periodic.Element, mode periodic.Mode, precision int) []ElementResponse {
	resp := make([]ElementResponse, 0, len(elements))
	for _, e := range elements {
		resp = append(resp, elementToResponse(e, mode, precision))
	}
	return resp
}

func isotopesToResponse(isotopes []periodic.Isotope, precision int) []IsotopeResponse {
	resp := make([]IsotopeResponse, 0, len(isotopes))
	for _, iso := range isotopes {
		c, ok := iso.IsotopicComposition()
		resp = append(resp, IsotopeResponse{
			Symbol:              iso.String(),
			MassNumber:          iso.MassNumber(),
			RelativeAtomicMass:  quantityToResponse(iso.RelativeAtomicMass(), precision),
			IsotopicComposition: optionalQuantity(c, ok, precision),
		})
	}
	return resp
}

func recordsToResponse(records []store.QuantityRecord, precision int) []StoredQuantityResponse {
	resp := make([]StoredQuantityResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, StoredQuantityResponse{
			Subject:  r.Subject,
			Property: r.Property,
			Mode:     r.Mode,
			Value:    quantityToResponse(r.Value, precision),
		})
	}
	return resp
}

func layoutToResponse(name string, layout periodic.Layout) TableResponse {
	rows := make([][]string, len(layout))
	for i, row := range layout {
		cells := make([]string, len(row))
		for j, e := range row {
			if e.Valid() {
				cells[j] = e.Symbol()
			}
		}
		rows[i] = cells
	}
	return TableResponse{Layout: name, Rows: rows}
}
