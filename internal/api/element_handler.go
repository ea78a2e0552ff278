package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/periodic-api/internal/periodic"
	"github.com/phrazzld/periodic-api/internal/platform/logger"
	"github.com/phrazzld/periodic-api/internal/service"
)

// ElementHandler serves the read-only element catalog.
type ElementHandler struct {
	catalog  service.CatalogService
	defaults CatalogDefaults
	logger   *slog.Logger
}

// NewElementHandler creates a new ElementHandler.
func NewElementHandler(catalog service.CatalogService, defaults CatalogDefaults, logger *slog.Logger) *ElementHandler {
	if catalog == nil {
		panic("catalog service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ElementHandler{
		catalog:  catalog,
		defaults: defaults,
		logger:   logger.With(slog.String("component", "element_handler")),
	}
}

// Routes registers the catalog endpoints on r.
func (h *ElementHandler) Routes(r chi.Router) {
	r.Get("/elements", h.ListElements)
	r.Get("/elements/{symbol}", h.GetElement)
	r.Get("/elements/{symbol}/isotopes", h.ListIsotopes)
	r.Get("/elements/{symbol}/isotopes/{massNumber}", h.GetIsotope)
	r.Get("/quantities/{subject}", h.ListStoredQuantities)
	r.Get("/table", h.GetTable)
}

// ListElements handles GET /elements
func (h *ElementHandler) ListElements(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCatalogQuery(r, h.defaults)
	if err != nil {
		handleQueryError(w, r, err)
		return
	}

	elements := h.catalog.Elements(r.Context())
	respondWithJSON(w, r, http.StatusOK, elementsToResponse(elements, opts.mode, opts.precision))
}

// GetElement handles GET /elements/{symbol}
func (h *ElementHandler) GetElement(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCatalogQuery(r, h.defaults)
	if err != nil {
		handleQueryError(w, r, err)
		return
	}

	e, ok := h.resolveElement(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, r, http.StatusOK, elementToResponse(e, opts.mode, opts.precision))
}

// ListIsotopes handles GET /elements/{symbol}/isotopes
func (h *ElementHandler) ListIsotopes(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCatalogQuery(r, h.defaults)
	if err != nil {
		handleQueryError(w, r, err)
		return
	}

	e, ok := h.resolveElement(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, r, http.StatusOK, isotopesToResponse(e.Isotopes(), opts.precision))
}

// GetIsotope handles GET /elements/{symbol}/isotopes/{massNumber}
func (h *ElementHandler) GetIsotope(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCatalogQuery(r, h.defaults)
	if err != nil {
		handleQueryError(w, r, err)
		return
	}

	e, ok := h.resolveElement(w, r)
	if !ok {
		return
	}

	massNumber, err := strconv.Atoi(chi.URLParam(r, "massNumber"))
	if err != nil || massNumber <= 0 {
		respondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid mass number", err)
		return
	}

	iso, found := periodic.LookupIsotope(e, massNumber)
	if !found {
		HandleAPIError(w, r, ErrIsotopeNotFound, "")
		return
	}
	respondWithJSON(w, r, http.StatusOK, isotopesToResponse([]periodic.Isotope{iso}, opts.precision)[0])
}

// ListStoredQuantities handles GET /quantities/{subject}
func (h *ElementHandler) ListStoredQuantities(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCatalogQuery(r, h.defaults)
	if err != nil {
		handleQueryError(w, r, err)
		return
	}

	subject, err := pathParam(r, "subject")
	if err != nil {
		handleQueryError(w, r, err)
		return
	}

	records, err := h.catalog.StoredQuantities(r.Context(), subject)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load stored quantities")
		return
	}
	respondWithJSON(w, r, http.StatusOK, recordsToResponse(records, opts.precision))
}

// GetTable handles GET /table
func (h *ElementHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCatalogQuery(r, h.defaults)
	if err != nil {
		handleQueryError(w, r, err)
		return
	}

	layout := periodic.StandardTable()
	if opts.layout == "left-step" {
		layout = periodic.LeftStepTable()
	}
	respondWithJSON(w, r, http.StatusOK, layoutToResponse(opts.layout, layout))
}

func (h *ElementHandler) resolveElement(w http.ResponseWriter, r *http.Request) (periodic.Element, bool) {
	symbol, err := pathParam(r, "symbol")
	if err != nil {
		handleQueryError(w, r, err)
		return 0, false
	}

	e, err := h.catalog.Element(r.Context(), symbol)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("element lookup failed",
			slog.String("symbol", symbol))
		HandleAPIError(w, r, err, "Failed to resolve element")
		return 0, false
	}
	return e, true
}
