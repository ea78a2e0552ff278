package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/periodic-api/internal/api/shared"
	"github.com/phrazzld/periodic-api/internal/domain"
	"github.com/phrazzld/periodic-api/internal/periodic"
)

// CatalogDefaults are the presentation settings used when a request omits
// them.
type CatalogDefaults struct {
	Mode      periodic.Mode
	Precision int
}

// catalogQuery holds the presentation query parameters shared by the
// catalog endpoints.
type catalogQuery struct {
	Mode      string `validate:"omitempty,oneof=abridged unabridged"`
	Precision *int   `validate:"omitempty,gte=-1,lte=17"`
	Layout    string `validate:"omitempty,oneof=standard left-step"`
}

type catalogOptions struct {
	mode      periodic.Mode
	precision int
	layout    string
}

// parseCatalogQuery reads mode, precision and layout from the query string,
// validates them and fills the gaps from defaults.
func parseCatalogQuery(r *http.Request, defaults CatalogDefaults) (catalogOptions, error) {
	values := r.URL.Query()
	q := catalogQuery{
		Mode:   values.Get("mode"),
		Layout: values.Get("layout"),
	}
	if raw := values.Get("precision"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return catalogOptions{}, domain.NewValidationError("precision", "must be an integer", domain.ErrInvalidFormat)
		}
		q.Precision = &p
	}

	if err := shared.ValidateRequest(&q); err != nil {
		return catalogOptions{}, err
	}

	opts := catalogOptions{mode: defaults.Mode, precision: defaults.Precision, layout: "standard"}
	if q.Mode != "" {
		mode, err := periodic.ParseMode(q.Mode)
		if err != nil {
			return catalogOptions{}, domain.NewValidationError("mode", "unknown mode", err)
		}
		opts.mode = mode
	}
	if q.Precision != nil {
		opts.precision = *q.Precision
	}
	if q.Layout != "" {
		opts.layout = q.Layout
	}
	return opts, nil
}

// pathParam returns a URL path parameter, or a validation error when it is empty.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if v == "" {
		return "", domain.NewValidationError(name, "is required", nil)
	}
	return v, nil
}

// handleQueryError writes a 400 for a rejected query string.
func handleQueryError(w http.ResponseWriter, r *http.Request, err error) {
	msg := shared.SanitizeValidationError(err)
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		msg = "Invalid " + ve.Field + ": " + ve.Message
	}
	respondWithErrorAndLog(w, r, http.StatusBadRequest, msg, err)
}

// respondWithErrorAndLog is a small wrapper around shared.RespondWithErrorAndLog
func respondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// respondWithJSON is a small wrapper around shared.RespondWithJSON
func respondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	shared.RespondWithJSON(w, r, status, data)
}
