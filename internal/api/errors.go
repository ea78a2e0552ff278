package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/periodic-api/internal/domain"
	"github.com/phrazzld/periodic-api/internal/periodic"
	"github.com/phrazzld/periodic-api/internal/service"
	"github.com/phrazzld/periodic-api/internal/store"
)

// ErrIsotopeNotFound is returned when an element has no isotope with the
// requested mass number.
var ErrIsotopeNotFound = errors.New("isotope not found")

// MapErrorToStatusCode maps domain and service errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, service.ErrElementNotFound),
		errors.Is(err, periodic.ErrUnknownElement),
		errors.Is(err, service.ErrQuantityNotFound),
		errors.Is(err, ErrIsotopeNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. Raw error
// text never reaches the response body.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrElementNotFound), errors.Is(err, periodic.ErrUnknownElement):
		return "Element not found"
	case errors.Is(err, ErrIsotopeNotFound):
		return "Isotope not found"
	case errors.Is(err, service.ErrQuantityNotFound), errors.Is(err, store.ErrNotFound):
		return "Quantity not found"
	case errors.Is(err, service.ErrStoreUnavailable):
		return "Quantity store is not configured"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status code and safe message for err and logs
// the underlying error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		msg = defaultMsg
	}
	respondWithErrorAndLog(w, r, status, msg, err)
}
