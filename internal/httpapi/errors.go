// Error response helpers, adapted from samirrijal-bilbopass's
// internal/adapters/http/errors.go (APIError + errBadRequest/errNotFound/
// errInternal) from Fiber's *fiber.Ctx to net/http's ResponseWriter, and
// mapped onto spec.md §6's error boundary table: ErrNoRouteFound → 404,
// ErrUnknownStop / schema violations → 400, everything else → 500.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evanholt/transitraptor/internal/raptor"
)

// APIError is the JSON shape of every error response this API returns.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{Status: status, Code: code, Message: message})
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errBadRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, "bad_request", msg)
}

func errNotFound(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusNotFound, "not_found", msg)
}

func errInternal(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusInternalServerError, "internal_error", msg)
}

// writeQueryError maps a facade error onto spec.md §6's error boundary:
// NoRouteFound -> 404, UnknownStopId -> 400, everything else -> 500.
func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, raptor.ErrNoRouteFound):
		errNotFound(w, "no route found")
	case errors.Is(err, raptor.ErrUnknownStop):
		errBadRequest(w, "unknown stop id")
	default:
		errInternal(w, err.Error())
	}
}
