// Package rest exposes the catalog over HTTP. It owns request decoding,
// response shaping and the translation of catalog errors to status
// codes; all listing semantics live in internal/catalog.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"realty/internal/catalog"
	"realty/pkg/model"
)

type Handler struct {
	catalog *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{catalog: svc}
}

// errorResponse is the error body shape for every failure status.
type errorResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with proper error handling.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeServiceError maps catalog errors to statuses: validation
// failures are 400, everything else is an internal error.
func writeServiceError(w http.ResponseWriter, err error) {
	if model.IsValidation(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Error("Request failed", "error", err)
	writeError(w, http.StatusInternalServerError,
		fmt.Sprintf("An unexpected error occurred: %s", err.Error()))
}

// decodeQuery populates dst from the URL query string, ignoring unknown
// keys.
func decodeQuery(r *http.Request, dst interface{}) error {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder.Decode(dst, r.URL.Query())
}

// queryErrorMessage names the first offending parameter when possible.
func queryErrorMessage(err error) string {
	var multi schema.MultiError
	if errors.As(err, &multi) {
		for field := range multi {
			return fmt.Sprintf("Invalid value for parameter '%s'", field)
		}
	}
	return "Invalid query parameters"
}

// bodyErrorMessage produces a field-qualified message for malformed
// JSON bodies, e.g. a string where a number is expected.
func bodyErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "unknown"
		}
		return fmt.Sprintf("Invalid value for field '%s'. Expected %s", field, typeErr.Type)
	}
	return "Invalid request format"
}
