// Package shared holds the response helpers every HTTP handler uses, so
// error bodies and JSON encoding stay uniform across modules.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "hesabu/pkg/domain-errors"
)

// errorBody is the uniform error response shape.
type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// WriteJSON encodes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps a domain error to its HTTP status and writes the uniform
// error body. Non-domain errors become opaque 500s.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		WriteJSON(w, dErrors.ToHTTPStatus(domainErr.Code), errorBody{
			Error:       string(domainErr.Code),
			Description: domainErr.Message,
		})
		return
	}
	WriteJSON(w, http.StatusInternalServerError, errorBody{
		Error:       string(dErrors.CodeInternal),
		Description: "internal server error",
	})
}
