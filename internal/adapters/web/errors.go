package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"inventory-service/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeCreated writes a JSON response with status 201.
func writeCreated(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps the typed error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal fault: logged server-side, returned as
// a generic 500 with no internal detail.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *core.ValidationError
	var conflictErr *core.ConflictError
	var constraintErr *core.ConstraintError
	var notFoundErr *core.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, r, validationErr.Error(), "VALIDATION_ERROR", http.StatusBadRequest)
	case errors.As(err, &conflictErr):
		writeError(w, r, conflictErr.Error(), "CONFLICT", http.StatusConflict)
	case errors.As(err, &constraintErr):
		writeError(w, r, constraintErr.Error(), "CONSTRAINT_VIOLATION", http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		writeError(w, r, notFoundErr.Error(), "NOT_FOUND", http.StatusNotFound)
	default:
		log.Printf("internal error: %v [request_id=%s]", err, requestIDFromContext(r.Context()))
		writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
