package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"trade-ledger/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
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

// writeDomainError maps a core error kind onto an HTTP status and a
// machine-readable code. Store internals never reach the client: StoreError
// messages are replaced by a generic phrase, and the Retry-After hint marks
// them as retryable.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Error:     vErr.Message,
			Code:      "VALIDATION_ERROR",
			Field:     vErr.Field,
			RequestID: requestIDFromContext(r.Context()),
		})
		return
	}

	var nfErr *core.NotFoundError
	if errors.As(err, &nfErr) {
		writeError(w, r, nfErr.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}

	var sErr *core.StoreError
	if errors.As(err, &sErr) {
		w.Header().Set("Retry-After", "5")
		if sErr.Timeout {
			writeError(w, r, "the request timed out, please retry", "STORE_TIMEOUT", http.StatusServiceUnavailable)
			return
		}
		writeError(w, r, "the record store is temporarily unavailable", "STORE_UNAVAILABLE", http.StatusServiceUnavailable)
		return
	}

	var aErr *core.AdvisoryError
	if errors.As(err, &aErr) {
		writeError(w, r, "the advisory service is unavailable", "ADVISORY_UNAVAILABLE", http.StatusBadGateway)
		return
	}

	writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
