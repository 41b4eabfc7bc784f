package httpx

import (
	"encoding/json"
	"net/http"
)

// errorResponse mirrors the failure shape the handlers write: a detail field
// with a plain message.
type errorResponse struct {
	Detail string `json:"detail"`
}

// JSONError writes a failure with a plain detail message. Used by middleware
// that rejects or aborts a request before any handler runs.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{Detail: message})
}
