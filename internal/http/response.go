package http

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body for every failed request: a plain message for
// lookup failures, a list of field violations for validation failures.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// JSON writes v with the given status. Success bodies are the bare record or
// sequence, no envelope.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// JSONCreated acknowledges a create with an empty 201.
func JSONCreated(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

// JSONNoContent acknowledges a mutation with an empty 204.
func JSONNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// JSONError writes a failure with a plain detail message.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Detail: message})
}

// JSONValidationError writes a 422 carrying every violated field rule.
func JSONValidationError(w http.ResponseWriter, details []ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(ErrorResponse{Detail: details})
}
