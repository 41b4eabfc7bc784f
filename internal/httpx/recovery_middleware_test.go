package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecoveryMiddleware_PassThrough(t *testing.T) {
	handler := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected handler status to pass through, got %d", w.Code)
	}
}

func TestRecoveryMiddleware_Panic(t *testing.T) {
	handler := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after panic, got %d", w.Code)
	}

	var response struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Detail != "internal server error" {
		t.Errorf("Expected internal server error detail, got %q", response.Detail)
	}
}

func TestRecoveryMiddleware_PanicAfterHeadersSent(t *testing.T) {
	// Composed under the access log wrapper, a panic after the handler has
	// already responded must not write a second status line.
	handler := AccessLogMiddleware(RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		panic("after write")
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected original 200 to stand, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected no error body after headers sent, got %s", w.Body.String())
	}
}
