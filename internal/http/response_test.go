package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookcatalog/internal/entity"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	book := entity.Book{
		ID:            1,
		Title:         "Computer Science Pro",
		Author:        "codingwithroby",
		Description:   "A very nice book!",
		Rating:        5,
		PublishedYear: 2030,
	}

	JSON(w, http.StatusOK, book)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var decoded entity.Book
	if err := json.NewDecoder(w.Body).Decode(&decoded); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if decoded != book {
		t.Errorf("Expected %+v, got %+v", book, decoded)
	}
}

func TestJSON_WireFieldNames(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, entity.Book{ID: 1, PublishedYear: 2030})

	body := w.Body.String()
	for _, key := range []string{`"id"`, `"title"`, `"author"`, `"description"`, `"rating"`, `"published_year"`} {
		if !strings.Contains(body, key) {
			t.Errorf("Expected body to contain %s, got %s", key, body)
		}
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	JSONError(w, http.StatusNotFound, "Item not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var response struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Detail != "Item not found" {
		t.Errorf("Expected detail %q, got %q", "Item not found", response.Detail)
	}
}

func TestJSONValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	details := []ValidationError{
		{Field: "title", Message: "Title is required"},
		{Field: "rating", Message: "Rating must be at most 5"},
	}

	JSONValidationError(w, details)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", w.Code)
	}

	var response struct {
		Detail []ValidationError `json:"detail"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Detail) != 2 {
		t.Fatalf("Expected 2 error details, got %d", len(response.Detail))
	}
	if response.Detail[0].Field != "title" {
		t.Errorf("Expected first detail field title, got %s", response.Detail[0].Field)
	}
}

func TestJSONCreated(t *testing.T) {
	w := httptest.NewRecorder()

	JSONCreated(w)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %s", w.Body.String())
	}
}

func TestJSONNoContent(t *testing.T) {
	w := httptest.NewRecorder()

	JSONNoContent(w)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %s", w.Body.String())
	}
}
