package http

import (
	"strings"
	"testing"

	"bookcatalog/internal/entity"
)

func validBookRequest() bookRequest {
	return bookRequest{
		Title:         "A new book",
		Author:        "codingwithroby",
		Description:   "A new description of a book",
		Rating:        5,
		PublishedYear: 2029,
	}
}

func findError(errors []ValidationError, field string) (ValidationError, bool) {
	for _, err := range errors {
		if err.Field == field {
			return err, true
		}
	}
	return ValidationError{}, false
}

func TestValidateStruct_ValidInput(t *testing.T) {
	errors := ValidateStruct(validBookRequest())
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %d: %v", len(errors), errors)
	}
}

func TestValidateStruct_BoundaryValues(t *testing.T) {
	req := validBookRequest()
	req.Title = "abc"
	req.Author = "a"
	req.Description = strings.Repeat("d", 100)
	req.Rating = 1
	req.PublishedYear = entity.MinPublishedYear

	if errors := ValidateStruct(req); len(errors) != 0 {
		t.Errorf("Expected lower bounds to pass, got %v", errors)
	}

	req.Rating = 5
	req.PublishedYear = entity.MaxPublishedYear
	if errors := ValidateStruct(req); len(errors) != 0 {
		t.Errorf("Expected upper bounds to pass, got %v", errors)
	}
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	errors := ValidateStruct(bookRequest{})
	if len(errors) == 0 {
		t.Fatal("Expected validation errors for empty request")
	}

	for _, field := range []string{"title", "author", "description"} {
		err, ok := findError(errors, field)
		if !ok {
			t.Errorf("Expected %s error, got %v", field, errors)
			continue
		}
		if !strings.Contains(err.Message, "required") {
			t.Errorf("Expected %s required message, got %q", field, err.Message)
		}
	}
}

func TestValidateStruct_TitleLength(t *testing.T) {
	req := validBookRequest()
	req.Title = "ab"

	errors := ValidateStruct(req)
	err, ok := findError(errors, "title")
	if !ok {
		t.Fatalf("Expected title error, got %v", errors)
	}
	if !strings.Contains(err.Message, "at least 3") {
		t.Errorf("Expected minimum length message, got %q", err.Message)
	}
}

func TestValidateStruct_DescriptionLength(t *testing.T) {
	req := validBookRequest()
	req.Description = strings.Repeat("d", 101)

	errors := ValidateStruct(req)
	err, ok := findError(errors, "description")
	if !ok {
		t.Fatalf("Expected description error, got %v", errors)
	}
	if !strings.Contains(err.Message, "at most 100") {
		t.Errorf("Expected maximum length message, got %q", err.Message)
	}
}

func TestValidateStruct_RatingRange(t *testing.T) {
	testCases := []struct {
		rating int
		valid  bool
	}{
		{1, true},
		{3, true},
		{5, true},
		{0, false},
		{6, false},
	}

	for _, tc := range testCases {
		req := validBookRequest()
		req.Rating = tc.rating

		errors := ValidateStruct(req)
		_, hasRatingError := findError(errors, "rating")

		if tc.valid && hasRatingError {
			t.Errorf("Rating %d should be valid but got error", tc.rating)
		}
		if !tc.valid && !hasRatingError {
			t.Errorf("Rating %d should be invalid but no error", tc.rating)
		}
	}
}

func TestValidateStruct_PublishedYearRange(t *testing.T) {
	testCases := []struct {
		year  int
		valid bool
	}{
		{entity.MinPublishedYear, true},
		{2015, true},
		{entity.MaxPublishedYear, true},
		{entity.MinPublishedYear - 1, false},
		{entity.MaxPublishedYear + 1, false},
		{0, false},
	}

	for _, tc := range testCases {
		req := validBookRequest()
		req.PublishedYear = tc.year

		errors := ValidateStruct(req)
		err, hasYearError := findError(errors, "publishedYear")

		if tc.valid && hasYearError {
			t.Errorf("Year %d should be valid but got error", tc.year)
		}
		if !tc.valid {
			if !hasYearError {
				t.Errorf("Year %d should be invalid but no error", tc.year)
			} else if !strings.Contains(err.Message, "between 2000 and 2030") {
				t.Errorf("Expected year range message, got %q", err.Message)
			}
		}
	}
}

func TestValidateStruct_ReportsAllViolations(t *testing.T) {
	req := validBookRequest()
	req.Title = "ab"
	req.Rating = 9
	req.PublishedYear = 1999

	errors := ValidateStruct(req)
	if len(errors) != 3 {
		t.Fatalf("Expected 3 validation errors, got %d: %v", len(errors), errors)
	}
	for _, field := range []string{"title", "rating", "publishedYear"} {
		if _, ok := findError(errors, field); !ok {
			t.Errorf("Expected %s error, got %v", field, errors)
		}
	}
}
