package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// bookRequest is the untrusted payload for create and update. A candidate
// record is only built from it after ValidateStruct reports no violations.
type bookRequest struct {
	// ID is not needed on create; on update it selects the record to replace.
	ID            int    `json:"id"`
	Title         string `json:"title" validate:"required,min=3" example:"A new book"`
	Author        string `json:"author" validate:"required,min=1" example:"codingwithroby"`
	Description   string `json:"description" validate:"required,min=1,max=100" example:"A new description of a book"`
	Rating        int    `json:"rating" validate:"gte=1,lte=5" example:"5"`
	PublishedYear int    `json:"published_year" validate:"published_year" example:"2029"`
}

// @Summary List books
// @Description Get all books in insertion order, optionally narrowed to an exact rating
// @Tags books
// @Produce json
// @Param rating query int false "Filter by rating (1-5)"
// @Success 200 {array} entity.Book
// @Failure 422 {object} ErrorResponse
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 1 || rating > 5 {
			JSONValidationError(w, []ValidationError{
				{Field: "rating", Message: "rating must be between 1 and 5"},
			})
			return
		}
		books, err := h.repo.ListByRating(ctx, rating)
		if err != nil {
			JSONError(w, http.StatusInternalServerError, "server error")
			return
		}
		JSON(w, http.StatusOK, books)
		return
	}

	books, err := h.repo.List(ctx)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	JSON(w, http.StatusOK, books)
}

// @Summary Get book by ID
// @Description Get a single book by its numeric ID
// @Tags books
// @Produce json
// @Param id path int true "Book ID" minimum(1)
// @Success 200 {object} entity.Book
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := bookIDFromPath(w, r)
	if !ok {
		return
	}

	book, err := h.repo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Item not found")
		default:
			JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}
	JSON(w, http.StatusOK, book)
}

// @Summary List books by publication year
// @Description Get all books published in the given year
// @Tags books
// @Produce json
// @Param year query int true "Publication year" minimum(2000) maximum(2030)
// @Success 200 {array} entity.Book
// @Failure 422 {object} ErrorResponse
// @Router /books/publish [get]
func (h *BookHandler) ListByYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query().Get("year")
	if raw == "" {
		JSONValidationError(w, []ValidationError{
			{Field: "year", Message: "year is required"},
		})
		return
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < entity.MinPublishedYear || year > entity.MaxPublishedYear {
		JSONValidationError(w, []ValidationError{
			{Field: "year", Message: fmt.Sprintf("year must be between %d and %d", entity.MinPublishedYear, entity.MaxPublishedYear)},
		})
		return
	}

	books, err := h.repo.ListByYear(ctx, year)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	JSON(w, http.StatusOK, books)
}

// @Summary Create book
// @Description Validate a candidate book and store it under a server-assigned ID
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookRequest true "Book candidate (id is ignored)"
// @Success 201 "created"
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /create-book [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.Description = strings.TrimSpace(req.Description)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	candidate := entity.Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Rating:        req.Rating,
		PublishedYear: req.PublishedYear,
	}
	if _, err := h.repo.Create(ctx, candidate); err != nil {
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	JSONCreated(w)
}

// @Summary Update book
// @Description Replace the book whose ID matches the payload, overwriting every field
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookRequest true "Full record including id"
// @Success 204 "updated"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /books [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.Description = strings.TrimSpace(req.Description)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	book := entity.Book{
		ID:            req.ID,
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Rating:        req.Rating,
		PublishedYear: req.PublishedYear,
	}
	if err := h.repo.Update(ctx, book); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Item not found")
		default:
			JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}
	JSONNoContent(w)
}

// @Summary Delete book
// @Description Remove the book with the given ID
// @Tags books
// @Produce json
// @Param id path int true "Book ID" minimum(1)
// @Success 204 "deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := bookIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Item not found")
		default:
			JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}
	JSONNoContent(w)
}

// bookIDFromPath extracts the {id} segment of /books/{id}. Anything that is
// not a lone positive integer segment is rejected before the store is
// consulted; the response has already been written when ok is false.
func bookIDFromPath(w http.ResponseWriter, r *http.Request) (id int, ok bool) {
	const prefix = "/books/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return 0, false
	}
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		http.NotFound(w, r)
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		JSONValidationError(w, []ValidationError{
			{Field: "id", Message: "id must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}
