package usecase

import (
	"bookcatalog/internal/entity"
	"context"
	"errors"
)

// ErrNotFound is returned when no record matches the requested ID.
var ErrNotFound = errors.New("item not found")

// BookRepository defines the contract for the book store. Inputs are assumed
// to be validated upstream; ErrNotFound is the only error the catalog's own
// store produces.
type BookRepository interface {
	// List returns every book in insertion order.
	List(ctx context.Context) ([]entity.Book, error)
	// GetByID returns the unique book with the given ID.
	GetByID(ctx context.Context, id int) (entity.Book, error)
	// ListByRating returns the books with the given rating, in insertion order.
	ListByRating(ctx context.Context, rating int) ([]entity.Book, error)
	// ListByYear returns the books published in the given year, in insertion order.
	ListByYear(ctx context.Context, year int) ([]entity.Book, error)
	// Create stores a validated candidate under a freshly assigned ID and
	// returns the stored record.
	Create(ctx context.Context, book entity.Book) (entity.Book, error)
	// Update replaces the book whose ID matches book.ID, overwriting every field.
	Update(ctx context.Context, book entity.Book) error
	// Delete removes the book with the given ID.
	Delete(ctx context.Context, id int) error
}
