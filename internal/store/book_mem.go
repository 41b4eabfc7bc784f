package store

// Repository implementation (in-memory)

import (
	"context"
	"sync"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
)

// BookMem keeps the catalog in an ordered slice guarded by a mutex. The
// collection lives for the lifetime of the process; handlers never touch it
// except through these methods. net/http serves requests concurrently, so
// every method takes the lock even though single operations are cheap.
type BookMem struct {
	mu    sync.RWMutex
	books []entity.Book
}

// NewBookMem constructs a repository pre-populated with the provided books.
// The seed slice is copied; callers keep no handle into the store's state.
func NewBookMem(seed []entity.Book) *BookMem {
	r := &BookMem{
		books: make([]entity.Book, len(seed)),
	}
	copy(r.books, seed)
	return r
}

// List returns every book in insertion order.
func (r *BookMem) List(_ context.Context) ([]entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Book, len(r.books))
	copy(result, r.books)
	return result, nil
}

// GetByID returns the book with the given ID, or usecase.ErrNotFound.
func (r *BookMem) GetByID(_ context.Context, id int) (entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, usecase.ErrNotFound
}

// ListByRating returns the books whose rating equals the argument, in
// insertion order. No match is an empty result, not an error.
func (r *BookMem) ListByRating(_ context.Context, rating int) ([]entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Book, 0)
	for _, b := range r.books {
		if b.Rating == rating {
			result = append(result, b)
		}
	}
	return result, nil
}

// ListByYear returns the books published in the given year, in insertion
// order. No match is an empty result, not an error.
func (r *BookMem) ListByYear(_ context.Context, year int) ([]entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Book, 0)
	for _, b := range r.books {
		if b.PublishedYear == year {
			result = append(result, b)
		}
	}
	return result, nil
}

// Create assigns the next free ID and appends the book. The ID is one more
// than the highest ID currently stored, not one more than the trailing
// element's: after deletions those can differ, and the trailing-element rule
// would hand out colliding IDs.
func (r *BookMem) Create(_ context.Context, book entity.Book) (entity.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book.ID = r.nextID()
	r.books = append(r.books, book)
	return book, nil
}

// nextID computes the ID for a new record: 1 for an empty collection,
// otherwise the true maximum existing ID plus one. Callers must hold the
// write lock.
func (r *BookMem) nextID() int {
	maxID := 0
	for _, b := range r.books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}

// Update replaces the book whose ID matches book.ID, overwriting all fields
// and keeping its position. Returns usecase.ErrNotFound when no ID matches,
// leaving the collection untouched.
func (r *BookMem) Update(_ context.Context, book entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID == book.ID {
			r.books[i] = book
			return nil
		}
	}
	return usecase.ErrNotFound
}

// Delete removes the book with the given ID. IDs are unique, so at most one
// record can match.
func (r *BookMem) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return usecase.ErrNotFound
}
