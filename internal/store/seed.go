package store

import "bookcatalog/internal/entity"

// SeedBooks returns the catalog's starter records. The service boots with
// these so the API is browsable out of the box.
func SeedBooks() []entity.Book {
	return []entity.Book{
		{ID: 1, Title: "Computer Science Pro", Author: "codingwithroby", Description: "A very nice book!", Rating: 5, PublishedYear: 2030},
		{ID: 2, Title: "Be Fast with FastAPI", Author: "codingwithroby", Description: "A great book!", Rating: 5, PublishedYear: 2030},
		{ID: 3, Title: "Master Endpoints", Author: "codingwithroby", Description: "A awesome book!", Rating: 5, PublishedYear: 2029},
		{ID: 4, Title: "HP1", Author: "Author 1", Description: "Book Description", Rating: 2, PublishedYear: 2028},
		{ID: 5, Title: "HP2", Author: "Author 2", Description: "Book Description", Rating: 3, PublishedYear: 2027},
		{ID: 6, Title: "HP3", Author: "Author 3", Description: "Book Description", Rating: 1, PublishedYear: 2026},
	}
}
