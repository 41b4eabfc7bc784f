package entity

// Accepted publication-year range for catalog records. Deployments have
// shipped with different upper bounds, so the range lives here as the single
// source of truth for the validator rule and the query checks.
const (
	MinPublishedYear = 2000
	MaxPublishedYear = 2030
)

// Book is a single catalog record. The ID is assigned by the store, never by
// clients.
type Book struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	Rating        int    `json:"rating"`
	PublishedYear int    `json:"published_year"`
}
