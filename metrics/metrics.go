package metrics

import (
	"context"
	"time"
)

// Metrics is a point-in-time snapshot of the catalog.
type Metrics struct {
	// Totals holds the number of stored authors and books
	Totals Totals `json:"totals"`

	// BooksByGenre maps a genre to its number of books, books without one count under "none"
	BooksByGenre map[string]int64 `json:"books_by_genre"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Totals counts the catalog entities.
type Totals struct {
	Authors int64 `json:"authors"`
	Books   int64 `json:"books"`
}

// Collector defines the interface for collecting catalog metrics.
type Collector interface {
	// Collect gathers every metric at once
	Collect(ctx context.Context) (Metrics, error)

	// GetTotals returns the author and book counts
	GetTotals(ctx context.Context) (Totals, error)

	// GetBooksByGenre returns the book count per genre
	GetBooksByGenre(ctx context.Context) (map[string]int64, error)
}
