package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// NoGenre labels books stored without a genre.
const NoGenre = "none"

// Source is the part of a storage backend the collector reads from.
type Source interface {
	CountAuthors(ctx context.Context) (int64, error)
	CountBooks(ctx context.Context) (int64, error)
	CountBooksByGenre(ctx context.Context) (map[string]int64, error)
}

// StoreCollector implements the Collector interface on top of the catalog store
type StoreCollector struct {
	source Source
}

// NewStoreCollector creates a new catalog metrics collector
func NewStoreCollector(source Source) *StoreCollector {
	return &StoreCollector{
		source: source,
	}
}

// Collect gathers all metrics from the store
func (c *StoreCollector) Collect(ctx context.Context) (Metrics, error) {
	totals, err := c.GetTotals(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting totals: %w", err)
	}

	byGenre, err := c.GetBooksByGenre(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting books by genre: %w", err)
	}

	return Metrics{
		Totals:       totals,
		BooksByGenre: byGenre,
		Timestamp:    time.Now(),
	}, nil
}

func (c *StoreCollector) GetTotals(ctx context.Context) (Totals, error) {
	authors, err := c.source.CountAuthors(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("counting authors: %w", err)
	}
	books, err := c.source.CountBooks(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("counting books: %w", err)
	}
	return Totals{Authors: authors, Books: books}, nil
}

// GetBooksByGenre folds blank genres into NoGenre
func (c *StoreCollector) GetBooksByGenre(ctx context.Context) (map[string]int64, error) {
	counts, err := c.source.CountBooksByGenre(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting books by genre: %w", err)
	}

	byGenre := make(map[string]int64, len(counts))
	for genre, n := range counts {
		if strings.TrimSpace(genre) == "" {
			genre = NoGenre
		}
		byGenre[genre] += n
	}
	return byGenre, nil
}
