package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
)

type UseCase interface {
	AuthorStats(ctx context.Context, authorID string) (AuthorStats, error)
	Summary(ctx context.Context) (Summary, error)
}

// BookLister is the single read the engine needs from the book store
type BookLister interface {
	SelectByAuthor(ctx context.Context, authorID string) ([]book.Book, error)
}

type Service struct {
	Authors author.Reader
	Books   BookLister
}

func NewService(authors author.Reader, books BookLister) *Service {
	return &Service{
		Authors: authors,
		Books:   books,
	}
}

/* AuthorStats reads the author's books once and computes over that snapshot
 * An unknown author yields zero statistics and a nil name, not an error
 */
func (s *Service) AuthorStats(ctx context.Context, authorID string) (AuthorStats, error) {
	var name *string
	a, err := s.Authors.Select(ctx, authorID)
	switch {
	case err == nil:
		name = &a.Name
	case errors.Is(err, author.ErrNotFound):
		return Compute(authorID, nil, nil), nil
	default:
		return AuthorStats{}, fmt.Errorf("selecting author: %w", err)
	}

	books, err := s.Books.SelectByAuthor(ctx, authorID)
	if err != nil {
		return AuthorStats{}, fmt.Errorf("selecting books by author: %w", err)
	}
	return Compute(authorID, name, books), nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	authors, err := s.Authors.SelectAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("selecting authors: %w", err)
	}
	return Summarize(authors), nil
}
