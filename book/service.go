package book

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/library-admin/activity"
)

type UseCase interface {
	Create(ctx context.Context, in CreateInput) (Book, error)
	List(ctx context.Context, genre string) ([]Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	Update(ctx context.Context, id string, in UpdateInput) (Book, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, params SearchParams) (Page, error)
}

// AuthorChecker reports whether an author exists, author.Reader satisfies it
type AuthorChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	Repo    Repository
	Authors AuthorChecker
	Events  activity.Publisher
}

func NewService(repo Repository, authors AuthorChecker, events activity.Publisher) *Service {
	if events == nil {
		events = activity.Discard
	}
	return &Service{
		Repo:    repo,
		Authors: authors,
		Events:  events,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	if err := in.Validate(); err != nil {
		return Book{}, err
	}
	ok, err := s.Authors.Exists(ctx, in.AuthorID)
	if err != nil {
		return Book{}, fmt.Errorf("checking author: %w", err)
	}
	if !ok {
		return Book{}, ErrAuthorNotFound
	}
	b := Book{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Description:   nullable(in.Description),
		ISBN:          nullable(in.ISBN),
		PublishedYear: in.PublishedYear,
		Genre:         nullable(in.Genre),
		Pages:         in.Pages,
		AuthorID:      in.AuthorID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, b); err != nil {
		return Book{}, fmt.Errorf("inserting book: %w", err)
	}
	s.Events.Publish(ctx, activity.BookCreated, b.ID)
	return b, nil
}

func (s *Service) List(ctx context.Context, genre string) ([]Book, error) {
	all, err := s.Repo.SelectAll(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	return all, nil
}

func (s *Service) ListByAuthor(ctx context.Context, authorID string) ([]Book, error) {
	all, err := s.Repo.SelectByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("selecting books by author: %w", err)
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	b, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

/* Update validates before touching the store
 * A rejected update leaves the stored record unchanged
 */
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	if err := in.Validate(); err != nil {
		return Book{}, err
	}
	if in.AuthorID != nil {
		ok, err := s.Authors.Exists(ctx, *in.AuthorID)
		if err != nil {
			return Book{}, fmt.Errorf("checking author: %w", err)
		}
		if !ok {
			return Book{}, ErrUnknownAuthor
		}
	}
	current, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	if err := s.Repo.Update(ctx, in.Apply(current)); err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	s.Events.Publish(ctx, activity.BookUpdated, id)
	updated, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	s.Events.Publish(ctx, activity.BookDeleted, id)
	return nil
}

/* Search counts the matches first, then fetches exactly one page
 * The two reads are not isolated from concurrent writes
 */
func (s *Service) Search(ctx context.Context, params SearchParams) (Page, error) {
	q := NewQuery(params)
	total, err := s.Repo.Count(ctx, q.Filter)
	if err != nil {
		return Page{}, fmt.Errorf("counting books: %w", err)
	}
	pagination := NewPagination(q.Page, q.Limit, total)
	// past the last page there is nothing to fetch, and Offset could overflow for huge pages
	if q.Page > pagination.TotalPages {
		return Page{Data: []Book{}, Pagination: pagination}, nil
	}
	books, err := s.Repo.Search(ctx, q)
	if err != nil {
		return Page{}, fmt.Errorf("searching books: %w", err)
	}
	if books == nil {
		books = []Book{}
	}
	return Page{
		Data:       books,
		Pagination: pagination,
	}, nil
}
