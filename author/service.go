package author

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/library-admin/activity"
)

type UseCase interface {
	Create(ctx context.Context, in CreateInput) (Author, error)
	List(ctx context.Context) ([]Author, error)
	Get(ctx context.Context, id string) (Author, error)
	Update(ctx context.Context, id string, in UpdateInput) (Author, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	Repo   Repository
	Events activity.Publisher
}

func NewService(repo Repository, events activity.Publisher) *Service {
	if events == nil {
		events = activity.Discard
	}
	return &Service{
		Repo:   repo,
		Events: events,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Author, error) {
	if err := in.Validate(); err != nil {
		return Author{}, err
	}
	a := Author{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Bio:         nullable(in.Bio),
		Nationality: nullable(in.Nationality),
		BirthYear:   in.BirthYear,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, a); err != nil {
		return Author{}, fmt.Errorf("inserting author: %w", err)
	}
	s.Events.Publish(ctx, activity.AuthorCreated, a.ID)
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Author, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting authors: %w", err)
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, id string) (Author, error) {
	a, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Author{}, fmt.Errorf("selecting author: %w", err)
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Author, error) {
	if err := in.Validate(); err != nil {
		return Author{}, err
	}
	current, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Author{}, fmt.Errorf("selecting author: %w", err)
	}
	updated := in.Apply(current)
	if err := s.Repo.Update(ctx, updated); err != nil {
		return Author{}, fmt.Errorf("updating author: %w", err)
	}
	s.Events.Publish(ctx, activity.AuthorUpdated, id)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	s.Events.Publish(ctx, activity.AuthorDeleted, id)
	return nil
}
