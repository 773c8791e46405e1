package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

/* Publisher is what the catalog services depend on
 * Publishing never fails the caller: a lost feed entry must not undo a committed write
 */
type Publisher interface {
	Publish(ctx context.Context, eventType EventType, entityID string)
}

// UseCase defines the operations on the activity feed
type UseCase interface {
	Publisher
	Recent(ctx context.Context, limit int) ([]Event, error)
}

type Service struct {
	Repo   Repository
	Logger zerolog.Logger
}

// NewService creates a new activity service with dependency injection
func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		Repo:   repo,
		Logger: logger,
	}
}

// Publish appends an event to the feed, logging failures
func (s *Service) Publish(ctx context.Context, eventType EventType, entityID string) {
	event := Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, event); err != nil {
		s.Logger.Warn().
			Err(err).
			Str("event_type", eventType.String()).
			Str("entity_id", entityID).
			Msg("appending activity event")
	}
}

// Recent lists the latest events, limit is clamped to [1, MaxLimit]
func (s *Service) Recent(ctx context.Context, limit int) ([]Event, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	events, err := s.Repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading activity: %w", err)
	}
	return events, nil
}

type discard struct{}

func (discard) Publish(context.Context, EventType, string) {}

// Discard is a Publisher that drops every event
var Discard Publisher = discard{}
