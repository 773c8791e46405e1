package activity

import "context"

// Reader provides read operations for the activity feed
type Reader interface {
	// Recent returns at most limit events, newest first
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// Writer provides write operations for the activity feed
type Writer interface {
	Append(ctx context.Context, event Event) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}

// NopRepository discards events, used when no feed backend is configured
type NopRepository struct{}

func (NopRepository) Append(context.Context, Event) error { return nil }

func (NopRepository) Recent(context.Context, int) ([]Event, error) { return []Event{}, nil }

func (NopRepository) Close(context.Context) error { return nil }
