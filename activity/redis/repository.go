package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/marcelsud/library-admin/activity"
	"github.com/redis/go-redis/v9"
)

/* Redis Streams implementation of activity.Repository
 * Every event is one stream entry, the stream is trimmed to an approximate max length
 */

const (
	StreamKey     = "library:activity"
	DefaultMaxLen = 10000
)

type Repository struct {
	client *redis.Client
	maxLen int64
}

// NewRepository creates a new Redis repository
func NewRepository(addr, password string, db int, maxLen int64) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	return &Repository{
		client: client,
		maxLen: maxLen,
	}, nil
}

// Append adds the event to the activity stream
func (r *Repository) Append(ctx context.Context, event activity.Event) error {
	_, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: r.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"event_id":    event.ID,
			"type":        event.Type.String(),
			"entity_id":   event.EntityID,
			"occurred_at": event.OccurredAt.UnixMilli(),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("adding to stream: %w", err)
	}
	return nil
}

// Recent reads the newest entries of the stream
func (r *Repository) Recent(ctx context.Context, limit int) ([]activity.Event, error) {
	msgs, err := r.client.XRevRangeN(ctx, StreamKey, "+", "-", int64(limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}

	events := make([]activity.Event, 0, len(msgs))
	for _, msg := range msgs {
		events = append(events, parseEvent(msg.Values))
	}
	return events, nil
}

// Close closes the Redis connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close()
}

func parseEvent(values map[string]interface{}) activity.Event {
	return activity.Event{
		ID:         stringValue(values["event_id"]),
		Type:       activity.NewEventType(stringValue(values["type"])),
		EntityID:   stringValue(values["entity_id"]),
		OccurredAt: time.UnixMilli(parseInt64(stringValue(values["occurred_at"]))).UTC(),
	}
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
