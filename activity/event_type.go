package activity

import "fmt"

// EventType names what happened to which kind of entity
type EventType int

const (
	AuthorCreated EventType = iota + 1
	AuthorUpdated
	AuthorDeleted
	BookCreated
	BookUpdated
	BookDeleted
)

// String returns the string representation of the event type
func (e EventType) String() string {
	switch e {
	case AuthorCreated:
		return "author.created"
	case AuthorUpdated:
		return "author.updated"
	case AuthorDeleted:
		return "author.deleted"
	case BookCreated:
		return "book.created"
	case BookUpdated:
		return "book.updated"
	case BookDeleted:
		return "book.deleted"
	default:
		return "unknown"
	}
}

// NewEventType creates an EventType from a string, zero when unknown
func NewEventType(str string) EventType {
	switch str {
	case "author.created":
		return AuthorCreated
	case "author.updated":
		return AuthorUpdated
	case "author.deleted":
		return AuthorDeleted
	case "book.created":
		return BookCreated
	case "book.updated":
		return BookUpdated
	case "book.deleted":
		return BookDeleted
	default:
		return 0
	}
}

// Validate checks if the event type is valid
func (e EventType) Validate() error {
	if e < AuthorCreated || e > BookDeleted {
		return fmt.Errorf("invalid event type: %d", e)
	}
	return nil
}

// MarshalJSON writes the event type as its string form
func (e EventType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.String() + `"`), nil
}
