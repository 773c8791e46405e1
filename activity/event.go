package activity

import "time"

/* Event records a mutation of a catalog entity
 * Uses value semantics as it represents data, not behavior
 */
type Event struct {
	ID         string
	Type       EventType
	EntityID   string
	OccurredAt time.Time
}
