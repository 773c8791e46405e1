package author

import "time"

/* Author represents a writer in the catalog
 * No tags: the transport layer owns the wire format
 */
type Author struct {
	ID          string
	Name        string
	Email       string
	Bio         *string
	Nationality *string
	BirthYear   *int
	CreatedAt   time.Time
	// BookCount is filled by read queries, it is never written
	BookCount int
}
