package book

import (
	"time"

	"github.com/marcelsud/library-admin/author"
)

/* Book represents a title in the catalog
 * No tags: the transport layer owns the wire format
 */
type Book struct {
	ID            string
	Title         string
	Description   *string
	ISBN          *string
	PublishedYear *int
	Genre         *string
	Pages         *int
	AuthorID      string
	CreatedAt     time.Time
	// Author is set by queries that join the owning author
	Author *author.Author
}
