package book

import "context"

/* Small interfaces, composed into Repository
 * Every query that returns books joins the owning author unless noted
 */

type Reader interface {
	Select(ctx context.Context, id string) (Book, error)
	// SelectAll lists books ordered by published year, newest first, genre "" means all
	SelectAll(ctx context.Context, genre string) ([]Book, error)
	// SelectByAuthor lists an author's books ordered by published year, newest first, without the author
	SelectByAuthor(ctx context.Context, authorID string) ([]Book, error)
}

// Searcher runs the two halves of a paginated search
type Searcher interface {
	Count(ctx context.Context, filter Filter) (int, error)
	Search(ctx context.Context, q Query) ([]Book, error)
}

type Writer interface {
	// Insert returns ErrISBNTaken on a duplicate ISBN and ErrAuthorNotFound on a dangling author
	Insert(ctx context.Context, book Book) error
	Update(ctx context.Context, book Book) error
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Reader
	Searcher
	Writer
}
