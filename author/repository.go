package author

import "context"

type Reader interface {
	// Select returns ErrNotFound when no author has the id
	Select(ctx context.Context, id string) (Author, error)
	// SelectAll returns every author with its book count, newest first
	SelectAll(ctx context.Context) ([]Author, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type Writer interface {
	// Insert returns ErrEmailTaken when the email is already registered
	Insert(ctx context.Context, author Author) error
	Update(ctx context.Context, author Author) error
	// Delete removes the author and its books
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Reader
	Writer
}
