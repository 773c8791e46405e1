package book

import "github.com/marcelsud/library-admin/apperror"

var (
	ErrNotFound  = apperror.NewNotFound("book not found")
	ErrISBNTaken = apperror.NewConflict("ISBN already registered")
	// ErrAuthorNotFound is returned on create, when the referenced author is missing
	ErrAuthorNotFound = apperror.NewNotFound("author not found")
	// ErrUnknownAuthor is returned on update, where a bad reference is a client mistake
	ErrUnknownAuthor = apperror.New(apperror.Validation, "author not found")
)
