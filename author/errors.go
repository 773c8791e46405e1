package author

import "github.com/marcelsud/library-admin/apperror"

var (
	ErrNotFound   = apperror.NewNotFound("author not found")
	ErrEmailTaken = apperror.NewConflict("email already registered")
)
