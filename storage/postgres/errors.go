package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translate maps constraint violations to domain errors, anything else is returned as is
func translate(err, onUnique, onForeignKey error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case uniqueViolation:
		if onUnique != nil {
			return onUnique
		}
	case foreignKeyViolation:
		if onForeignKey != nil {
			return onForeignKey
		}
	}
	return err
}
