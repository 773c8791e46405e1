package apperror

import (
	"fmt"
	"net/http"
)

/* Kind classifies a failure so the transport layer can map it
 * without inspecting store-specific error codes
 */
type Kind int

const (
	Internal Kind = iota + 1
	NotFound
	Conflict
	Validation
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Validation:
		return "validation"
	default:
		return "unknown"
	}
}

// NewKind creates a Kind from a string
func NewKind(str string) Kind {
	switch str {
	case "not_found":
		return NotFound
	case "conflict":
		return Conflict
	case "validation":
		return Validation
	default:
		return Internal
	}
}

// Validate checks if the kind is valid
func (k Kind) Validate() error {
	if k < Internal || k > Validation {
		return fmt.Errorf("invalid kind: %d", k)
	}
	return nil
}

// HTTPStatus maps the kind to a response status code
func (k Kind) HTTPStatus() int {
	switch k {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
