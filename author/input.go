package author

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/marcelsud/library-admin/apperror"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateInput holds the fields accepted when registering an author
type CreateInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Bio         *string `json:"bio"`
	Nationality *string `json:"nationality"`
	BirthYear   *int    `json:"birthYear"`
}

func (in CreateInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("is required")),
		validation.Field(&in.Email,
			validation.Required.Error("is required"),
			validation.Match(emailPattern).Error("must be a valid email address"),
		),
	)
	if err != nil {
		return apperror.NewValidation(err)
	}
	return nil
}

/* UpdateInput holds a partial update
 * A nil string field keeps the stored value; BirthYear is always applied, so nil clears it
 */
type UpdateInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Bio         *string `json:"bio"`
	Nationality *string `json:"nationality"`
	BirthYear   *int    `json:"birthYear"`
}

func (in UpdateInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.NilOrNotEmpty.Error("cannot be empty")),
		validation.Field(&in.Email,
			validation.NilOrNotEmpty.Error("cannot be empty"),
			validation.Match(emailPattern).Error("must be a valid email address"),
		),
	)
	if err != nil {
		return apperror.NewValidation(err)
	}
	return nil
}

// Apply merges the update into a
func (in UpdateInput) Apply(a Author) Author {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Email != nil {
		a.Email = *in.Email
	}
	if in.Bio != nil {
		a.Bio = nullable(in.Bio)
	}
	if in.Nationality != nil {
		a.Nationality = nullable(in.Nationality)
	}
	a.BirthYear = in.BirthYear
	return a
}

// nullable maps a blank optional string to nil
func nullable(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
