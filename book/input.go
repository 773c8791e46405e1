package book

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/marcelsud/library-admin/apperror"
)

type CreateInput struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	ISBN          *string `json:"isbn"`
	PublishedYear *int    `json:"publishedYear"`
	Genre         *string `json:"genre"`
	Pages         *int    `json:"pages"`
	AuthorID      string  `json:"authorId"`
}

func (in CreateInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required.Error("is required")),
		validation.Field(&in.AuthorID, validation.Required.Error("is required")),
		validation.Field(&in.Pages, validation.By(Positive)),
	)
	if err != nil {
		return apperror.NewValidation(err)
	}
	return nil
}

// UpdateInput holds a partial update, nil fields keep the stored value
type UpdateInput struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	ISBN          *string `json:"isbn"`
	PublishedYear *int    `json:"publishedYear"`
	Genre         *string `json:"genre"`
	Pages         *int    `json:"pages"`
	AuthorID      *string `json:"authorId"`
}

func (in UpdateInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.NilOrNotEmpty.Error("must be at least 3 characters"),
			validation.Length(3, 0).Error("must be at least 3 characters"),
		),
		validation.Field(&in.AuthorID, validation.NilOrNotEmpty.Error("cannot be empty")),
		validation.Field(&in.Pages, validation.By(Positive)),
	)
	if err != nil {
		return apperror.NewValidation(err)
	}
	return nil
}

// Apply merges the update into b
func (in UpdateInput) Apply(b Book) Book {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Description != nil {
		b.Description = nullable(in.Description)
	}
	if in.ISBN != nil {
		b.ISBN = nullable(in.ISBN)
	}
	if in.PublishedYear != nil {
		b.PublishedYear = in.PublishedYear
	}
	if in.Genre != nil {
		b.Genre = nullable(in.Genre)
	}
	if in.Pages != nil {
		b.Pages = in.Pages
	}
	if in.AuthorID != nil && *in.AuthorID != b.AuthorID {
		b.AuthorID = *in.AuthorID
		b.Author = nil
	}
	return b
}

// Positive rejects a present count below 1, zero included, unlike validation.Min which skips zero
func Positive(value interface{}) error {
	p, _ := value.(*int)
	if p != nil && *p < 1 {
		return errors.New("must be greater than 0")
	}
	return nil
}

func nullable(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
