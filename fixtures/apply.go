package fixtures

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-admin/apperror"
	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
)

// Result counts what Apply created and what already existed
type Result struct {
	Authors        int
	Books          int
	SkippedAuthors int
	SkippedBooks   int
}

// Apply creates the loaded authors and their books through the services.
// Entries that conflict with stored data are skipped, an author that is skipped skips its books too.
func (l *Loader) Apply(ctx context.Context, authors author.UseCase, books book.UseCase) (Result, error) {
	var res Result
	for _, fa := range l.authors {
		a, err := authors.Create(ctx, author.CreateInput{
			Name:        fa.Name,
			Email:       fa.Email,
			Bio:         fa.Bio,
			Nationality: fa.Nationality,
			BirthYear:   fa.BirthYear,
		})
		if apperror.KindOf(err) == apperror.Conflict {
			res.SkippedAuthors++
			res.SkippedBooks += len(fa.Books)
			continue
		}
		if err != nil {
			return res, fmt.Errorf("creating author %s: %w", fa.Email, err)
		}
		res.Authors++

		for _, fb := range fa.Books {
			_, err := books.Create(ctx, book.CreateInput{
				Title:         fb.Title,
				Description:   fb.Description,
				ISBN:          fb.ISBN,
				PublishedYear: fb.PublishedYear,
				Genre:         fb.Genre,
				Pages:         fb.Pages,
				AuthorID:      a.ID,
			})
			if apperror.KindOf(err) == apperror.Conflict {
				res.SkippedBooks++
				continue
			}
			if err != nil {
				return res, fmt.Errorf("creating book %q: %w", fb.Title, err)
			}
			res.Books++
		}
	}
	return res, nil
}
