package fixtures

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/marcelsud/library-admin/book"
	"gopkg.in/yaml.v3"
)

/* Loader reads seed data from a fixtures.yaml file
 * Each author lists its own books, so a file never references ids
 */

// File represents the structure of fixtures.yaml
type File struct {
	Authors []Author `yaml:"authors"`
}

type Author struct {
	Name        string  `yaml:"name"`
	Email       string  `yaml:"email"`
	Bio         *string `yaml:"bio"`
	Nationality *string `yaml:"nationality"`
	BirthYear   *int    `yaml:"birth_year"`
	Books       []Book  `yaml:"books"`
}

type Book struct {
	Title         string  `yaml:"title"`
	Description   *string `yaml:"description"`
	ISBN          *string `yaml:"isbn"`
	PublishedYear *int    `yaml:"published_year"`
	Genre         *string `yaml:"genre"`
	Pages         *int    `yaml:"pages"`
}

func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Email, validation.Required),
		validation.Field(&a.Books),
	)
}

func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.Pages, validation.By(book.Positive)),
	)
}

// Loader holds the loaded fixtures
type Loader struct {
	authors []Author
}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, parses and validates the fixtures file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading fixtures file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing fixtures YAML: %w", err)
	}

	if err := file.Validate(); err != nil {
		return fmt.Errorf("validating fixtures: %w", err)
	}

	l.authors = file.Authors
	return nil
}

// Validate checks every entry and rejects duplicated emails or ISBNs inside the file
func (f File) Validate() error {
	emails := make(map[string]int)
	isbns := make(map[string]int)
	for i, a := range f.Authors {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("author #%d (%s): %w", i+1, a.Name, err)
		}
		key := strings.ToLower(a.Email)
		if prev, ok := emails[key]; ok {
			return fmt.Errorf("author #%d: email %s already used by author #%d", i+1, a.Email, prev)
		}
		emails[key] = i + 1
		for _, b := range a.Books {
			if b.ISBN == nil || *b.ISBN == "" {
				continue
			}
			if prev, ok := isbns[*b.ISBN]; ok {
				return fmt.Errorf("author #%d: isbn %s already used by author #%d", i+1, *b.ISBN, prev)
			}
			isbns[*b.ISBN] = i + 1
		}
	}
	return nil
}

// List returns the loaded authors in file order
func (l *Loader) List() []Author {
	return l.authors
}

// BookCount returns how many books the file declares
func (l *Loader) BookCount() int {
	n := 0
	for _, a := range l.authors {
		n += len(a.Books)
	}
	return n
}
