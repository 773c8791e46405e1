package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/glebarez/go-sqlite"
	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
)

/* Store is the embedded backend, a single SQLite file
 * Timestamps are stored as fixed-width UTC text so they sort lexically
 */
type Store struct {
	DB *sql.DB
}

// foldFunc is a Unicode-aware LOWER, the builtin only folds ASCII
const foldFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, fold)
}

func fold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// NewStore opens (or creates) the database file at path, ":memory:" works too
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// one writer at a time, and a single connection keeps ":memory:" databases alive
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) Authors() author.Repository {
	return &AuthorRepository{DB: s.DB}
}

func (s *Store) Books() book.Repository {
	return &BookRepository{DB: s.DB}
}

func (s *Store) Close(ctx context.Context) error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		bio TEXT,
		nationality TEXT,
		birth_year INTEGER,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		isbn TEXT UNIQUE,
		published_year INTEGER,
		genre TEXT,
		pages INTEGER,
		author_id TEXT NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS books_author_id_idx ON books (author_id)`,
}

func (s *Store) CreateSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

func (s *Store) DropSchema(ctx context.Context) error {
	for _, table := range []string{"books", "authors"} {
		if _, err := s.DB.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("dropping schema: %w", err)
		}
	}
	return nil
}

func (s *Store) CountAuthors(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM authors").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting authors: %w", err)
	}
	return n, nil
}

func (s *Store) CountBooks(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return n, nil
}

func (s *Store) CountBooksByGenre(ctx context.Context) (map[string]int64, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT COALESCE(genre, ''), COUNT(*) FROM books GROUP BY 1")
	if err != nil {
		return nil, fmt.Errorf("counting books by genre: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var genre string
		var n int64
		if err := rows.Scan(&genre, &n); err != nil {
			return nil, fmt.Errorf("scanning genre count: %w", err)
		}
		counts[genre] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating genre counts: %w", err)
	}
	return counts, nil
}
