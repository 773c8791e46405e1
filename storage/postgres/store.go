package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"

	_ "github.com/lib/pq" // PostgreSQL driver
)

/* Store owns the connection pool shared by the author and book repositories
 * It is created once by the hosting process and closed at shutdown
 */
type Store struct {
	DB *sql.DB
}

// NewStore opens a store with the default pool (25, 5, 5 min)
func NewStore(connectionString string) (*Store, error) {
	return NewStoreWithPoolConfig(connectionString, 25, 5, 5)
}

// NewStoreWithPoolConfig opens a store with a custom pool
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: idle connections kept in the pool
// maxLifeMinutes: how long a connection may be reused
func NewStoreWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Store, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Store{DB: db}, nil
}

func (s *Store) Authors() author.Repository {
	return &AuthorRepository{DB: s.DB}
}

func (s *Store) Books() book.Repository {
	return &BookRepository{DB: s.DB}
}

// Close closes the connection pool
func (s *Store) Close(ctx context.Context) error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS authors (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		bio TEXT,
		nationality TEXT,
		birth_year INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS books (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		isbn TEXT UNIQUE,
		published_year INTEGER,
		genre TEXT,
		pages INTEGER,
		author_id TEXT NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS books_author_id_idx ON books (author_id);
`

// CreateSchema creates the authors and books tables when missing
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// DropSchema removes both tables (useful for tests)
func (s *Store) DropSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, "DROP TABLE IF EXISTS books, authors CASCADE"); err != nil {
		return fmt.Errorf("dropping schema: %w", err)
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

// CountBooksByGenre groups books by genre, books without one are keyed by ""
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
