package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
)

type BookRepository struct {
	DB *sql.DB
}

const (
	bookColumns       = `b.id, b.title, b.description, b.isbn, b.published_year, b.genre, b.pages, b.author_id, b.created_at`
	joinedAuthorCols  = `a.id, a.name, a.email, a.bio, a.nationality, a.birth_year, a.created_at`
	booksWithAuthors  = `SELECT ` + bookColumns + `, ` + joinedAuthorCols + ` FROM books b JOIN authors a ON a.id = b.author_id`
	selectBookQuery   = booksWithAuthors + ` WHERE b.id = $1`
	selectBooksQuery  = booksWithAuthors + ` ORDER BY b.published_year DESC`
	selectGenreQuery  = booksWithAuthors + ` WHERE LOWER(b.genre) = LOWER($1) ORDER BY b.published_year DESC`
	selectByAuthorSQL = `SELECT ` + bookColumns + ` FROM books b WHERE b.author_id = $1 ORDER BY b.published_year DESC`
	countBooksQuery   = `SELECT COUNT(*) FROM books b JOIN authors a ON a.id = b.author_id`
	insertBookQuery   = `INSERT INTO books (id, title, description, isbn, published_year, genre, pages, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	updateBookQuery = `UPDATE books
		SET title = $1, description = $2, isbn = $3, published_year = $4, genre = $5, pages = $6, author_id = $7
		WHERE id = $8`
	deleteBookQuery = `DELETE FROM books WHERE id = $1`
)

// sortColumns is the whitelist of ORDER BY targets, user input never reaches the SQL text
var sortColumns = map[book.SortField]string{
	book.SortByCreatedAt:     "b.created_at",
	book.SortByTitle:         "b.title",
	book.SortByPublishedYear: "b.published_year",
}

func scanBook(s scanner) (book.Book, error) {
	var b book.Book
	err := s.Scan(&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.Genre, &b.Pages, &b.AuthorID, &b.CreatedAt)
	return b, err
}

func scanBookWithAuthor(s scanner) (book.Book, error) {
	var b book.Book
	var a author.Author
	err := s.Scan(
		&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.Genre, &b.Pages, &b.AuthorID, &b.CreatedAt,
		&a.ID, &a.Name, &a.Email, &a.Bio, &a.Nationality, &a.BirthYear, &a.CreatedAt,
	)
	if err != nil {
		return book.Book{}, err
	}
	b.Author = &a
	return b, nil
}

func (r *BookRepository) Select(ctx context.Context, id string) (book.Book, error) {
	b, err := scanBookWithAuthor(r.DB.QueryRowContext(ctx, selectBookQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return book.Book{}, book.ErrNotFound
	}
	if err != nil {
		return book.Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

func (r *BookRepository) SelectAll(ctx context.Context, genre string) ([]book.Book, error) {
	if genre == "" {
		return r.queryWithAuthors(ctx, selectBooksQuery)
	}
	return r.queryWithAuthors(ctx, selectGenreQuery, genre)
}

func (r *BookRepository) SelectByAuthor(ctx context.Context, authorID string) ([]book.Book, error) {
	rows, err := r.DB.QueryContext(ctx, selectByAuthorSQL, authorID)
	if err != nil {
		return nil, fmt.Errorf("selecting books by author: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

func (r *BookRepository) Count(ctx context.Context, filter book.Filter) (int, error) {
	where, args := buildFilter(filter)
	var total int
	if err := r.DB.QueryRowContext(ctx, countBooksQuery+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return total, nil
}

func (r *BookRepository) Search(ctx context.Context, q book.Query) ([]book.Book, error) {
	where, args := buildFilter(q.Filter)
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = sortColumns[book.SortByCreatedAt]
	}
	direction := "DESC"
	if q.Order == book.Asc {
		direction = "ASC"
	}
	args = append(args, q.Limit, q.Offset())
	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		booksWithAuthors, where, column, direction, len(args)-1, len(args))
	return r.queryWithAuthors(ctx, query, args...)
}

func (r *BookRepository) Insert(ctx context.Context, b book.Book) error {
	_, err := r.DB.ExecContext(ctx, insertBookQuery,
		b.ID, b.Title, nullString(b.Description), nullString(b.ISBN), nullInt(b.PublishedYear),
		nullString(b.Genre), nullInt(b.Pages), b.AuthorID, b.CreatedAt)
	if err != nil {
		return translate(fmt.Errorf("inserting book: %w", err), book.ErrISBNTaken, book.ErrAuthorNotFound)
	}
	return nil
}

func (r *BookRepository) Update(ctx context.Context, b book.Book) error {
	result, err := r.DB.ExecContext(ctx, updateBookQuery,
		b.Title, nullString(b.Description), nullString(b.ISBN), nullInt(b.PublishedYear),
		nullString(b.Genre), nullInt(b.Pages), b.AuthorID, b.ID)
	if err != nil {
		return translate(fmt.Errorf("updating book: %w", err), book.ErrISBNTaken, book.ErrUnknownAuthor)
	}
	return expectOneRow(result, book.ErrNotFound)
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, deleteBookQuery, id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return expectOneRow(result, book.ErrNotFound)
}

func (r *BookRepository) queryWithAuthors(ctx context.Context, query string, args ...any) ([]book.Book, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanBookWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

/* buildFilter renders the WHERE clause shared by Count and Search
 * Placeholders are numbered in the order conditions are added
 */
func buildFilter(f book.Filter) (string, []any) {
	var conditions []string
	var args []any
	if f.Title != "" {
		args = append(args, containsPattern(f.Title))
		conditions = append(conditions, fmt.Sprintf(`b.title ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if f.Genre != "" {
		args = append(args, f.Genre)
		conditions = append(conditions, fmt.Sprintf("LOWER(b.genre) = LOWER($%d)", len(args)))
	}
	if f.AuthorName != "" {
		args = append(args, containsPattern(f.AuthorName))
		conditions = append(conditions, fmt.Sprintf(`a.name ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user text into a LIKE pattern matching it literally anywhere
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
