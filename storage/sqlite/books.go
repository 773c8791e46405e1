package sqlite

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
	bookColumns      = `b.id, b.title, b.description, b.isbn, b.published_year, b.genre, b.pages, b.author_id, b.created_at`
	booksWithAuthors = `SELECT ` + bookColumns + `, a.id, a.name, a.email, a.bio, a.nationality, a.birth_year, a.created_at
		FROM books b JOIN authors a ON a.id = b.author_id`
)

var sortColumns = map[book.SortField]string{
	book.SortByCreatedAt:     "b.created_at",
	book.SortByTitle:         "b.title",
	book.SortByPublishedYear: "b.published_year",
}

func scanBook(s scanner) (book.Book, error) {
	var b book.Book
	err := s.Scan(&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.Genre, &b.Pages, &b.AuthorID, timestamp{&b.CreatedAt})
	return b, err
}

func scanBookWithAuthor(s scanner) (book.Book, error) {
	var b book.Book
	var a author.Author
	err := s.Scan(
		&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.Genre, &b.Pages, &b.AuthorID, timestamp{&b.CreatedAt},
		&a.ID, &a.Name, &a.Email, &a.Bio, &a.Nationality, &a.BirthYear, timestamp{&a.CreatedAt},
	)
	if err != nil {
		return book.Book{}, err
	}
	b.Author = &a
	return b, nil
}

func (r *BookRepository) Select(ctx context.Context, id string) (book.Book, error) {
	b, err := scanBookWithAuthor(r.DB.QueryRowContext(ctx, booksWithAuthors+` WHERE b.id = ?`, id))
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
		return r.queryWithAuthors(ctx, booksWithAuthors+` ORDER BY b.published_year DESC`)
	}
	return r.queryWithAuthors(ctx, booksWithAuthors+` WHERE `+foldFunc+`(b.genre) = `+foldFunc+`(?) ORDER BY b.published_year DESC`, genre)
}

func (r *BookRepository) SelectByAuthor(ctx context.Context, authorID string) ([]book.Book, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books b WHERE b.author_id = ? ORDER BY b.published_year DESC`, authorID)
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
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM books b JOIN authors a ON a.id = b.author_id`+where, args...).Scan(&total)
	if err != nil {
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
	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT ? OFFSET ?", booksWithAuthors, where, column, direction)
	return r.queryWithAuthors(ctx, query, append(args, q.Limit, q.Offset())...)
}

func (r *BookRepository) Insert(ctx context.Context, b book.Book) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO books (id, title, description, isbn, published_year, genre, pages, author_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, nullString(b.Description), nullString(b.ISBN), nullInt(b.PublishedYear),
		nullString(b.Genre), nullInt(b.Pages), b.AuthorID, formatTime(b.CreatedAt))
	if err != nil {
		return translate(fmt.Errorf("inserting book: %w", err), book.ErrISBNTaken, book.ErrAuthorNotFound)
	}
	return nil
}

func (r *BookRepository) Update(ctx context.Context, b book.Book) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE books SET title = ?, description = ?, isbn = ?, published_year = ?, genre = ?, pages = ?, author_id = ?
		WHERE id = ?`,
		b.Title, nullString(b.Description), nullString(b.ISBN), nullInt(b.PublishedYear),
		nullString(b.Genre), nullInt(b.Pages), b.AuthorID, b.ID)
	if err != nil {
		return translate(fmt.Errorf("updating book: %w", err), book.ErrISBNTaken, book.ErrUnknownAuthor)
	}
	return expectOneRow(result, book.ErrNotFound)
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
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

func buildFilter(f book.Filter) (string, []any) {
	var conditions []string
	var args []any
	if f.Title != "" {
		conditions = append(conditions, foldFunc+`(b.title) LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(f.Title))
	}
	if f.Genre != "" {
		conditions = append(conditions, foldFunc+"(b.genre) = "+foldFunc+"(?)")
		args = append(args, f.Genre)
	}
	if f.AuthorName != "" {
		conditions = append(conditions, foldFunc+`(a.name) LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(f.AuthorName))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
