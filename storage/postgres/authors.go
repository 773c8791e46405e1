package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelsud/library-admin/author"
)

type AuthorRepository struct {
	DB *sql.DB
}

const (
	selectAuthorsQuery = `SELECT a.id, a.name, a.email, a.bio, a.nationality, a.birth_year, a.created_at, COUNT(b.id)
		FROM authors a LEFT JOIN books b ON b.author_id = a.id`
	selectAuthorQuery     = selectAuthorsQuery + ` WHERE a.id = $1 GROUP BY a.id`
	selectAllAuthorsQuery = selectAuthorsQuery + ` GROUP BY a.id ORDER BY a.created_at DESC`
	existsAuthorQuery     = `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`
	insertAuthorQuery     = `INSERT INTO authors (id, name, email, bio, nationality, birth_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	updateAuthorQuery = `UPDATE authors
		SET name = $1, email = $2, bio = $3, nationality = $4, birth_year = $5
		WHERE id = $6`
	deleteAuthorQuery = `DELETE FROM authors WHERE id = $1`
)

type scanner interface {
	Scan(dest ...any) error
}

func scanAuthor(s scanner) (author.Author, error) {
	var a author.Author
	err := s.Scan(&a.ID, &a.Name, &a.Email, &a.Bio, &a.Nationality, &a.BirthYear, &a.CreatedAt, &a.BookCount)
	return a, err
}

// Select returns the author with its book count
func (r *AuthorRepository) Select(ctx context.Context, id string) (author.Author, error) {
	a, err := scanAuthor(r.DB.QueryRowContext(ctx, selectAuthorQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return author.Author{}, author.ErrNotFound
	}
	if err != nil {
		return author.Author{}, fmt.Errorf("selecting author: %w", err)
	}
	return a, nil
}

func (r *AuthorRepository) SelectAll(ctx context.Context) ([]author.Author, error) {
	rows, err := r.DB.QueryContext(ctx, selectAllAuthorsQuery)
	if err != nil {
		return nil, fmt.Errorf("selecting authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating authors: %w", err)
	}
	return authors, nil
}

func (r *AuthorRepository) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	if err := r.DB.QueryRowContext(ctx, existsAuthorQuery, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking author: %w", err)
	}
	return ok, nil
}

func (r *AuthorRepository) Insert(ctx context.Context, a author.Author) error {
	_, err := r.DB.ExecContext(ctx, insertAuthorQuery,
		a.ID, a.Name, a.Email, nullString(a.Bio), nullString(a.Nationality), nullInt(a.BirthYear), a.CreatedAt)
	if err != nil {
		return translate(fmt.Errorf("inserting author: %w", err), author.ErrEmailTaken, nil)
	}
	return nil
}

func (r *AuthorRepository) Update(ctx context.Context, a author.Author) error {
	result, err := r.DB.ExecContext(ctx, updateAuthorQuery,
		a.Name, a.Email, nullString(a.Bio), nullString(a.Nationality), nullInt(a.BirthYear), a.ID)
	if err != nil {
		return translate(fmt.Errorf("updating author: %w", err), author.ErrEmailTaken, nil)
	}
	return expectOneRow(result, author.ErrNotFound)
}

// Delete removes the author, books go with it through ON DELETE CASCADE
func (r *AuthorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, deleteAuthorQuery, id)
	if err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	return expectOneRow(result, author.ErrNotFound)
}

func expectOneRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
