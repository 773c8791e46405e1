//go:build !integration

package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/marcelsud/library-admin/author"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Unit tests for the PostgreSQL author repository
sqlmock stands in for the database, so these check the SQL we send and how we read results
*/

var authorCols = []string{"id", "name", "email", "bio", "nationality", "birth_year", "created_at", "count"}

func TestAuthorRepository_Select_Unit(t *testing.T) {
	ctx := context.Background()

	t.Run("existing author", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		rows := sqlmock.NewRows(authorCols).
			AddRow("a1", "Octavia Butler", "octavia@example.com", nil, "American", 1947, created, 3)
		mock.ExpectQuery(regexp.QuoteMeta(selectAuthorQuery)).WithArgs("a1").WillReturnRows(rows)

		repo := &AuthorRepository{DB: db}
		a, err := repo.Select(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "Octavia Butler", a.Name)
		assert.Nil(t, a.Bio)
		require.NotNil(t, a.Nationality)
		assert.Equal(t, "American", *a.Nationality)
		require.NotNil(t, a.BirthYear)
		assert.Equal(t, 1947, *a.BirthYear)
		assert.Equal(t, 3, a.BookCount)
		assert.True(t, created.Equal(a.CreatedAt))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing author", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(selectAuthorQuery)).WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(authorCols))

		repo := &AuthorRepository{DB: db}
		_, err = repo.Select(ctx, "nope")
		assert.ErrorIs(t, err, author.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthorRepository_SelectAll_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectAllAuthorsQuery)).WillReturnRows(sqlmock.NewRows(authorCols))

	repo := &AuthorRepository{DB: db}
	all, err := repo.SelectAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_Insert_Unit(t *testing.T) {
	ctx := context.Background()
	a := author.Author{
		ID:        "a1",
		Name:      "N. K. Jemisin",
		Email:     "nk@example.com",
		CreatedAt: time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(insertAuthorQuery)).
			WithArgs("a1", "N. K. Jemisin", "nk@example.com", nil, nil, nil, a.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := &AuthorRepository{DB: db}
		require.NoError(t, repo.Insert(ctx, a))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(insertAuthorQuery)).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "authors_email_key"})

		repo := &AuthorRepository{DB: db}
		err = repo.Insert(ctx, a)
		assert.ErrorIs(t, err, author.ErrEmailTaken)
	})

	t.Run("other failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(insertAuthorQuery)).WillReturnError(errors.New("connection reset"))

		repo := &AuthorRepository{DB: db}
		err = repo.Insert(ctx, a)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, author.ErrEmailTaken)
	})
}

func TestAuthorRepository_Update_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	year := 1960
	mock.ExpectExec(regexp.QuoteMeta(updateAuthorQuery)).
		WithArgs("Name", "e@example.com", "bio", nil, int64(year), "a1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	bio := "bio"
	repo := &AuthorRepository{DB: db}
	err = repo.Update(context.Background(), author.Author{ID: "a1", Name: "Name", Email: "e@example.com", Bio: &bio, BirthYear: &year})
	assert.ErrorIs(t, err, author.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_Delete_Unit(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(deleteAuthorQuery)).WithArgs("a1").WillReturnResult(sqlmock.NewResult(0, 1))

		repo := &AuthorRepository{DB: db}
		require.NoError(t, repo.Delete(context.Background(), "a1"))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(deleteAuthorQuery)).WithArgs("a1").WillReturnResult(sqlmock.NewResult(0, 0))

		repo := &AuthorRepository{DB: db}
		assert.ErrorIs(t, repo.Delete(context.Background(), "a1"), author.ErrNotFound)
	})
}

func TestAuthorRepository_Exists_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(existsAuthorQuery)).WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := &AuthorRepository{DB: db}
	ok, err := repo.Exists(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, ok)
}
