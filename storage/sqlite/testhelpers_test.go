package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
	"github.com/stretchr/testify/require"
)

// SetupStore opens a store on a fresh file in the test's temp dir
func SetupStore(t testing.TB) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	require.NoError(t, store.CreateSchema(context.Background()))
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	return store
}

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

// InsertAuthor adds an author created minutes after baseTime
func InsertAuthor(t testing.TB, store *Store, id, name string, minutes int) author.Author {
	t.Helper()

	a := author.Author{
		ID:        id,
		Name:      name,
		Email:     fmt.Sprintf("%s@example.com", id),
		CreatedAt: baseTime.Add(time.Duration(minutes) * time.Minute),
	}
	require.NoError(t, store.Authors().Insert(context.Background(), a))
	return a
}

// InsertBook adds a book created minutes after baseTime
func InsertBook(t testing.TB, store *Store, b book.Book, minutes int) book.Book {
	t.Helper()

	b.CreatedAt = baseTime.Add(time.Duration(minutes) * time.Minute)
	require.NoError(t, store.Books().Insert(context.Background(), b))
	return b
}
