package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/marcelsud/library-admin/book"
)

/*
Benchmarks for the sqlite search path

Run with: go test -bench=. -benchmem ./storage/sqlite/

The catalog is seeded before b.ResetTimer so only the queries are measured.
*/

func seedBenchCatalog(b *testing.B, store *Store, authors, booksPerAuthor int) {
	b.Helper()
	genres := []string{"Fantasy", "Sci-Fi", "Fiction", "History"}
	for i := 0; i < authors; i++ {
		a := InsertAuthor(b, store, fmt.Sprintf("author-%d", i), fmt.Sprintf("Author %d", i), i)
		for j := 0; j < booksPerAuthor; j++ {
			InsertBook(b, store, book.Book{
				ID:            fmt.Sprintf("book-%d-%d", i, j),
				Title:         fmt.Sprintf("Book %d of author %d", j, i),
				Genre:         strPtr(genres[(i+j)%len(genres)]),
				PublishedYear: intPtr(1950 + j),
				Pages:         intPtr(100 + j*10),
				AuthorID:      a.ID,
			}, i*booksPerAuthor+j)
		}
	}
}

func BenchmarkSearch_SQLite(b *testing.B) {
	ctx := context.Background()
	store := SetupStore(b)
	seedBenchCatalog(b, store, 50, 20)
	repo := store.Books()
	q := book.NewQuery(book.SearchParams{Search: "book 1", Genre: "fantasy", SortBy: "title", Order: "asc", Limit: "20"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.Search(ctx, q); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
		if _, err := repo.Count(ctx, q.Filter); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

func BenchmarkSelectByAuthor_SQLite(b *testing.B) {
	ctx := context.Background()
	store := SetupStore(b)
	seedBenchCatalog(b, store, 10, 50)
	repo := store.Books()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.SelectByAuthor(ctx, "author-3"); err != nil {
			b.Fatalf("SelectByAuthor failed: %v", err)
		}
	}
}
