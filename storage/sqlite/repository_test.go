package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
	"github.com/marcelsud/library-admin/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, store *Store) {
	t.Helper()

	InsertAuthor(t, store, "a1", "Ursula K. Le Guin", 0)
	InsertAuthor(t, store, "a2", "Frank Herbert", 1)
	InsertBook(t, store, book.Book{ID: "b1", Title: "A Wizard of Earthsea", PublishedYear: intPtr(1968), Pages: intPtr(183), Genre: strPtr("Fantasy"), AuthorID: "a1"}, 1)
	InsertBook(t, store, book.Book{ID: "b2", Title: "The Left Hand of Darkness", PublishedYear: intPtr(1969), Pages: intPtr(304), Genre: strPtr("Sci-Fi"), AuthorID: "a1"}, 2)
	InsertBook(t, store, book.Book{ID: "b3", Title: "The Dispossessed", PublishedYear: intPtr(1974), Pages: intPtr(387), Genre: strPtr("sci-fi"), AuthorID: "a1"}, 3)
	InsertBook(t, store, book.Book{ID: "b4", Title: "Dune", PublishedYear: intPtr(1965), Pages: intPtr(412), Genre: strPtr("Sci-Fi"), AuthorID: "a2"}, 4)
	InsertBook(t, store, book.Book{ID: "b5", Title: "100% Dune_Notes", AuthorID: "a2"}, 5)
}

func ids(books []book.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestBookRepository_Search(t *testing.T) {
	ctx := context.Background()
	store := SetupStore(t)
	seedCatalog(t, store)
	repo := store.Books()

	tests := []struct {
		name   string
		params book.SearchParams
		total  int
		want   []string
	}{
		{"everything newest first", book.SearchParams{}, 5, []string{"b5", "b4", "b3", "b2", "b1"}},
		{"title substring ignores case", book.SearchParams{Search: "DUNE"}, 2, []string{"b5", "b4"}},
		{"genre exact ignores case", book.SearchParams{Genre: "SCI-FI", SortBy: "publishedYear", Order: "asc"}, 3, []string{"b4", "b2", "b3"}},
		{"genre is not a substring match", book.SearchParams{Genre: "Sci"}, 0, []string{}},
		{"author name substring", book.SearchParams{AuthorName: "guin", SortBy: "title", Order: "asc"}, 3, []string{"b1", "b3", "b2"}},
		{"filters combine", book.SearchParams{Search: "the", AuthorName: "le guin", Genre: "sci-fi"}, 2, []string{"b3", "b2"}},
		{"percent matches literally", book.SearchParams{Search: "100%"}, 1, []string{"b5"}},
		{"underscore matches literally", book.SearchParams{Search: "e_n"}, 1, []string{"b5"}},
		{"second page", book.SearchParams{Page: "2", Limit: "2"}, 5, []string{"b3", "b2"}},
		{"past the end", book.SearchParams{Page: "9", Limit: "2"}, 5, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := book.NewQuery(tt.params)
			total, err := repo.Count(ctx, q.Filter)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)

			books, err := repo.Search(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(books))
			for _, b := range books {
				require.NotNil(t, b.Author)
				assert.Equal(t, b.AuthorID, b.Author.ID)
			}
		})
	}

	t.Run("identical searches are identical", func(t *testing.T) {
		q := book.NewQuery(book.SearchParams{Genre: "sci-fi", Limit: "2"})
		first, err := repo.Search(ctx, q)
		require.NoError(t, err)
		second, err := repo.Search(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestBookRepository_SearchNonASCII(t *testing.T) {
	ctx := context.Background()
	store := SetupStore(t)
	InsertAuthor(t, store, "a1", "Émile Zola", 0)
	InsertBook(t, store, book.Book{ID: "b1", Title: "Éloge de l'ombre", Genre: strPtr("Ficción"), AuthorID: "a1"}, 1)
	InsertBook(t, store, book.Book{ID: "b2", Title: "Germinal", Genre: strPtr("Novela"), AuthorID: "a1"}, 2)
	repo := store.Books()

	tests := []struct {
		name   string
		params book.SearchParams
		want   []string
	}{
		{"title same case", book.SearchParams{Search: "Éloge"}, []string{"b1"}},
		{"title other case", book.SearchParams{Search: "ÉLOGE"}, []string{"b1"}},
		{"author name", book.SearchParams{AuthorName: "émile"}, []string{"b2", "b1"}},
		{"genre lower", book.SearchParams{Genre: "ficción"}, []string{"b1"}},
		{"genre upper", book.SearchParams{Genre: "FICCIÓN"}, []string{"b1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := book.NewQuery(tt.params)
			total, err := repo.Count(ctx, q.Filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), total)

			books, err := repo.Search(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(books))
		})
	}

	t.Run("list by genre", func(t *testing.T) {
		books, err := repo.SelectAll(ctx, "FICCIÓN")
		require.NoError(t, err)
		assert.Equal(t, []string{"b1"}, ids(books))
	})
}

func TestBookRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	store := SetupStore(t)
	seedCatalog(t, store)
	repo := store.Books()

	t.Run("select joins author", func(t *testing.T) {
		b, err := repo.Select(ctx, "b4")
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
		assert.Equal(t, "Frank Herbert", b.Author.Name)
		assert.True(t, baseTime.Add(4*time.Minute).Equal(b.CreatedAt))
	})

	t.Run("select missing", func(t *testing.T) {
		_, err := repo.Select(ctx, "nope")
		assert.ErrorIs(t, err, book.ErrNotFound)
	})

	t.Run("list by genre newest published first", func(t *testing.T) {
		books, err := repo.SelectAll(ctx, "sci-fi")
		require.NoError(t, err)
		assert.Equal(t, []string{"b3", "b2", "b4"}, ids(books))
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		InsertBook(t, store, book.Book{ID: "i1", Title: "With ISBN", ISBN: strPtr("978-1"), AuthorID: "a1"}, 10)
		err := repo.Insert(ctx, book.Book{ID: "i2", Title: "Same ISBN", ISBN: strPtr("978-1"), AuthorID: "a1"})
		assert.ErrorIs(t, err, book.ErrISBNTaken)
	})

	t.Run("null isbns do not collide", func(t *testing.T) {
		InsertBook(t, store, book.Book{ID: "n1", Title: "No ISBN one", AuthorID: "a2"}, 11)
		InsertBook(t, store, book.Book{ID: "n2", Title: "No ISBN two", AuthorID: "a2"}, 12)
	})

	t.Run("dangling author", func(t *testing.T) {
		err := repo.Insert(ctx, book.Book{ID: "x1", Title: "Orphan", AuthorID: "ghost"})
		assert.ErrorIs(t, err, book.ErrAuthorNotFound)
	})

	t.Run("update and delete", func(t *testing.T) {
		b, err := repo.Select(ctx, "b1")
		require.NoError(t, err)
		b.Pages = intPtr(200)
		require.NoError(t, repo.Update(ctx, b))

		got, err := repo.Select(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, 200, *got.Pages)

		require.NoError(t, repo.Delete(ctx, "b1"))
		assert.ErrorIs(t, repo.Delete(ctx, "b1"), book.ErrNotFound)
		assert.ErrorIs(t, repo.Update(ctx, b), book.ErrNotFound)
	})
}

func TestAuthorRepository(t *testing.T) {
	ctx := context.Background()
	store := SetupStore(t)
	seedCatalog(t, store)
	repo := store.Authors()

	t.Run("list with counts newest first", func(t *testing.T) {
		all, err := repo.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "a2", all[0].ID)
		assert.Equal(t, 2, all[0].BookCount)
		assert.Equal(t, 3, all[1].BookCount)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, "a1")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.Exists(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Insert(ctx, author.Author{ID: "a9", Name: "Copy", Email: "a1@example.com", CreatedAt: baseTime})
		assert.ErrorIs(t, err, author.ErrEmailTaken)

		a, err := repo.Select(ctx, "a2")
		require.NoError(t, err)
		a.Email = "a1@example.com"
		assert.ErrorIs(t, repo.Update(ctx, a), author.ErrEmailTaken)
	})

	t.Run("delete cascades to books", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "a1"))
		_, err := repo.Select(ctx, "a1")
		assert.ErrorIs(t, err, author.ErrNotFound)

		n, err := store.CountBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		assert.ErrorIs(t, repo.Delete(ctx, "a1"), author.ErrNotFound)
	})
}

func TestStore_Counts(t *testing.T) {
	ctx := context.Background()
	store := SetupStore(t)
	seedCatalog(t, store)

	authors, err := store.CountAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), authors)

	byGenre, err := store.CountBooksByGenre(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Fantasy": 1, "Sci-Fi": 2, "sci-fi": 1, "": 1}, byGenre)
}

func TestAuthorStatsOverStore(t *testing.T) {
	ctx := context.Background()
	store := SetupStore(t)
	seedCatalog(t, store)
	svc := stats.NewService(store.Authors(), store.Books())

	t.Run("author with books", func(t *testing.T) {
		got, err := svc.AuthorStats(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "Ursula K. Le Guin", *got.AuthorName)
		assert.Equal(t, 3, got.TotalBooks)
		assert.Equal(t, 1968, got.FirstBook.Year)
		assert.Equal(t, "The Dispossessed", got.LatestBook.Title)
		assert.Equal(t, 291, *got.AveragePages)
		assert.Equal(t, 387, got.LongestBook.Pages)
		assert.Equal(t, 183, got.ShortestBook.Pages)
		assert.ElementsMatch(t, []string{"Fantasy", "Sci-Fi", "sci-fi"}, got.Genres)
	})

	t.Run("books without numbers", func(t *testing.T) {
		got, err := svc.AuthorStats(ctx, "a2")
		require.NoError(t, err)
		assert.Equal(t, 2, got.TotalBooks)
		assert.Equal(t, 412, *got.AveragePages)
	})

	t.Run("unknown author", func(t *testing.T) {
		got, err := svc.AuthorStats(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, got.AuthorName)
		assert.Equal(t, 0, got.TotalBooks)
	})

	t.Run("summary", func(t *testing.T) {
		got, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, got.TotalAuthors)
		assert.Equal(t, 5, got.TotalBooks)
		assert.Equal(t, 2.5, got.AverageBooksPerAuthor)
		assert.Equal(t, "a1", got.MostProductiveAuthor.ID)
	})
}

func TestTimestampScan(t *testing.T) {
	var got = baseTime
	ts := timestamp{&got}
	require.NoError(t, ts.Scan(formatTime(baseTime.Add(1500))))
	assert.Equal(t, int64(1500), got.Sub(baseTime).Nanoseconds())
	require.NoError(t, ts.Scan([]byte("2024-01-01 00:00:01")))
	assert.Equal(t, 1, got.Second())
	assert.Error(t, ts.Scan("garbage"))
}
