package stats_test

import (
	"testing"

	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
	"github.com/marcelsud/library-admin/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestCompute(t *testing.T) {
	t.Run("zero books", func(t *testing.T) {
		s := stats.Compute("a1", strPtr("Anon"), nil)
		assert.Equal(t, 0, s.TotalBooks)
		assert.Nil(t, s.FirstBook)
		assert.Nil(t, s.LatestBook)
		assert.Nil(t, s.AveragePages)
		assert.Nil(t, s.LongestBook)
		assert.Nil(t, s.ShortestBook)
		assert.NotNil(t, s.Genres)
		assert.Empty(t, s.Genres)
		assert.Equal(t, "Anon", *s.AuthorName)
	})

	t.Run("two books", func(t *testing.T) {
		books := []book.Book{
			{Title: "A", PublishedYear: intPtr(2000), Pages: intPtr(100), Genre: strPtr("X")},
			{Title: "B", PublishedYear: intPtr(2010), Pages: intPtr(300), Genre: strPtr("Y")},
		}
		s := stats.Compute("a1", strPtr("Writer"), books)
		assert.Equal(t, 2, s.TotalBooks)
		require.NotNil(t, s.AveragePages)
		assert.Equal(t, 200, *s.AveragePages)
		assert.Equal(t, &stats.YearRef{Title: "A", Year: 2000}, s.FirstBook)
		assert.Equal(t, &stats.YearRef{Title: "B", Year: 2010}, s.LatestBook)
		assert.Equal(t, &stats.PagesRef{Title: "B", Pages: 300}, s.LongestBook)
		assert.Equal(t, &stats.PagesRef{Title: "A", Pages: 100}, s.ShortestBook)
		assert.ElementsMatch(t, []string{"X", "Y"}, s.Genres)
	})

	t.Run("book without pages counts but does not weigh", func(t *testing.T) {
		books := []book.Book{
			{Title: "A", PublishedYear: intPtr(2000), Pages: intPtr(100), Genre: strPtr("X")},
			{Title: "B", PublishedYear: intPtr(2010), Pages: intPtr(300), Genre: strPtr("Y")},
			{Title: "C", PublishedYear: intPtr(2005), Genre: strPtr("X")},
		}
		s := stats.Compute("a1", strPtr("Writer"), books)
		assert.Equal(t, 3, s.TotalBooks)
		require.NotNil(t, s.AveragePages)
		assert.Equal(t, 200, *s.AveragePages)
		assert.Equal(t, &stats.YearRef{Title: "A", Year: 2000}, s.FirstBook)
		assert.Equal(t, &stats.YearRef{Title: "B", Year: 2010}, s.LatestBook)
		assert.Equal(t, &stats.PagesRef{Title: "B", Pages: 300}, s.LongestBook)
		assert.Equal(t, &stats.PagesRef{Title: "A", Pages: 100}, s.ShortestBook)
		assert.Equal(t, []string{"X", "Y"}, s.Genres)
	})

	t.Run("missing values are skipped", func(t *testing.T) {
		books := []book.Book{
			{Title: "No data"},
			{Title: "Only pages", Pages: intPtr(151)},
			{Title: "Only year", PublishedYear: intPtr(1999), Genre: strPtr("Drama")},
			{Title: "Pages too", Pages: intPtr(150), Genre: strPtr("Drama")},
		}
		s := stats.Compute("a1", nil, books)
		assert.Equal(t, 4, s.TotalBooks)
		assert.Equal(t, 151, *s.AveragePages)
		assert.Equal(t, "Only year", s.FirstBook.Title)
		assert.Equal(t, "Only year", s.LatestBook.Title)
		assert.Equal(t, []string{"Drama"}, s.Genres)
		assert.Nil(t, s.AuthorName)
	})

	t.Run("ties keep the first book", func(t *testing.T) {
		books := []book.Book{
			{Title: "First", PublishedYear: intPtr(1990), Pages: intPtr(200)},
			{Title: "Second", PublishedYear: intPtr(1990), Pages: intPtr(200)},
		}
		s := stats.Compute("a1", nil, books)
		assert.Equal(t, "First", s.FirstBook.Title)
		assert.Equal(t, "First", s.LatestBook.Title)
		assert.Equal(t, "First", s.LongestBook.Title)
		assert.Equal(t, "First", s.ShortestBook.Title)
	})

	t.Run("average rounds half up", func(t *testing.T) {
		books := []book.Book{{Pages: intPtr(100)}, {Pages: intPtr(101)}}
		s := stats.Compute("a1", nil, books)
		assert.Equal(t, 101, *s.AveragePages)
	})

	t.Run("genres keep first-seen order", func(t *testing.T) {
		books := []book.Book{{Genre: strPtr("b")}, {Genre: strPtr("a")}, {Genre: strPtr("b")}}
		s := stats.Compute("a1", nil, books)
		assert.Equal(t, []string{"b", "a"}, s.Genres)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		s := stats.Summarize(nil)
		assert.Equal(t, stats.Summary{}, s)
	})

	t.Run("counts", func(t *testing.T) {
		s := stats.Summarize([]author.Author{
			{ID: "a1", Name: "One", BookCount: 1},
			{ID: "a2", Name: "Two", BookCount: 3},
			{ID: "a3", Name: "Three", BookCount: 3},
		})
		assert.Equal(t, 3, s.TotalAuthors)
		assert.Equal(t, 7, s.TotalBooks)
		assert.Equal(t, 2.3, s.AverageBooksPerAuthor)
		assert.Equal(t, &stats.ProductiveAuthor{ID: "a2", Name: "Two", BookCount: 3}, s.MostProductiveAuthor)
	})

	t.Run("authors without books", func(t *testing.T) {
		s := stats.Summarize([]author.Author{{ID: "a1"}, {ID: "a2"}})
		assert.Equal(t, 0.0, s.AverageBooksPerAuthor)
		assert.Nil(t, s.MostProductiveAuthor)
	})
}
