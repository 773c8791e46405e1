package stats

import (
	"math"

	"github.com/marcelsud/library-admin/author"
)

// Summary is the catalog-wide dashboard view
type Summary struct {
	TotalAuthors          int               `json:"totalAuthors"`
	TotalBooks            int               `json:"totalBooks"`
	AverageBooksPerAuthor float64           `json:"averageBooksPerAuthor"`
	MostProductiveAuthor  *ProductiveAuthor `json:"mostProductiveAuthor"`
}

type ProductiveAuthor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BookCount int    `json:"bookCount"`
}

// Summarize aggregates authors carrying their book counts, the average is rounded to one decimal
func Summarize(authors []author.Author) Summary {
	s := Summary{TotalAuthors: len(authors)}
	for _, a := range authors {
		s.TotalBooks += a.BookCount
		if a.BookCount > 0 && (s.MostProductiveAuthor == nil || a.BookCount > s.MostProductiveAuthor.BookCount) {
			s.MostProductiveAuthor = &ProductiveAuthor{ID: a.ID, Name: a.Name, BookCount: a.BookCount}
		}
	}
	if s.TotalAuthors > 0 {
		s.AverageBooksPerAuthor = math.Round(float64(s.TotalBooks)/float64(s.TotalAuthors)*10) / 10
	}
	return s
}
