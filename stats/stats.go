package stats

import (
	"math"

	"github.com/marcelsud/library-admin/book"
)

// AuthorStats is the aggregate view of one author's books
type AuthorStats struct {
	AuthorID   string  `json:"authorId"`
	AuthorName *string `json:"authorName"`
	TotalBooks int     `json:"totalBooks"`
	// FirstBook and LatestBook consider only books with a published year
	FirstBook  *YearRef `json:"firstBook"`
	LatestBook *YearRef `json:"latestBook"`
	// AveragePages is the rounded mean over books with a page count
	AveragePages *int      `json:"averagePages"`
	Genres       []string  `json:"genres"`
	LongestBook  *PagesRef `json:"longestBook"`
	ShortestBook *PagesRef `json:"shortestBook"`
}

type YearRef struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

type PagesRef struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

/* Compute derives every statistic from one list of books
 * Extremes keep the first book found in list order when values tie
 */
func Compute(authorID string, authorName *string, books []book.Book) AuthorStats {
	s := AuthorStats{
		AuthorID:   authorID,
		AuthorName: authorName,
		TotalBooks: len(books),
		Genres:     []string{},
	}

	seen := make(map[string]bool)
	var pagesSum, pagesCount int
	for _, b := range books {
		if b.PublishedYear != nil {
			year := *b.PublishedYear
			if s.FirstBook == nil || year < s.FirstBook.Year {
				s.FirstBook = &YearRef{Title: b.Title, Year: year}
			}
			if s.LatestBook == nil || year > s.LatestBook.Year {
				s.LatestBook = &YearRef{Title: b.Title, Year: year}
			}
		}
		if b.Pages != nil {
			pages := *b.Pages
			pagesSum += pages
			pagesCount++
			if s.LongestBook == nil || pages > s.LongestBook.Pages {
				s.LongestBook = &PagesRef{Title: b.Title, Pages: pages}
			}
			if s.ShortestBook == nil || pages < s.ShortestBook.Pages {
				s.ShortestBook = &PagesRef{Title: b.Title, Pages: pages}
			}
		}
		if b.Genre != nil && !seen[*b.Genre] {
			seen[*b.Genre] = true
			s.Genres = append(s.Genres, *b.Genre)
		}
	}

	if pagesCount > 0 {
		avg := int(math.Round(float64(pagesSum) / float64(pagesCount)))
		s.AveragePages = &avg
	}
	return s
}
