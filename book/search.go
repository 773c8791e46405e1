package book

import (
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// SortField is one of the whitelisted columns a search can be ordered by
type SortField int

const (
	SortByCreatedAt SortField = iota + 1
	SortByTitle
	SortByPublishedYear
)

func (f SortField) String() string {
	switch f {
	case SortByTitle:
		return "title"
	case SortByPublishedYear:
		return "publishedYear"
	case SortByCreatedAt:
		return "createdAt"
	}
	return "unknown"
}

// NewSortField falls back to SortByCreatedAt for anything outside the whitelist
func NewSortField(s string) SortField {
	switch s {
	case "title":
		return SortByTitle
	case "publishedYear":
		return SortByPublishedYear
	}
	return SortByCreatedAt
}

type Order int

const (
	Desc Order = iota + 1
	Asc
)

func (o Order) String() string {
	if o == Asc {
		return "asc"
	}
	return "desc"
}

// NewOrder is ascending only for the exact string "asc"
func NewOrder(s string) Order {
	if s == "asc" {
		return Asc
	}
	return Desc
}

/* SearchParams are the raw, untrusted query string values
 * Every field may be empty or malformed
 */
type SearchParams struct {
	Search     string
	Genre      string
	AuthorName string
	Page       string
	Limit      string
	SortBy     string
	Order      string
}

// Filter narrows a search, empty fields do not filter
type Filter struct {
	// Title is a case-insensitive substring of the book title
	Title string
	// Genre is a case-insensitive exact match
	Genre string
	// AuthorName is a case-insensitive substring of the author's name
	AuthorName string
}

// Query is a normalized search, safe to hand to a repository
type Query struct {
	Filter Filter
	Page   int
	Limit  int
	SortBy SortField
	Order  Order
}

// Offset is the number of rows skipped before the requested page
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// NewQuery normalizes raw parameters, it never fails
func NewQuery(p SearchParams) Query {
	page := atoiOr(p.Page, DefaultPage)
	if page < 1 {
		page = 1
	}
	limit := atoiOr(p.Limit, DefaultLimit)
	switch {
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Query{
		Filter: Filter{
			Title:      p.Search,
			Genre:      p.Genre,
			AuthorName: p.AuthorName,
		},
		Page:   page,
		Limit:  limit,
		SortBy: NewSortField(p.SortBy),
		Order:  NewOrder(p.Order),
	}
}

// atoiOr parses s, returning def for empty, malformed or zero input
func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return def
	}
	return n
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewPagination computes page metadata, TotalPages is at least 1 even for an empty result
func NewPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Page is one page of search results
type Page struct {
	Data       []Book
	Pagination Pagination
}
