package chi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-admin/book"
)

// bookRequest is the book as sent by clients, integers may arrive as strings from HTML forms
type bookRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	ISBN          *string `json:"isbn"`
	PublishedYear flexInt `json:"publishedYear"`
	Genre         *string `json:"genre"`
	Pages         flexInt `json:"pages"`
	AuthorID      *string `json:"authorId"`
}

func (req bookRequest) toCreate() book.CreateInput {
	return book.CreateInput{
		Title:         deref(req.Title),
		Description:   req.Description,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear.Value,
		Genre:         req.Genre,
		Pages:         req.Pages.Value,
		AuthorID:      deref(req.AuthorID),
	}
}

func (req bookRequest) toUpdate() book.UpdateInput {
	return book.UpdateInput{
		Title:         req.Title,
		Description:   req.Description,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear.Value,
		Genre:         req.Genre,
		Pages:         req.Pages.Value,
		AuthorID:      req.AuthorID,
	}
}

type bookResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   *string         `json:"description"`
	ISBN          *string         `json:"isbn"`
	PublishedYear *int            `json:"publishedYear"`
	Genre         *string         `json:"genre"`
	Pages         *int            `json:"pages"`
	AuthorID      string          `json:"authorId"`
	CreatedAt     time.Time       `json:"createdAt"`
	Author        *authorResponse `json:"author,omitempty"`
}

func newBookResponse(b book.Book) *bookResponse {
	resp := &bookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		ISBN:          b.ISBN,
		PublishedYear: b.PublishedYear,
		Genre:         b.Genre,
		Pages:         b.Pages,
		AuthorID:      b.AuthorID,
		CreatedAt:     b.CreatedAt,
	}
	if b.Author != nil {
		resp.Author = newAuthorResponse(*b.Author)
	}
	return resp
}

func newBookResponses(books []book.Book) []*bookResponse {
	result := make([]*bookResponse, 0, len(books))
	for _, b := range books {
		result = append(result, newBookResponse(b))
	}
	return result
}

type paginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type searchResponse struct {
	Data       []*bookResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func getBooks(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := bookService.List(r.Context(), r.URL.Query().Get("genre"))
		if err != nil {
			writeError(w, r, err, "failed to fetch books")
			return
		}
		writeJSON(w, http.StatusOK, newBookResponses(all))
	})
}

func searchBooks(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, err := bookService.Search(r.Context(), book.SearchParams{
			Search:     q.Get("search"),
			Genre:      q.Get("genre"),
			AuthorName: q.Get("authorName"),
			Page:       q.Get("page"),
			Limit:      q.Get("limit"),
			SortBy:     q.Get("sortBy"),
			Order:      q.Get("order"),
		})
		if err != nil {
			writeError(w, r, err, "failed to search books")
			return
		}
		p := page.Pagination
		writeJSON(w, http.StatusOK, searchResponse{
			Data: newBookResponses(page.Data),
			Pagination: paginationResponse{
				Page:       p.Page,
				Limit:      p.Limit,
				Total:      p.Total,
				TotalPages: p.TotalPages,
				HasNext:    p.HasNext,
				HasPrev:    p.HasPrev,
			},
		})
	})
}

func getBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := bookService.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, "failed to fetch book")
			return
		}
		writeJSON(w, http.StatusOK, newBookResponse(b))
	})
}

func postBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req bookRequest
		if err := decode(r, &req); err != nil {
			writeError(w, r, err, "failed to create book")
			return
		}
		b, err := bookService.Create(r.Context(), req.toCreate())
		if err != nil {
			writeError(w, r, err, "failed to create book")
			return
		}
		writeJSON(w, http.StatusCreated, newBookResponse(b))
	})
}

func putBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req bookRequest
		if err := decode(r, &req); err != nil {
			writeError(w, r, err, "failed to update book")
			return
		}
		b, err := bookService.Update(r.Context(), chi.URLParam(r, "id"), req.toUpdate())
		if err != nil {
			writeError(w, r, err, "failed to update book")
			return
		}
		writeJSON(w, http.StatusOK, newBookResponse(b))
	})
}

func deleteBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := bookService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err, "failed to delete book")
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "book deleted"})
	})
}
