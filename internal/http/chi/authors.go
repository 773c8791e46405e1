package chi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
)

// authorRequest is the author as sent by clients, every field is optional at this layer
type authorRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Bio         *string `json:"bio"`
	Nationality *string `json:"nationality"`
	BirthYear   flexInt `json:"birthYear"`
}

func (req authorRequest) toCreate() author.CreateInput {
	return author.CreateInput{
		Name:        deref(req.Name),
		Email:       deref(req.Email),
		Bio:         req.Bio,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear.Value,
	}
}

func (req authorRequest) toUpdate() author.UpdateInput {
	return author.UpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		Bio:         req.Bio,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear.Value,
	}
}

type countResponse struct {
	Books int `json:"books"`
}

type authorResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Bio         *string         `json:"bio"`
	Nationality *string         `json:"nationality"`
	BirthYear   *int            `json:"birthYear"`
	CreatedAt   time.Time       `json:"createdAt"`
	Count       *countResponse  `json:"_count,omitempty"`
	Books       []*bookResponse `json:"books,omitempty"`
}

func newAuthorResponse(a author.Author) *authorResponse {
	return &authorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Bio:         a.Bio,
		Nationality: a.Nationality,
		BirthYear:   a.BirthYear,
		CreatedAt:   a.CreatedAt,
	}
}

func getAuthors(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := authorService.List(r.Context())
		if err != nil {
			writeError(w, r, err, "failed to fetch authors")
			return
		}
		result := make([]*authorResponse, 0, len(all))
		for _, a := range all {
			resp := newAuthorResponse(a)
			resp.Count = &countResponse{Books: a.BookCount}
			result = append(result, resp)
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getAuthor(authorService author.UseCase, bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		a, err := authorService.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "failed to fetch author")
			return
		}
		books, err := bookService.ListByAuthor(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "failed to fetch author")
			return
		}
		resp := newAuthorResponse(a)
		resp.Count = &countResponse{Books: len(books)}
		resp.Books = make([]*bookResponse, 0, len(books))
		for _, b := range books {
			resp.Books = append(resp.Books, newBookResponse(b))
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

func postAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req authorRequest
		if err := decode(r, &req); err != nil {
			writeError(w, r, err, "failed to create author")
			return
		}
		a, err := authorService.Create(r.Context(), req.toCreate())
		if err != nil {
			writeError(w, r, err, "failed to create author")
			return
		}
		writeJSON(w, http.StatusCreated, newAuthorResponse(a))
	})
}

func putAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req authorRequest
		if err := decode(r, &req); err != nil {
			writeError(w, r, err, "failed to update author")
			return
		}
		a, err := authorService.Update(r.Context(), chi.URLParam(r, "id"), req.toUpdate())
		if err != nil {
			writeError(w, r, err, "failed to update author")
			return
		}
		writeJSON(w, http.StatusOK, newAuthorResponse(a))
	})
}

func deleteAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := authorService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err, "failed to delete author")
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "author deleted"})
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
