package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-admin/activity"
	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
	"github.com/marcelsud/library-admin/stats"
	"github.com/rs/zerolog"
)

// Services groups what the router needs, Metrics may be nil
type Services struct {
	Authors  author.UseCase
	Books    book.UseCase
	Stats    stats.UseCase
	Activity activity.UseCase
	Metrics  http.Handler
}

// Handlers sets up the library API routes
func Handlers(ctx context.Context, logger zerolog.Logger, svc Services) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	if svc.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", svc.Metrics)
	}

	r.Route("/authors", func(r chi.Router) {
		r.Method(http.MethodGet, "/", getAuthors(svc.Authors))
		r.Method(http.MethodPost, "/", postAuthor(svc.Authors))
		r.Method(http.MethodGet, "/{id}", getAuthor(svc.Authors, svc.Books))
		r.Method(http.MethodPut, "/{id}", putAuthor(svc.Authors))
		r.Method(http.MethodDelete, "/{id}", deleteAuthor(svc.Authors))
		r.Method(http.MethodGet, "/{id}/stats", getAuthorStats(svc.Stats))
	})

	r.Route("/books", func(r chi.Router) {
		r.Method(http.MethodGet, "/", getBooks(svc.Books))
		r.Method(http.MethodPost, "/", postBook(svc.Books))
		// registered before /{id} so "search" is never taken for an id
		r.Method(http.MethodGet, "/search", searchBooks(svc.Books))
		r.Method(http.MethodGet, "/{id}", getBook(svc.Books))
		r.Method(http.MethodPut, "/{id}", putBook(svc.Books))
		r.Method(http.MethodDelete, "/{id}", deleteBook(svc.Books))
	})

	r.Method(http.MethodGet, "/stats", getSummary(svc.Stats))
	r.Method(http.MethodGet, "/activity", getActivity(svc.Activity))

	return r
}
