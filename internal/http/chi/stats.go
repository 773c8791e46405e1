package chi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-admin/activity"
	"github.com/marcelsud/library-admin/stats"
)

// stats.AuthorStats and stats.Summary carry their own json tags
func getAuthorStats(statsService stats.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := statsService.AuthorStats(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, "failed to compute author stats")
			return
		}
		writeJSON(w, http.StatusOK, s)
	})
}

func getSummary(statsService stats.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := statsService.Summary(r.Context())
		if err != nil {
			writeError(w, r, err, "failed to compute library stats")
			return
		}
		writeJSON(w, http.StatusOK, s)
	})
}

type eventResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func getActivity(activityService activity.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events, err := activityService.Recent(r.Context(), atoiOrZero(r.URL.Query().Get("limit")))
		if err != nil {
			writeError(w, r, err, "failed to fetch activity")
			return
		}
		result := make([]eventResponse, 0, len(events))
		for _, e := range events {
			result = append(result, eventResponse{
				ID:         e.ID,
				Type:       e.Type.String(),
				EntityID:   e.EntityID,
				OccurredAt: e.OccurredAt,
			})
		}
		writeJSON(w, http.StatusOK, result)
	})
}
