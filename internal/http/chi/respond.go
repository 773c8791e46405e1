package chi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-admin/apperror"
)

const invalidBody = "invalid request body"

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

/* writeError maps err to its status code
 * Internal errors are logged with the request entry and answered with fallback
 */
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	kind := apperror.KindOf(err)
	if kind == apperror.Internal {
		logger := httplog.LogEntry(r.Context())
		logger.Error().Err(err).Msg(fallback)
	}
	writeJSON(w, kind.HTTPStatus(), errorResponse{Error: apperror.Message(err, fallback)})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.Wrap(apperror.Validation, invalidBody, err)
	}
	return nil
}

// flexInt accepts a JSON number, a numeric string, "" or null, the last two decode to nil
type flexInt struct {
	Value *int
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		f.Value = nil
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	if s == "" {
		f.Value = nil
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s is not an integer", data)
	}
	f.Value = &n
	return nil
}

// atoiOrZero lets the service apply its default for missing or malformed numbers
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
