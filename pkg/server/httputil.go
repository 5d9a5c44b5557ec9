package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/kerbaras/perusahaan/pkg/data"
)

// envelope is the body of every response.
type envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", slog.Any("err", err))
	}
}

func writeData(w http.ResponseWriter, status int, message string, v any) {
	writeJSON(w, status, envelope{Status: true, Message: message, Data: v})
}

func writeError(w http.ResponseWriter, status int, message string, v any) {
	writeJSON(w, status, envelope{Status: false, Message: message, Data: v})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// idParam returns the decoded {id} path parameter. chi matches on the raw
// path when it contains escapes, so the value may still be encoded.
func idParam(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

// storeErrorToHTTP maps repository errors to responses.
func storeErrorToHTTP(w http.ResponseWriter, logger *slog.Logger, err error) {
	var invalid *data.ValidationError
	switch {
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, invalid.Error(), invalid)
	case errors.Is(err, data.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, data.ErrDuplicate):
		writeError(w, http.StatusConflict, err.Error(), nil)
	default:
		logger.Error("internal error", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
