package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vedran77/roomchat/internal/service"
	"github.com/vedran77/roomchat/pkg/validator"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON treats an empty body as an empty object.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
	return false
}

// writeServiceError maps service errors to status codes. Unexpected errors
// are logged in full and answered with reduced detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	var verrs validator.ValidationErrors
	var perr *service.PersistenceError

	switch {
	case errors.As(err, &verrs):
		writeError(w, http.StatusBadRequest, verrs.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, service.ErrUsernameTaken.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, service.ErrUserNotFound.Error())
	case errors.As(err, &perr):
		log.ErrorContext(r.Context(), op+" failed", "err", err)
		writeError(w, http.StatusInternalServerError, perr.Public)
	default:
		log.ErrorContext(r.Context(), op+" failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
