package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/roomchat/internal/domain"
	"github.com/vedran77/roomchat/internal/service"
	"github.com/vedran77/roomchat/internal/transport/http/middleware"
)

type UserService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, input service.UpdateProfileInput) (*domain.Profile, error)
}

type UserHandler struct {
	userService UserService
	log         *slog.Logger
}

func NewUserHandler(userService UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.userService.Get(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, r, h.log, "get profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input service.UpdateProfileInput
	if !decodeJSON(w, r, &input) {
		return
	}

	profile, err := h.userService.Update(r.Context(), id.UserID, input)
	if err != nil {
		writeServiceError(w, r, h.log, "update profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
