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

type MessageService interface {
	Post(ctx context.Context, authorID uuid.UUID, input service.PostMessageInput) (*domain.Message, error)
	List(ctx context.Context, room string) ([]domain.RoomMessage, error)
}

type MessageHandler struct {
	messageService MessageService
	log            *slog.Logger
}

func NewMessageHandler(messageService MessageService, log *slog.Logger) *MessageHandler {
	return &MessageHandler{messageService: messageService, log: log}
}

func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input service.PostMessageInput
	if !decodeJSON(w, r, &input) {
		return
	}

	msg, err := h.messageService.Post(r.Context(), id.UserID, input)
	if err != nil {
		writeServiceError(w, r, h.log, "post message", err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// List answers with the room's recent window, oldest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetIdentity(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	messages, err := h.messageService.List(r.Context(), r.URL.Query().Get("room"))
	if err != nil {
		writeServiceError(w, r, h.log, "list messages", err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
