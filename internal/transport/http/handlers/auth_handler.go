package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vedran77/roomchat/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, input service.SignupInput) (*service.AuthResponse, error)
	Login(ctx context.Context, input service.LoginInput) (*service.AuthResponse, error)
}

type AuthHandler struct {
	authService AuthService
	log         *slog.Logger
}

func NewAuthHandler(authService AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if !decodeJSON(w, r, &input) {
		return
	}

	resp, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, "signup", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	resp, err := h.authService.Login(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
