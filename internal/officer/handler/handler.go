// Package handler exposes the officer login endpoint.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hesabu/internal/officer"
	"hesabu/internal/platform/middleware"
	"hesabu/internal/transport/http/shared"
	dErrors "hesabu/pkg/domain-errors"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Handler handles officer authentication requests.
type Handler struct {
	service *officer.Service
	logger  *slog.Logger
}

func New(service *officer.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the login route with the standard middleware stack.
func (h *Handler) Register(r chi.Router) {
	r.Route("/auth/officer", func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.ContentTypeJSON)

		r.Post("/login", h.login)
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "username and password are required"))
		return
	}

	token, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "officer login failed",
			"username", req.Username,
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "officer logged in",
		"username", req.Username,
		"request_id", middleware.GetRequestID(ctx),
	)
	shared.WriteJSON(w, http.StatusOK, loginResponse{AccessToken: token, TokenType: "Bearer"})
}
