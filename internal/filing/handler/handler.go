// Package handler exposes the filer-facing HTTP endpoints: open a session,
// submit answers one at a time. Responses carry only the workflow outcome;
// nothing about the audit pipeline ever appears here.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hesabu/internal/filing/service"
	"hesabu/internal/platform/middleware"
	"hesabu/internal/transport/http/shared"
	id "hesabu/pkg/domain"
	dErrors "hesabu/pkg/domain-errors"
)

type startRequest struct {
	PIN        string `json:"pin"`
	FilingType string `json:"filing_type"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// Handler serves the filing workflow over HTTP.
type Handler struct {
	service *service.Service
	logger  *slog.Logger
}

func New(service *service.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the filing routes with the standard middleware stack.
func (h *Handler) Register(r chi.Router) {
	r.Route("/filings", func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.ContentTypeJSON)

		r.Post("/", h.start)
		r.Post("/{sessionID}/answers", h.submitAnswer)
	})
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	pin, err := id.ParsePIN(req.PIN)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	filingType, err := id.ParseFilingType(req.FilingType)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	result, err := h.service.Start(ctx, pin, filingType)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to start filing session",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, err := id.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	outcome, err := h.service.SubmitAnswer(ctx, sessionID, req.Answer)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, outcome)
}
