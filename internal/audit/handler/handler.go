// Package handler exposes the officer-facing audit case review endpoints.
// Everything here sits behind RequireOfficer; filers never see these routes.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hesabu/internal/audit"
	"hesabu/internal/audit/store"
	"hesabu/internal/platform/middleware"
	"hesabu/internal/transport/http/shared"
	id "hesabu/pkg/domain"
	dErrors "hesabu/pkg/domain-errors"
)

type casesResponse struct {
	Cases []*audit.AuditCase `json:"cases"`
	Count int                `json:"count"`
}

// Handler serves audit case listings to authenticated officers.
type Handler struct {
	cases     store.Store
	validator middleware.TokenValidator
	logger    *slog.Logger
}

func New(cases store.Store, validator middleware.TokenValidator, logger *slog.Logger) *Handler {
	return &Handler{cases: cases, validator: validator, logger: logger}
}

// Register mounts the review routes with the standard middleware stack plus
// the officer gate.
func (h *Handler) Register(r chi.Router) {
	r.Route("/audit/cases", func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.RequireOfficer(h.validator, h.logger))

		r.Get("/", h.listAll)
		r.Get("/{pin}", h.listByPIN)
	})
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cases, err := h.cases.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit cases",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list audit cases"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, casesResponse{Cases: cases, Count: len(cases)})
}

func (h *Handler) listByPIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pin, err := id.ParsePIN(chi.URLParam(r, "pin"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	level, err := id.ParseRiskLevel(r.URL.Query().Get("level"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	cases, err := h.cases.ListByPIN(ctx, pin, level)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit cases for taxpayer",
			"error", err,
			"pin", pin,
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list audit cases"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, casesResponse{Cases: cases, Count: len(cases)})
}
