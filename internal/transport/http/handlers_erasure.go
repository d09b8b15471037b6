package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"markethub/internal/erasure/models"
	"markethub/internal/platform/middleware"
	id "markethub/pkg/domain"
	dErrors "markethub/pkg/domain-errors"
	"markethub/pkg/requestcontext"
)

// ErasureService is the workflow surface the transport depends on.
type ErasureService interface {
	GetImpact(ctx context.Context, userID id.UserID) (*models.ImpactSummary, error)
	RequestDeletion(ctx context.Context, userID id.UserID) (*models.RequestOutcome, error)
	ConfirmDeletion(ctx context.Context, requestID id.RequestID, userID id.UserID) (*models.ConfirmOutcome, error)
	CancelDeletion(ctx context.Context, requestID id.RequestID, userID id.UserID) (*models.AccountDeletionRequest, error)
	GetPendingRequest(ctx context.Context, userID id.UserID) (*models.AccountDeletionRequest, error)
	GetRequests(ctx context.Context, userID id.UserID) ([]*models.AccountDeletionRequest, error)
	GetAuditLogs(ctx context.Context, requestID id.RequestID) ([]*models.AccountDeletionAuditLog, error)
}

// ErasureHandler exposes the deletion workflow over HTTP. All routes require
// an authenticated caller; the workflow itself enforces ownership.
type ErasureHandler struct {
	service      ErasureService
	logger       *slog.Logger
	jwtValidator middleware.JWTValidator
}

func NewErasureHandler(service ErasureService, logger *slog.Logger, jwtValidator middleware.JWTValidator) *ErasureHandler {
	return &ErasureHandler{service: service, logger: logger, jwtValidator: jwtValidator}
}

// Register mounts the erasure routes on the router.
func (h *ErasureHandler) Register(r chi.Router) {
	sub := chi.NewRouter()
	sub.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
	sub.Get("/impact", h.handleImpact)
	sub.Post("/request", h.handleRequest)
	sub.Post("/{requestID}/confirm", h.handleConfirm)
	sub.Post("/{requestID}/cancel", h.handleCancel)
	sub.Get("/requests", h.handleListRequests)
	sub.Get("/pending", h.handlePending)
	sub.Get("/{requestID}/audit", h.handleAuditLogs)

	r.Mount("/account/deletion", sub)
}

func (h *ErasureHandler) handleImpact(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetImpact(r.Context(), requestcontext.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ErasureHandler) handleRequest(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.service.RequestDeletion(r.Context(), requestcontext.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if outcome.Blocked() {
		writeJSON(w, http.StatusUnprocessableEntity, outcome)
		return
	}
	writeJSON(w, http.StatusCreated, outcome)
}

func (h *ErasureHandler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	requestID, err := id.ParseRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		writeError(w, err)
		return
	}
	outcome, err := h.service.ConfirmDeletion(r.Context(), requestID, requestcontext.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if !outcome.Completed() {
		writeJSON(w, http.StatusUnprocessableEntity, outcome)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (h *ErasureHandler) handleCancel(w http.ResponseWriter, r *http.Request) {
	requestID, err := id.ParseRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		writeError(w, err)
		return
	}
	request, err := h.service.CancelDeletion(r.Context(), requestID, requestcontext.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *ErasureHandler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.GetRequests(r.Context(), requestcontext.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ErasureHandler) handlePending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.service.GetPendingRequest(r.Context(), requestcontext.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if pending == nil {
		writeError(w, dErrors.New(dErrors.CodeNotFound, "no pending deletion request"))
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

func (h *ErasureHandler) handleAuditLogs(w http.ResponseWriter, r *http.Request) {
	requestID, err := id.ParseRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		writeError(w, err)
		return
	}
	logs, err := h.service.GetAuditLogs(r.Context(), requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
