package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/insurdesk/brokerage-backend/internal/domain"
	"github.com/insurdesk/brokerage-backend/internal/service/lead"
	"github.com/insurdesk/brokerage-backend/internal/transport/middleware"
	"github.com/insurdesk/brokerage-backend/pkg/ctxutil"
)

type leadService interface {
	Create(ctx context.Context, in lead.CreateInput) (*domain.Lead, error)
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error)
}

type workflowService interface {
	ApplyTransition(ctx context.Context, leadID int64, target domain.LeadStatus) (*domain.Lead, error)
	ValidNextStates(ctx context.Context, leadID int64) ([]domain.LeadStatus, error)
}

// LeadHandler serves lead REST endpoints. Status changes go through the
// workflow service only; there is no generic update route that could touch
// the status column.
type LeadHandler struct {
	svc      leadService
	workflow workflowService
	audit    auditWriter
	log      *slog.Logger

	defaultLimit int
	maxLimit     int
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(svc leadService, workflow workflowService, audit auditWriter,
	logger *slog.Logger, defaultLimit, maxLimit int) *LeadHandler {
	return &LeadHandler{
		svc:          svc,
		workflow:     workflow,
		audit:        audit,
		log:          logger.With("handler", "lead"),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

type createLeadRequest struct {
	CustomerName string     `json:"customerName"`
	Phone        string     `json:"phone"`
	Email        *string    `json:"email,omitempty"`
	ProductID    *int64     `json:"productId,omitempty"`
	CityID       *int64     `json:"cityId,omitempty"`
	AssignedTo   *int64     `json:"assignedTo,omitempty"`
	FollowUpAt   *time.Time `json:"followUpAt,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

type transitionRequest struct {
	Status string `json:"status"`
}

type leadResponse struct {
	ID           int64      `json:"id"`
	CustomerName string     `json:"customerName"`
	Phone        string     `json:"phone"`
	Email        *string    `json:"email,omitempty"`
	ProductID    *int64     `json:"productId,omitempty"`
	CityID       *int64     `json:"cityId,omitempty"`
	Status       string     `json:"status"`
	AssignedTo   *int64     `json:"assignedTo,omitempty"`
	FollowUpAt   *time.Time `json:"followUpAt,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type transitionsResponse struct {
	Status      string   `json:"status"`
	Transitions []string `json:"transitions"`
}

// Create handles POST /api/v1/leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.svc.Create(r.Context(), lead.CreateInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		ProductID:    req.ProductID,
		CityID:       req.CityID,
		AssignedTo:   req.AssignedTo,
		FollowUpAt:   req.FollowUpAt,
		Notes:        req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLeadResponse(l))
}

// Get handles GET /api/v1/leads/{id}.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLeadResponse(l))
}

// List handles GET /api/v1/leads?status=pending&assignedTo=7&limit=50&offset=0.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	limit := queryInt(r, "limit", h.defaultLimit)
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	filter := domain.LeadFilter{
		Status:     domain.LeadStatus(r.URL.Query().Get("status")),
		AssignedTo: int64(queryInt(r, "assignedTo", 0)),
		Limit:      limit,
		Offset:     queryInt(r, "offset", 0),
	}

	leads, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]leadResponse, 0, len(leads))
	for i := range leads {
		out = append(out, toLeadResponse(&leads[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Transition handles PATCH /api/v1/leads/{id}/status.
func (h *LeadHandler) Transition(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.workflow.ApplyTransition(r.Context(), id, domain.LeadStatus(req.Status))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.writeAudit(r.Context(), l, req.Status)
	writeJSON(w, http.StatusOK, toLeadResponse(l))
}

// Transitions handles GET /api/v1/leads/{id}/transitions.
func (h *LeadHandler) Transitions(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	next, err := h.workflow.ValidNextStates(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := transitionsResponse{
		Status:      l.Status.String(),
		Transitions: make([]string, 0, len(next)),
	}
	for _, st := range next {
		out.Transitions = append(out.Transitions, st.String())
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) writeAudit(ctx context.Context, l *domain.Lead, target string) {
	detail := fmt.Sprintf("status -> %s", target)
	rec := domain.AuditRecord{
		Module:   "Lead",
		RecordID: l.ID,
		Action:   domain.AuditActionTransition,
		Detail:   &detail,
	}
	if actorID, ok := ctxutil.ActorIDFromCtx(ctx); ok {
		rec.ActorID = &actorID
	}
	if _, err := h.audit.Create(ctx, rec); err != nil {
		h.log.ErrorContext(ctx, "audit write failed",
			slog.Int64("record_id", l.ID),
			slog.String("error", err.Error()),
		)
	}
}

func toLeadResponse(l *domain.Lead) leadResponse {
	return leadResponse{
		ID:           l.ID,
		CustomerName: l.CustomerName,
		Phone:        l.Phone,
		Email:        l.Email,
		ProductID:    l.ProductID,
		CityID:       l.CityID,
		Status:       l.Status.String(),
		AssignedTo:   l.AssignedTo,
		FollowUpAt:   l.FollowUpAt,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
