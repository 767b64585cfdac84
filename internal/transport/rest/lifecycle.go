package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/insurdesk/brokerage-backend/internal/domain"
	"github.com/insurdesk/brokerage-backend/internal/transport/middleware"
	"github.com/insurdesk/brokerage-backend/pkg/ctxutil"
)

type lifecycleService interface {
	SoftDelete(ctx context.Context, moduleName string, recordID int64) (domain.Record, error)
	ToggleStatus(ctx context.Context, moduleName string, recordID int64) (domain.Record, error)
}

type auditWriter interface {
	Create(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error)
}

type auditLog interface {
	auditWriter
	ListByRecord(ctx context.Context, module string, recordID int64, limit int) ([]domain.AuditRecord, error)
}

// LifecycleHandler serves the generic admin lifecycle endpoints. The module
// name in the path is resolved by the service; the handler never inspects
// it beyond passing it through.
type LifecycleHandler struct {
	svc   lifecycleService
	audit auditLog
	log   *slog.Logger
}

// NewLifecycleHandler creates a LifecycleHandler.
func NewLifecycleHandler(svc lifecycleService, audit auditLog, logger *slog.Logger) *LifecycleHandler {
	return &LifecycleHandler{
		svc:   svc,
		audit: audit,
		log:   logger.With("handler", "lifecycle"),
	}
}

// SoftDelete handles DELETE /api/v1/admin/{module}/{id}.
func (h *LifecycleHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	module := r.PathValue("module")

	rec, err := h.svc.SoftDelete(r.Context(), module, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.writeAudit(r.Context(), module, rec.ID(), domain.AuditActionSoftDelete)
	writeJSON(w, http.StatusOK, rec)
}

// ToggleStatus handles POST /api/v1/admin/{module}/{id}/toggle.
func (h *LifecycleHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	module := r.PathValue("module")

	rec, err := h.svc.ToggleStatus(r.Context(), module, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.writeAudit(r.Context(), module, rec.ID(), domain.AuditActionToggleStatus)
	writeJSON(w, http.StatusOK, rec)
}

// writeAudit records the mutation in the audit trail. The mutation already
// committed, so a failed audit write is logged but does not fail the
// request.
func (h *LifecycleHandler) writeAudit(ctx context.Context, module string, recordID int64, action domain.AuditAction) {
	rec := domain.AuditRecord{
		Module:   module,
		RecordID: recordID,
		Action:   action,
	}
	if actorID, ok := ctxutil.ActorIDFromCtx(ctx); ok {
		rec.ActorID = &actorID
	}
	if _, err := h.audit.Create(ctx, rec); err != nil {
		h.log.ErrorContext(ctx, "audit write failed",
			slog.String("module", module),
			slog.Int64("record_id", recordID),
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}

// auditTrailResponse is one audit entry in API shape.
type auditTrailResponse struct {
	ID        int64   `json:"id"`
	Module    string  `json:"module"`
	RecordID  int64   `json:"recordId"`
	Action    string  `json:"action"`
	ActorID   *int64  `json:"actorId,omitempty"`
	Detail    *string `json:"detail,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// AuditTrail handles GET /api/v1/admin/{module}/{id}/audit.
func (h *LifecycleHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	module := r.PathValue("module")

	records, err := h.audit.ListByRecord(r.Context(), module, id, queryInt(r, "limit", 50))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]auditTrailResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, auditTrailResponse{
			ID:        rec.ID,
			Module:    rec.Module,
			RecordID:  rec.RecordID,
			Action:    rec.Action.String(),
			ActorID:   rec.ActorID,
			Detail:    rec.Detail,
			CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
