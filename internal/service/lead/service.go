// Package lead implements lead intake and listing. Status changes are NOT
// handled here — they go through the workflow service exclusively.
package lead

import (
	"context"
	"time"

	"github.com/insurdesk/brokerage-backend/internal/domain"
	"github.com/insurdesk/brokerage-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type leadRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error)
	Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
}

type auditRepo interface {
	Create(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides lead intake and queries.
type Service struct {
	leads leadRepo
	audit auditRepo
	tx    txManager
}

// New creates the lead service.
func New(leads leadRepo, audit auditRepo, tx txManager) *Service {
	return &Service{leads: leads, audit: audit, tx: tx}
}

// CreateInput carries the fields of a new lead. Status is not an input:
// every lead starts in pending.
type CreateInput struct {
	CustomerName string
	Phone        string
	Email        *string
	ProductID    *int64
	CityID       *int64
	AssignedTo   *int64
	FollowUpAt   *time.Time
	Notes        *string
}

// Create registers a new lead in status pending and writes the intake
// audit record in the same transaction.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Lead, error) {
	if in.CustomerName == "" {
		return nil, domain.NewValidationError("customer_name", "is required")
	}
	if in.Phone == "" {
		return nil, domain.NewValidationError("phone", "is required")
	}

	var created *domain.Lead
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.leads.Create(ctx, &domain.Lead{
			CustomerName: in.CustomerName,
			Phone:        in.Phone,
			Email:        in.Email,
			ProductID:    in.ProductID,
			CityID:       in.CityID,
			AssignedTo:   in.AssignedTo,
			FollowUpAt:   in.FollowUpAt,
			Notes:        in.Notes,
		})
		if err != nil {
			return err
		}
		created = l

		rec := domain.AuditRecord{
			Module:   "Lead",
			RecordID: l.ID,
			Action:   domain.AuditActionCreate,
		}
		if actorID, ok := ctxutil.ActorIDFromCtx(ctx); ok {
			rec.ActorID = &actorID
		}
		_, err = s.audit.Create(ctx, rec)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID returns a lead by id.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}
	return s.leads.GetByID(ctx, id)
}

// List returns leads matching the filter.
func (s *Service) List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown lead status "+filter.Status.String())
	}
	return s.leads.List(ctx, filter)
}
