// Package workflow is the authoritative gate for lead status changes. All
// transition legality is answered by the single table in the domain
// package; this service adds the read-validate-write sequence and the
// compare-and-swap persistence that keeps concurrent transitions from both
// succeeding.
package workflow

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// leadRepo is the persistence the workflow service needs.
type leadRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	// UpdateStatus must condition the write on the status still holding
	// `from` and return domain.ErrConcurrentModification when it does not.
	UpdateStatus(ctx context.Context, id int64, from, to domain.LeadStatus) (*domain.Lead, error)
}

// Service applies and queries lead workflow transitions.
type Service struct {
	leads leadRepo
}

// New creates the workflow service.
func New(leads leadRepo) *Service {
	return &Service{leads: leads}
}

// ApplyTransition moves a lead to the target status if the transition is
// legal from the lead's current status. Terminal statuses are absorbing
// and fail with ErrTransitionLocked; targets outside the allowed set fail
// with ErrIllegalTransition carrying the allowed set. The write is a CAS
// update: if the lead's status changed between the read and the write the
// call fails with ErrConcurrentModification and is not retried here.
func (s *Service) ApplyTransition(ctx context.Context, leadID int64, target domain.LeadStatus) (*domain.Lead, error) {
	if leadID <= 0 {
		return nil, domain.NewValidationError("lead_id", "must be a positive integer")
	}
	if !target.IsValid() {
		return nil, domain.NewValidationError("status", "unknown lead status "+target.String())
	}

	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	current := lead.Status
	if current.IsTerminal() {
		return nil, &domain.TransitionLockedError{Status: current}
	}
	if !current.CanTransitionTo(target) {
		return nil, &domain.IllegalTransitionError{
			From:    current,
			To:      target,
			Allowed: current.AllowedTransitions(),
		}
	}

	return s.leads.UpdateStatus(ctx, leadID, current, target)
}

// ValidNextStates returns the statuses the lead may legally move to. Pure
// query: no mutation, empty set for terminal statuses. The result comes
// from the same transition table ApplyTransition consults, so the two can
// never disagree.
func (s *Service) ValidNextStates(ctx context.Context, leadID int64) ([]domain.LeadStatus, error) {
	if leadID <= 0 {
		return nil, domain.NewValidationError("lead_id", "must be a positive integer")
	}

	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	return lead.Status.AllowedTransitions(), nil
}
