package lifecycle

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/catalog"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// ToggleStatus flips the active/inactive marker on one record of the named
// module and returns the updated record. Workflow-bearing entities are
// rejected outright: their status field is governed by the workflow state
// machine, and allowing the blind toggle here would bypass transition
// legality checks. The guard runs even if such an entity were to declare
// the toggle capability.
func (s *Service) ToggleStatus(ctx context.Context, moduleName string, recordID int64) (domain.Record, error) {
	if recordID <= 0 {
		return nil, domain.NewValidationError("record_id", "must be a positive integer")
	}

	ent, err := s.resolver.Resolve(moduleName)
	if err != nil {
		return nil, err
	}

	if ent.Has(catalog.CapWorkflowStatus) {
		return nil, &domain.UnsupportedOperationError{
			Entity:     ent.CanonicalName,
			Capability: string(catalog.CapStatusToggle),
		}
	}
	if !ent.Has(catalog.CapStatusToggle) {
		return nil, &domain.UnsupportedOperationError{
			Entity:     ent.CanonicalName,
			Capability: string(catalog.CapStatusToggle),
		}
	}

	return ent.Store.ToggleActive(ctx, recordID)
}
