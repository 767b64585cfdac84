package lifecycle

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/catalog"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// SoftDelete marks one record of the named module deleted and returns the
// updated record. The capability is checked before any write is attempted;
// entities without a soft-delete marker fail with ErrUnsupportedOperation
// and the record is left untouched. The operation is idempotent: deleting
// an already-deleted record succeeds and refreshes the deletion timestamp.
func (s *Service) SoftDelete(ctx context.Context, moduleName string, recordID int64) (domain.Record, error) {
	if recordID <= 0 {
		return nil, domain.NewValidationError("record_id", "must be a positive integer")
	}

	ent, err := s.resolver.Resolve(moduleName)
	if err != nil {
		return nil, err
	}

	if !ent.Has(catalog.CapSoftDelete) {
		return nil, &domain.UnsupportedOperationError{
			Entity:     ent.CanonicalName,
			Capability: string(catalog.CapSoftDelete),
		}
	}

	return ent.Store.SoftDelete(ctx, recordID)
}
