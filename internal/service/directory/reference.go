package directory

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// CreatePaymentMode adds a premium payment mode, active by default.
func (s *Service) CreatePaymentMode(ctx context.Context, name string) (*domain.PaymentMode, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	return s.paymentModes.Create(ctx, &domain.PaymentMode{Name: name, IsActive: true})
}

// ListPaymentModes returns payment modes, optionally including inactive ones.
func (s *Service) ListPaymentModes(ctx context.Context, includeInactive bool) ([]domain.PaymentMode, error) {
	return s.paymentModes.List(ctx, includeInactive)
}

// CreateBusinessRegion adds a sales territory, active by default.
func (s *Service) CreateBusinessRegion(ctx context.Context, name, code string) (*domain.BusinessRegion, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, domain.NewValidationError("code", "is required")
	}
	return s.regions.Create(ctx, &domain.BusinessRegion{
		Name:     name,
		Code:     code,
		IsActive: true,
	})
}

// ListBusinessRegions returns all sales territories.
func (s *Service) ListBusinessRegions(ctx context.Context) ([]domain.BusinessRegion, error) {
	return s.regions.List(ctx)
}
