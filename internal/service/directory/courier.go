package directory

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// CourierInput carries the writable fields of a courier.
type CourierInput struct {
	Name        string
	TrackingURL *string
	Phone       *string
}

// CreateCourier adds a delivery partner, active by default.
func (s *Service) CreateCourier(ctx context.Context, in CourierInput) (*domain.Courier, error) {
	if err := requireName(in.Name); err != nil {
		return nil, err
	}
	return s.couriers.Create(ctx, &domain.Courier{
		Name:        in.Name,
		TrackingURL: in.TrackingURL,
		Phone:       in.Phone,
		IsActive:    true,
	})
}

// GetCourier returns a courier by id.
func (s *Service) GetCourier(ctx context.Context, id int64) (*domain.Courier, error) {
	if err := requireID(id, "id"); err != nil {
		return nil, err
	}
	return s.couriers.GetByID(ctx, id)
}

// ListCouriers returns couriers, optionally including inactive ones.
func (s *Service) ListCouriers(ctx context.Context, includeInactive bool) ([]domain.Courier, error) {
	return s.couriers.List(ctx, includeInactive)
}

// UpdateCourier modifies a courier's contact and tracking details.
func (s *Service) UpdateCourier(ctx context.Context, id int64, in CourierInput) (*domain.Courier, error) {
	if err := requireID(id, "id"); err != nil {
		return nil, err
	}
	if err := requireName(in.Name); err != nil {
		return nil, err
	}
	return s.couriers.Update(ctx, id, in.Name, in.TrackingURL, in.Phone)
}
