// Package directory implements CRUD for the brokerage's reference data:
// cities, couriers, products, payment modes and business regions. These
// modules are deliberately thin; their lifecycle (soft delete, status
// toggle) is handled by the generic lifecycle service, not here.
package directory

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cityRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.City, error)
	List(ctx context.Context, includeInactive bool) ([]domain.City, error)
	Create(ctx context.Context, c *domain.City) (*domain.City, error)
	Update(ctx context.Context, id int64, name, state string) (*domain.City, error)
}

type courierRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (*domain.Courier, error)
	Update(ctx context.Context, id int64, name string, trackingURL, phone *string) (*domain.Courier, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, name string, category domain.ProductCategory) (*domain.Product, error)
}

type paymentModeRepo interface {
	List(ctx context.Context, includeInactive bool) ([]domain.PaymentMode, error)
	Create(ctx context.Context, m *domain.PaymentMode) (*domain.PaymentMode, error)
}

type regionRepo interface {
	List(ctx context.Context) ([]domain.BusinessRegion, error)
	Create(ctx context.Context, br *domain.BusinessRegion) (*domain.BusinessRegion, error)
}

// Service provides reference data CRUD.
type Service struct {
	cities       cityRepo
	couriers     courierRepo
	products     productRepo
	paymentModes paymentModeRepo
	regions      regionRepo
}

// New creates the directory service.
func New(cities cityRepo, couriers courierRepo, products productRepo,
	paymentModes paymentModeRepo, regions regionRepo) *Service {
	return &Service{
		cities:       cities,
		couriers:     couriers,
		products:     products,
		paymentModes: paymentModes,
		regions:      regions,
	}
}

func requireName(name string) error {
	if name == "" {
		return domain.NewValidationError("name", "is required")
	}
	return nil
}

func requireID(id int64, field string) error {
	if id <= 0 {
		return domain.NewValidationError(field, "must be a positive integer")
	}
	return nil
}
