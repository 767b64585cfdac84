package directory

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// CityInput carries the writable fields of a city.
type CityInput struct {
	Name  string
	State string
}

// CreateCity adds a serviceable city, active by default.
func (s *Service) CreateCity(ctx context.Context, in CityInput) (*domain.City, error) {
	if err := requireName(in.Name); err != nil {
		return nil, err
	}
	if in.State == "" {
		return nil, domain.NewValidationError("state", "is required")
	}
	return s.cities.Create(ctx, &domain.City{
		Name:     in.Name,
		State:    in.State,
		IsActive: true,
	})
}

// GetCity returns a city by id.
func (s *Service) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	if err := requireID(id, "id"); err != nil {
		return nil, err
	}
	return s.cities.GetByID(ctx, id)
}

// ListCities returns cities, optionally including inactive ones.
func (s *Service) ListCities(ctx context.Context, includeInactive bool) ([]domain.City, error) {
	return s.cities.List(ctx, includeInactive)
}

// UpdateCity renames a city or moves it to a different state.
func (s *Service) UpdateCity(ctx context.Context, id int64, in CityInput) (*domain.City, error) {
	if err := requireID(id, "id"); err != nil {
		return nil, err
	}
	if err := requireName(in.Name); err != nil {
		return nil, err
	}
	return s.cities.Update(ctx, id, in.Name, in.State)
}
