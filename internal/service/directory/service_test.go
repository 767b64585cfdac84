package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (func fields)
// ===========================================================================

type mockCityRepo struct {
	CreateFunc func(ctx context.Context, c *domain.City) (*domain.City, error)
}

func (m *mockCityRepo) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	return &domain.City{ID: id}, nil
}

func (m *mockCityRepo) List(ctx context.Context, includeInactive bool) ([]domain.City, error) {
	return nil, nil
}

func (m *mockCityRepo) Create(ctx context.Context, c *domain.City) (*domain.City, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.ID = 1
	return c, nil
}

func (m *mockCityRepo) Update(ctx context.Context, id int64, name, state string) (*domain.City, error) {
	return &domain.City{ID: id, Name: name, State: state}, nil
}

type mockProductRepo struct{}

func (mockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}

func (mockProductRepo) List(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error) {
	return nil, nil
}

func (mockProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	p.ID = 1
	return p, nil
}

func (mockProductRepo) Update(ctx context.Context, id int64, name string, category domain.ProductCategory) (*domain.Product, error) {
	return &domain.Product{ID: id, Name: name, Category: category}, nil
}

func newService(cities *mockCityRepo) *Service {
	return New(cities, nil, mockProductRepo{}, nil, nil)
}

func TestService_CreateCity(t *testing.T) {
	svc := newService(&mockCityRepo{})

	c, err := svc.CreateCity(context.Background(), CityInput{Name: "Pune", State: "Maharashtra"})

	require.NoError(t, err)
	assert.True(t, c.IsActive, "new cities start active")
}

func TestService_CreateCity_Validation(t *testing.T) {
	svc := newService(&mockCityRepo{
		CreateFunc: func(ctx context.Context, c *domain.City) (*domain.City, error) {
			t.Fatal("create must not be called on invalid input")
			return nil, nil
		},
	})

	_, err := svc.CreateCity(context.Background(), CityInput{Name: "", State: "Maharashtra"})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = svc.CreateCity(context.Background(), CityInput{Name: "Pune", State: ""})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestService_CreateProduct_UnknownCategory(t *testing.T) {
	svc := newService(&mockCityRepo{})

	_, err := svc.CreateProduct(context.Background(), ProductInput{Name: "Two Wheeler", Category: "pets"})

	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestService_GetCity_InvalidID(t *testing.T) {
	svc := newService(&mockCityRepo{})

	_, err := svc.GetCity(context.Background(), 0)

	assert.True(t, errors.Is(err, domain.ErrValidation))
}
