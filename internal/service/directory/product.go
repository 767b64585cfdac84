package directory

import (
	"context"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name     string
	Category domain.ProductCategory
}

// CreateProduct adds an insurance product, active by default.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := requireName(in.Name); err != nil {
		return nil, err
	}
	if !in.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown product category "+in.Category.String())
	}
	return s.products.Create(ctx, &domain.Product{
		Name:     in.Name,
		Category: in.Category,
		IsActive: true,
	})
}

// GetProduct returns a product by id.
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if err := requireID(id, "id"); err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, id)
}

// ListProducts returns products, narrowed to one category when given.
func (s *Service) ListProducts(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error) {
	if category != "" && !category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown product category "+category.String())
	}
	return s.products.List(ctx, category)
}

// UpdateProduct renames or recategorizes a product.
func (s *Service) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*domain.Product, error) {
	if err := requireID(id, "id"); err != nil {
		return nil, err
	}
	if err := requireName(in.Name); err != nil {
		return nil, err
	}
	if !in.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown product category "+in.Category.String())
	}
	return s.products.Update(ctx, id, in.Name, in.Category)
}
