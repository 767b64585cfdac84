// Package product implements the Product repository using PostgreSQL.
package product

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new product repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a product by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	sql, args, err := builder.
		Select(schema.Products.Columns...).
		From(schema.Products.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "product", id)
	}

	var p domain.Product
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &p, sql, args...); err != nil {
		return nil, postgres.MapError(err, "product", id)
	}
	return &p, nil
}

// List returns products in a category, or all categories when category is
// empty. Soft-deleted rows are excluded.
func (r *Repo) List(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error) {
	query := builder.
		Select(schema.Products.Columns...).
		From(schema.Products.Name).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("name ASC")
	if category != "" {
		query = query.Where(sq.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "product", 0)
	}

	var products []domain.Product
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &products, sql, args...); err != nil {
		return nil, postgres.MapError(err, "product", 0)
	}
	return products, nil
}

// Create inserts a new product and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	sql, args, err := builder.
		Insert(schema.Products.Name).
		Columns("name", "category", "is_active").
		Values(p.Name, p.Category, p.IsActive).
		Suffix("RETURNING " + schema.Products.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "product", 0)
	}

	var created domain.Product
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "product", 0)
	}
	return &created, nil
}

// Update modifies name and category for the given product.
func (r *Repo) Update(ctx context.Context, id int64, name string, category domain.ProductCategory) (*domain.Product, error) {
	sql, args, err := builder.
		Update(schema.Products.Name).
		Set("name", name).
		Set("category", category).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + schema.Products.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "product", id)
	}

	var updated domain.Product
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "product", id)
	}
	return &updated, nil
}
