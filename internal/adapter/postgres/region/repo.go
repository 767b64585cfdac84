// Package region implements the BusinessRegion repository using PostgreSQL.
package region

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides business region persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new business region repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a business region by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.BusinessRegion, error) {
	sql, args, err := builder.
		Select(schema.BusinessRegions.Columns...).
		From(schema.BusinessRegions.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "business_region", id)
	}

	var br domain.BusinessRegion
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &br, sql, args...); err != nil {
		return nil, postgres.MapError(err, "business_region", id)
	}
	return &br, nil
}

// List returns business regions ordered by code, excluding soft-deleted rows.
func (r *Repo) List(ctx context.Context) ([]domain.BusinessRegion, error) {
	sql, args, err := builder.
		Select(schema.BusinessRegions.Columns...).
		From(schema.BusinessRegions.Name).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "business_region", 0)
	}

	var regions []domain.BusinessRegion
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &regions, sql, args...); err != nil {
		return nil, postgres.MapError(err, "business_region", 0)
	}
	return regions, nil
}

// Create inserts a new business region and returns the persisted row.
func (r *Repo) Create(ctx context.Context, br *domain.BusinessRegion) (*domain.BusinessRegion, error) {
	sql, args, err := builder.
		Insert(schema.BusinessRegions.Name).
		Columns("name", "code", "is_active").
		Values(br.Name, br.Code, br.IsActive).
		Suffix("RETURNING " + schema.BusinessRegions.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "business_region", 0)
	}

	var created domain.BusinessRegion
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "business_region", 0)
	}
	return &created, nil
}
