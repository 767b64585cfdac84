// Package city implements the City repository using PostgreSQL.
package city

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides city persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new city repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a city by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	sql, args, err := builder.
		Select(schema.Cities.Columns...).
		From(schema.Cities.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "city", id)
	}

	var c domain.City
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "city", id)
	}
	return &c, nil
}

// List returns cities ordered by name. Soft-deleted rows are excluded.
func (r *Repo) List(ctx context.Context, includeInactive bool) ([]domain.City, error) {
	query := builder.
		Select(schema.Cities.Columns...).
		From(schema.Cities.Name).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("name ASC")
	if !includeInactive {
		query = query.Where(sq.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "city", 0)
	}

	var cities []domain.City
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &cities, sql, args...); err != nil {
		return nil, postgres.MapError(err, "city", 0)
	}
	return cities, nil
}

// Create inserts a new city and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.City) (*domain.City, error) {
	sql, args, err := builder.
		Insert(schema.Cities.Name).
		Columns("name", "state", "is_active").
		Values(c.Name, c.State, c.IsActive).
		Suffix("RETURNING " + schema.Cities.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "city", 0)
	}

	var created domain.City
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "city", 0)
	}
	return &created, nil
}

// Update modifies name and state for the given city.
func (r *Repo) Update(ctx context.Context, id int64, name, state string) (*domain.City, error) {
	sql, args, err := builder.
		Update(schema.Cities.Name).
		Set("name", name).
		Set("state", state).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + schema.Cities.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "city", id)
	}

	var updated domain.City
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "city", id)
	}
	return &updated, nil
}
