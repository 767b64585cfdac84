// Package courier implements the Courier repository using PostgreSQL.
package courier

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides courier persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new courier repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a courier by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Courier, error) {
	sql, args, err := builder.
		Select(schema.Couriers.Columns...).
		From(schema.Couriers.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "courier", id)
	}

	var c domain.Courier
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "courier", id)
	}
	return &c, nil
}

// List returns couriers ordered by name, excluding soft-deleted rows.
func (r *Repo) List(ctx context.Context, includeInactive bool) ([]domain.Courier, error) {
	query := builder.
		Select(schema.Couriers.Columns...).
		From(schema.Couriers.Name).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("name ASC")
	if !includeInactive {
		query = query.Where(sq.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "courier", 0)
	}

	var couriers []domain.Courier
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &couriers, sql, args...); err != nil {
		return nil, postgres.MapError(err, "courier", 0)
	}
	return couriers, nil
}

// Create inserts a new courier and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Courier) (*domain.Courier, error) {
	sql, args, err := builder.
		Insert(schema.Couriers.Name).
		Columns("name", "tracking_url", "phone", "is_active").
		Values(c.Name, c.TrackingURL, c.Phone, c.IsActive).
		Suffix("RETURNING " + schema.Couriers.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "courier", 0)
	}

	var created domain.Courier
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "courier", 0)
	}
	return &created, nil
}

// Update modifies name, tracking URL and phone for the given courier.
func (r *Repo) Update(ctx context.Context, id int64, name string, trackingURL, phone *string) (*domain.Courier, error) {
	sql, args, err := builder.
		Update(schema.Couriers.Name).
		Set("name", name).
		Set("tracking_url", trackingURL).
		Set("phone", phone).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + schema.Couriers.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "courier", id)
	}

	var updated domain.Courier
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "courier", id)
	}
	return &updated, nil
}
