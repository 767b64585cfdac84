// Package paymentmode implements the PaymentMode repository using PostgreSQL.
// Payment modes are reference data with no soft delete; rows are only ever
// deactivated.
package paymentmode

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides payment mode persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new payment mode repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a payment mode by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.PaymentMode, error) {
	sql, args, err := builder.
		Select(schema.PaymentModes.Columns...).
		From(schema.PaymentModes.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "payment_mode", id)
	}

	var m domain.PaymentMode
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &m, sql, args...); err != nil {
		return nil, postgres.MapError(err, "payment_mode", id)
	}
	return &m, nil
}

// List returns payment modes ordered by name.
func (r *Repo) List(ctx context.Context, includeInactive bool) ([]domain.PaymentMode, error) {
	query := builder.
		Select(schema.PaymentModes.Columns...).
		From(schema.PaymentModes.Name).
		OrderBy("name ASC")
	if !includeInactive {
		query = query.Where(sq.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "payment_mode", 0)
	}

	var modes []domain.PaymentMode
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &modes, sql, args...); err != nil {
		return nil, postgres.MapError(err, "payment_mode", 0)
	}
	return modes, nil
}

// Create inserts a new payment mode and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.PaymentMode) (*domain.PaymentMode, error) {
	sql, args, err := builder.
		Insert(schema.PaymentModes.Name).
		Columns("name", "is_active").
		Values(m.Name, m.IsActive).
		Suffix("RETURNING " + schema.PaymentModes.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "payment_mode", 0)
	}

	var created domain.PaymentMode
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "payment_mode", 0)
	}
	return &created, nil
}
