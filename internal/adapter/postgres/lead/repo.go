// Package lead implements the Lead repository using PostgreSQL.
package lead

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides lead persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new lead repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a lead by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	sql, args, err := builder.
		Select(schema.Leads.Columns...).
		From(schema.Leads.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	var l domain.Lead
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &l, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}
	return &l, nil
}

// List returns leads matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error) {
	query := builder.
		Select(schema.Leads.Columns...).
		From(schema.Leads.Name).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("created_at DESC")
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}
	if filter.AssignedTo != 0 {
		query = query.Where(sq.Eq{"assigned_to": filter.AssignedTo})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lead", 0)
	}

	var leads []domain.Lead
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &leads, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lead", 0)
	}
	return leads, nil
}

// Create inserts a new lead in status pending and returns the persisted row.
func (r *Repo) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	sql, args, err := builder.
		Insert(schema.Leads.Name).
		Columns("customer_name", "phone", "email", "product_id", "city_id",
			"status", "assigned_to", "follow_up_at", "notes").
		Values(l.CustomerName, l.Phone, l.Email, l.ProductID, l.CityID,
			domain.LeadStatusPending, l.AssignedTo, l.FollowUpAt, l.Notes).
		Suffix("RETURNING " + schema.Leads.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lead", 0)
	}

	var created domain.Lead
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lead", 0)
	}
	return &created, nil
}

// UpdateStatus moves a lead from one workflow status to another with a
// compare-and-swap update: the write is conditioned on the status column
// still holding the value the caller read. When the condition fails on a
// record that still exists, the lead changed under the caller and
// domain.ErrConcurrentModification is returned; the caller must re-read
// and decide, this layer never retries.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, from, to domain.LeadStatus) (*domain.Lead, error) {
	sql, args, err := builder.
		Update(schema.Leads.Name).
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + schema.Leads.ColumnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	var updated domain.Lead
	q := postgres.QuerierFromCtx(ctx, r.q)
	err = pgxscan.Get(ctx, q, &updated, sql, args...)
	if err == nil {
		return &updated, nil
	}

	mapped := postgres.MapError(err, "lead", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}

	// Zero rows: either the lead is gone or it lost the race. Distinguish
	// by re-reading.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("lead %d: status changed from %s: %w", id, from, domain.ErrConcurrentModification)
}
