// Package lifecycle implements the generic storage handle behind the
// schema catalog. One Store serves exactly one table; the SQL it runs is
// assembled from the table descriptor, so a new entity becomes
// lifecycle-managed by adding a schema descriptor, not by writing a repo.
package lifecycle

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store applies lifecycle mutations to one table.
type Store struct {
	q     postgres.Querier
	table schema.Table
}

// New creates a lifecycle store for the given table.
func New(q postgres.Querier, table schema.Table) *Store {
	return &Store{q: q, table: table}
}

// SoftDelete marks the record deleted and stamps the deletion time in a
// single atomic update, returning the updated row. Repeating the call on
// an already-deleted record succeeds and refreshes the timestamp, so the
// operation is idempotent from the caller's point of view.
func (s *Store) SoftDelete(ctx context.Context, id int64) (domain.Record, error) {
	if !s.table.SoftDeletable() {
		return nil, &domain.UnsupportedOperationError{
			Entity:     s.table.Entity,
			Capability: "soft-delete",
		}
	}

	query := builder.Update(s.table.Name).
		Set(s.table.DeletedColumn, true).
		Set(s.table.DeletedAtColumn, sq.Expr("now()")).
		Set(s.table.UpdatedAtColumn, sq.Expr("now()")).
		Where(sq.Eq{s.table.IDColumn: id}).
		Suffix("RETURNING " + s.table.ColumnList())

	return s.runReturning(ctx, query, id)
}

// ToggleActive flips the active/inactive marker in a single atomic update,
// returning the updated row.
func (s *Store) ToggleActive(ctx context.Context, id int64) (domain.Record, error) {
	if !s.table.Toggleable() {
		return nil, &domain.UnsupportedOperationError{
			Entity:     s.table.Entity,
			Capability: "status-toggle",
		}
	}

	query := builder.Update(s.table.Name).
		Set(s.table.ActiveColumn, sq.Expr("NOT "+s.table.ActiveColumn)).
		Set(s.table.UpdatedAtColumn, sq.Expr("now()")).
		Where(sq.Eq{s.table.IDColumn: id}).
		Suffix("RETURNING " + s.table.ColumnList())

	return s.runReturning(ctx, query, id)
}

func (s *Store) runReturning(ctx context.Context, query sq.UpdateBuilder, id int64) (domain.Record, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, s.table.Entity, id)
	}

	q := postgres.QuerierFromCtx(ctx, s.q)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.table.Entity, id)
	}

	rec, err := collectRecord(rows)
	if err != nil {
		return nil, postgres.MapError(err, s.table.Entity, id)
	}
	return rec, nil
}

// collectRecord reads exactly one row into a Record keyed by column name.
// Zero rows maps to pgx.ErrNoRows so MapError turns it into ErrNotFound.
func collectRecord(rows pgx.Rows) (domain.Record, error) {
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}

	values, err := rows.Values()
	if err != nil {
		return nil, err
	}

	fields := rows.FieldDescriptions()
	rec := make(domain.Record, len(fields))
	for i, fd := range fields {
		rec[fd.Name] = values[i]
	}

	rows.Close()
	return rec, rows.Err()
}
