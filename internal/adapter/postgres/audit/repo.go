// Package audit implements the audit trail repository using PostgreSQL.
package audit

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "audit_log"

var columns = []string{"id", "module", "record_id", "action", "actor_id", "detail", "created_at"}

// Repo provides audit trail persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new audit repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create appends one audit record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error) {
	sql, args, err := builder.
		Insert(table).
		Columns("module", "record_id", "action", "actor_id", "detail").
		Values(rec.Module, rec.RecordID, rec.Action, rec.ActorID, rec.Detail).
		Suffix("RETURNING id, module, record_id, action, actor_id, detail, created_at").
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit", 0)
	}

	var created domain.AuditRecord
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit", 0)
	}
	return created, nil
}

// ListByRecord returns the audit history for one record, newest first.
func (r *Repo) ListByRecord(ctx context.Context, module string, recordID int64, limit int) ([]domain.AuditRecord, error) {
	query := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"module": module, "record_id": recordID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "audit", recordID)
	}

	var records []domain.AuditRecord
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &records, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit", recordID)
	}
	return records, nil
}
