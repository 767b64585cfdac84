package domain

import "time"

// AuditRecord is one entry in the administrative audit trail. It is written
// by the transport layer after a successful mutation; the lifecycle core
// itself never writes anything beyond the single target record.
type AuditRecord struct {
	ID        int64       `db:"id"`
	Module    string      `db:"module"`
	RecordID  int64       `db:"record_id"`
	Action    AuditAction `db:"action"`
	ActorID   *int64      `db:"actor_id"`
	Detail    *string     `db:"detail"`
	CreatedAt time.Time   `db:"created_at"`
}
