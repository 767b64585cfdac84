package domain

import "time"

// BusinessRegion groups cities into a sales territory.
type BusinessRegion struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Code      string     `db:"code"`
	IsActive  bool       `db:"is_active"`
	IsDeleted bool       `db:"is_deleted"`
	DeletedAt *time.Time `db:"deleted_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
