package domain

import "time"

// City is a serviceable city in the brokerage's coverage area.
type City struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	State     string     `db:"state"`
	IsActive  bool       `db:"is_active"`
	IsDeleted bool       `db:"is_deleted"`
	DeletedAt *time.Time `db:"deleted_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
