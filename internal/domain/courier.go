package domain

import "time"

// Courier is a delivery partner used for policy document dispatch.
type Courier struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	TrackingURL *string    `db:"tracking_url"`
	Phone       *string    `db:"phone"`
	IsActive    bool       `db:"is_active"`
	IsDeleted   bool       `db:"is_deleted"`
	DeletedAt   *time.Time `db:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
