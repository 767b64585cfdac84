package domain

import "time"

// Product is an insurance product offered through the brokerage.
type Product struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	Category  ProductCategory `db:"category"`
	IsActive  bool            `db:"is_active"`
	IsDeleted bool            `db:"is_deleted"`
	DeletedAt *time.Time      `db:"deleted_at"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
