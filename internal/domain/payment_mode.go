package domain

import "time"

// PaymentMode is a way a customer can pay a premium (cash, cheque, UPI...).
// Payment modes are reference data referenced by historical policies, so
// they are never deleted, only deactivated.
type PaymentMode struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
