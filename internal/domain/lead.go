package domain

import "time"

// Lead is a sales prospect. Leads are workflow-bearing: Status is governed
// by the transition table in workflow.go and must only be mutated through
// the workflow service's conditional update, never by direct assignment.
type Lead struct {
	ID           int64      `db:"id"`
	CustomerName string     `db:"customer_name"`
	Phone        string     `db:"phone"`
	Email        *string    `db:"email"`
	ProductID    *int64     `db:"product_id"`
	CityID       *int64     `db:"city_id"`
	Status       LeadStatus `db:"status"`
	AssignedTo   *int64     `db:"assigned_to"`
	FollowUpAt   *time.Time `db:"follow_up_at"`
	Notes        *string    `db:"notes"`
	IsDeleted    bool       `db:"is_deleted"`
	DeletedAt    *time.Time `db:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// LeadFilter narrows List queries. Zero values mean "no constraint".
type LeadFilter struct {
	Status     LeadStatus
	AssignedTo int64
	Limit      int
	Offset     int
}
