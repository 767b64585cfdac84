// Package schema is the static description of every lifecycle-managed
// table. The schema catalog is built from these descriptors at startup, so
// entity resolution never depends on runtime reflection: a misspelled
// module name fails fast in the resolver instead of deep inside a query.
package schema

import "strings"

// Table describes one lifecycle-managed table. Capability columns left
// empty mean the table does not support that capability.
type Table struct {
	// Entity is the code-facing canonical name ("City").
	Entity string
	// Name is the storage-facing table name ("cities").
	Name string
	// Columns lists every column, in declaration order.
	Columns []string

	IDColumn        string
	UpdatedAtColumn string

	// DeletedColumn and DeletedAtColumn implement soft delete.
	DeletedColumn   string
	DeletedAtColumn string

	// ActiveColumn implements the active/inactive toggle.
	ActiveColumn string

	// WorkflowStatusColumn marks workflow-bearing tables. Tables with a
	// workflow status column must never be mutated through the blind
	// status toggle.
	WorkflowStatusColumn string
}

// ColumnList returns the comma-separated column list for SELECT/RETURNING.
func (t Table) ColumnList() string {
	return strings.Join(t.Columns, ", ")
}

// SoftDeletable reports whether the table carries soft-delete columns.
func (t Table) SoftDeletable() bool {
	return t.DeletedColumn != "" && t.DeletedAtColumn != ""
}

// Toggleable reports whether the table carries an active/inactive column.
func (t Table) Toggleable() bool { return t.ActiveColumn != "" }

// WorkflowBearing reports whether the table carries a workflow status.
func (t Table) WorkflowBearing() bool { return t.WorkflowStatusColumn != "" }

var Cities = Table{
	Entity: "City",
	Name:   "cities",
	Columns: []string{
		"id", "name", "state", "is_active", "is_deleted", "deleted_at",
		"created_at", "updated_at",
	},
	IDColumn:        "id",
	UpdatedAtColumn: "updated_at",
	DeletedColumn:   "is_deleted",
	DeletedAtColumn: "deleted_at",
	ActiveColumn:    "is_active",
}

var Couriers = Table{
	Entity: "Courier",
	Name:   "couriers",
	Columns: []string{
		"id", "name", "tracking_url", "phone", "is_active", "is_deleted",
		"deleted_at", "created_at", "updated_at",
	},
	IDColumn:        "id",
	UpdatedAtColumn: "updated_at",
	DeletedColumn:   "is_deleted",
	DeletedAtColumn: "deleted_at",
	ActiveColumn:    "is_active",
}

var Products = Table{
	Entity: "Product",
	Name:   "products",
	Columns: []string{
		"id", "name", "category", "is_active", "is_deleted", "deleted_at",
		"created_at", "updated_at",
	},
	IDColumn:        "id",
	UpdatedAtColumn: "updated_at",
	DeletedColumn:   "is_deleted",
	DeletedAtColumn: "deleted_at",
	ActiveColumn:    "is_active",
}

// PaymentModes is reference data pointed at by historical policies, so it
// supports deactivation but not soft delete.
var PaymentModes = Table{
	Entity: "PaymentMode",
	Name:   "payment_modes",
	Columns: []string{
		"id", "name", "is_active", "created_at", "updated_at",
	},
	IDColumn:        "id",
	UpdatedAtColumn: "updated_at",
	ActiveColumn:    "is_active",
}

var BusinessRegions = Table{
	Entity: "BusinessRegion",
	Name:   "business_regions",
	Columns: []string{
		"id", "name", "code", "is_active", "is_deleted", "deleted_at",
		"created_at", "updated_at",
	},
	IDColumn:        "id",
	UpdatedAtColumn: "updated_at",
	DeletedColumn:   "is_deleted",
	DeletedAtColumn: "deleted_at",
	ActiveColumn:    "is_active",
}

// Leads is workflow-bearing: status changes go through the workflow
// service only, so no ActiveColumn is declared even though the blind
// toggle would be mechanically possible.
var Leads = Table{
	Entity: "Lead",
	Name:   "leads",
	Columns: []string{
		"id", "customer_name", "phone", "email", "product_id", "city_id",
		"status", "assigned_to", "follow_up_at", "notes", "is_deleted",
		"deleted_at", "created_at", "updated_at",
	},
	IDColumn:             "id",
	UpdatedAtColumn:      "updated_at",
	DeletedColumn:        "is_deleted",
	DeletedAtColumn:      "deleted_at",
	WorkflowStatusColumn: "status",
}

// All returns every lifecycle-managed table descriptor.
func All() []Table {
	return []Table{Cities, Couriers, Products, PaymentModes, BusinessRegions, Leads}
}
