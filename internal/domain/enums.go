package domain

// LeadStatus represents the workflow state of a sales lead.
type LeadStatus string

const (
	LeadStatusPending           LeadStatus = "pending"
	LeadStatusWaiting           LeadStatus = "waiting"
	LeadStatusInterested        LeadStatus = "interested"
	LeadStatusNotInterested     LeadStatus = "not_interested"
	LeadStatusCallbackScheduled LeadStatus = "callback_scheduled"
	LeadStatusCancelled         LeadStatus = "cancelled"
)

func (s LeadStatus) String() string { return string(s) }

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusPending, LeadStatusWaiting, LeadStatusInterested,
		LeadStatusNotInterested, LeadStatusCallbackScheduled, LeadStatusCancelled:
		return true
	}
	return false
}

// AllLeadStatuses lists every valid status, in workflow order.
func AllLeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusPending,
		LeadStatusWaiting,
		LeadStatusCallbackScheduled,
		LeadStatusInterested,
		LeadStatusNotInterested,
		LeadStatusCancelled,
	}
}

// ProductCategory represents the line of business a product belongs to.
type ProductCategory string

const (
	ProductCategoryMotor  ProductCategory = "motor"
	ProductCategoryHealth ProductCategory = "health"
	ProductCategoryLife   ProductCategory = "life"
	ProductCategoryTravel ProductCategory = "travel"
)

func (c ProductCategory) String() string { return string(c) }

func (c ProductCategory) IsValid() bool {
	switch c {
	case ProductCategoryMotor, ProductCategoryHealth, ProductCategoryLife, ProductCategoryTravel:
		return true
	}
	return false
}

// AuditAction identifies the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate       AuditAction = "create"
	AuditActionUpdate       AuditAction = "update"
	AuditActionSoftDelete   AuditAction = "soft_delete"
	AuditActionToggleStatus AuditAction = "toggle_status"
	AuditActionTransition   AuditAction = "transition"
)

func (a AuditAction) String() string { return string(a) }
