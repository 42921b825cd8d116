package events

import "time"

const IdentityLifecycleTopic = "hms.identity.lifecycle.v1"

const (
	EventUserRegistered     = "identity.user.registered"
	EventCompanyProvisioned = "identity.company.provisioned"
)

const (
	AggregateUser    = "user"
	AggregateCompany = "company"
)

type UserRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	UserID       int64     `json:"user_id"`
	UserUUID     string    `json:"user_uuid"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	Email        string    `json:"email"`
	RoleID       int64     `json:"role_id"`
	CompanyID    int64     `json:"company_id"`
	BranchID     *int64    `json:"branch_id,omitempty"`
	RegisteredBy *int64    `json:"registered_by,omitempty"`
	Flow         string    `json:"flow"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type CompanyProvisionedEvent struct {
	EventType   string    `json:"event_type"`
	CompanyID   int64     `json:"company_id"`
	CompanyUUID string    `json:"company_uuid"`
	CompanyName string    `json:"company_name"`
	BranchID    int64     `json:"branch_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Envelope is decoded first to route a message by its event type.
type Envelope struct {
	EventType string `json:"event_type"`
}
