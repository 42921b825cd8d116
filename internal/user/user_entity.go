package user

import (
	"time"

	"go-hms/internal/shared/contextutil"
	"go-hms/internal/shared/repository"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// User is the login identity. It has a status lifecycle instead of an
// is_active flag; deleting a user marks it inactive.
type User struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_username"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	EmployeeID   int64      `gorm:"not null;uniqueIndex:uq_users_employee"`
	RoleID       int64      `gorm:"not null;index"`
	Status       Status     `gorm:"type:varchar(20);not null;default:active;index"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	repository.Audit
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IdentityView is a user joined with its employee, role, company and
// optional branch. It never carries the password hash.
type IdentityView struct {
	UserID       int64      `json:"user_id"`
	UserUUID     uuid.UUID  `json:"uuid"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Status       Status     `json:"status"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	EmployeeID   int64      `json:"employee_id"`
	EmployeeUUID uuid.UUID  `json:"employee_uuid"`
	EmployeeCode string     `json:"employee_code"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	Designation  string     `json:"designation,omitempty"`
	Department   string     `json:"department,omitempty"`
	IsDoctor     bool       `json:"is_doctor"`
	RoleID       int64      `json:"role_id"`
	RoleName     string     `json:"role_name"`
	CompanyID    int64      `json:"company_id"`
	CompanyName  string     `json:"company_name"`
	BranchID     *int64     `json:"branch_id,omitempty"`
	BranchName   *string    `json:"branch_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (v *IdentityView) IsActive() bool {
	return v.Status == StatusActive
}

func (v *IdentityView) IsAdministrator() bool {
	return contextutil.IsAdministratorRole(v.RoleName)
}

// Identity is the claim set issued for this view.
func (v *IdentityView) Identity() contextutil.Identity {
	id := contextutil.Identity{
		UserID:       v.UserID,
		UserUUID:     v.UserUUID,
		Email:        v.Email,
		Username:     v.Username,
		EmployeeID:   v.EmployeeID,
		EmployeeUUID: v.EmployeeUUID,
		RoleID:       v.RoleID,
		RoleName:     v.RoleName,
		CompanyID:    v.CompanyID,
		CompanyName:  v.CompanyName,
		BranchID:     v.BranchID,
		IsDoctor:     v.IsDoctor,
	}
	if v.BranchName != nil {
		id.BranchName = *v.BranchName
	}
	return id
}

// Stats counts a company's users by status.
type Stats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Inactive  int64 `json:"inactive"`
	Suspended int64 `json:"suspended"`
	Doctors   int64 `json:"doctors"`
}
