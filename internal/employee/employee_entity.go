package employee

import "go-hms/internal/shared/repository"

const (
	DefaultDesignation = "Administrator"
	DefaultDepartment  = "Administration"
)

// Employee is the person behind a user account. Doctors carry IsDoctor and may
// be attached to several branches through EmployeeBranch.
type Employee struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CompanyID    int64  `gorm:"not null;index;uniqueIndex:uq_employees_company_code,priority:1"`
	BranchID     *int64 `gorm:"index"`
	EmployeeCode string `gorm:"type:varchar(50);not null;uniqueIndex:uq_employees_company_code,priority:2"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(20)"`
	Designation  string `gorm:"type:varchar(100)"`
	Department   string `gorm:"type:varchar(100)"`
	AddressLine1 string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(100)"`
	Country      string `gorm:"type:varchar(100)"`
	Pincode      string `gorm:"type:varchar(20)"`
	IsDoctor     bool   `gorm:"not null;default:false"`
	repository.Audit
	repository.Active
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// EmployeeBranch rows are hard deleted.
type EmployeeBranch struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64 `gorm:"not null;uniqueIndex:uq_employee_branches,priority:1"`
	BranchID   int64 `gorm:"not null;uniqueIndex:uq_employee_branches,priority:2;index"`
	IsPrimary  bool  `gorm:"not null;default:false"`
	repository.Audit
}

func (EmployeeBranch) TableName() string {
	return "employee_branches"
}
