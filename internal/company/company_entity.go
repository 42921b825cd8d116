package company

import "go-hms/internal/shared/repository"

const DefaultBranchName = "Default Branch"

// Company is the tenant root.
type Company struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	Name               string `gorm:"column:company_name;type:varchar(255);not null"`
	Email              string `gorm:"column:company_email;type:varchar(255)"`
	Phone              string `gorm:"column:company_phone;type:varchar(20)"`
	Website            string `gorm:"column:company_website;type:varchar(255)"`
	AddressLine1       string `gorm:"type:varchar(255)"`
	AddressLine2       string `gorm:"type:varchar(255)"`
	City               string `gorm:"type:varchar(100)"`
	State              string `gorm:"type:varchar(100)"`
	Country            string `gorm:"type:varchar(100)"`
	Pincode            string `gorm:"type:varchar(20)"`
	ContactPersonName  string `gorm:"type:varchar(255)"`
	ContactPersonEmail string `gorm:"type:varchar(255)"`
	ContactPersonPhone string `gorm:"type:varchar(20)"`
	repository.Audit
	repository.Active
}

func (Company) TableName() string {
	return "companies"
}

type Branch struct {
	ID                 int64    `gorm:"primaryKey;autoIncrement"`
	CompanyID          int64    `gorm:"not null;index"`
	Company            *Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:RESTRICT"`
	Name               string   `gorm:"column:branch_name;type:varchar(255);not null"`
	Phone              string   `gorm:"column:branch_phone;type:varchar(20)"`
	AddressLine1       string   `gorm:"type:varchar(255)"`
	AddressLine2       string   `gorm:"type:varchar(255)"`
	City               string   `gorm:"type:varchar(100)"`
	State              string   `gorm:"type:varchar(100)"`
	Country            string   `gorm:"type:varchar(100)"`
	Pincode            string   `gorm:"type:varchar(20)"`
	ContactPersonName  string   `gorm:"type:varchar(255)"`
	ContactPersonEmail string   `gorm:"type:varchar(255)"`
	ContactPersonPhone string   `gorm:"type:varchar(20)"`
	repository.Audit
	repository.Active
}

func (Branch) TableName() string {
	return "branches"
}
