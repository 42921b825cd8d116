package employee

import (
	"go-hms/internal/shared/query"

	"github.com/google/uuid"
)

type EmployeeResponse struct {
	ID           int64     `json:"employee_id"`
	UUID         uuid.UUID `json:"uuid"`
	CompanyID    int64     `json:"company_id"`
	BranchID     *int64    `json:"branch_id,omitempty"`
	BranchIDs    []int64   `json:"branch_ids,omitempty"`
	EmployeeCode string    `json:"employee_code"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	Department   string    `json:"department,omitempty"`
	IsDoctor     bool      `json:"is_doctor"`
	IsActive     bool      `json:"is_active"`
}

type EmployeeListResponse struct {
	Items []EmployeeResponse
	Meta  query.PageMeta
}

type AssignBranchRequest struct {
	BranchID  int64 `json:"branch_id" binding:"required,gt=0"`
	IsPrimary bool  `json:"is_primary"`
}

func toEmployeeResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		UUID:         e.UUID,
		CompanyID:    e.CompanyID,
		BranchID:     e.BranchID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     e.FullName(),
		Email:        e.Email,
		Phone:        e.Phone,
		Designation:  e.Designation,
		Department:   e.Department,
		IsDoctor:     e.IsDoctor,
		IsActive:     e.IsActive,
	}
}
