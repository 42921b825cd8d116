package company

import "github.com/google/uuid"

type CompanyResponse struct {
	ID                 int64     `json:"company_id"`
	UUID               uuid.UUID `json:"uuid"`
	Name               string    `json:"company_name"`
	Email              string    `json:"company_email,omitempty"`
	Phone              string    `json:"company_phone,omitempty"`
	Website            string    `json:"company_website,omitempty"`
	AddressLine1       string    `json:"address_line1,omitempty"`
	AddressLine2       string    `json:"address_line2,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	Country            string    `json:"country,omitempty"`
	Pincode            string    `json:"pincode,omitempty"`
	ContactPersonName  string    `json:"contact_person_name,omitempty"`
	ContactPersonEmail string    `json:"contact_person_email,omitempty"`
	ContactPersonPhone string    `json:"contact_person_phone,omitempty"`
	IsActive           bool      `json:"is_active"`
}

type UpdateCompanyRequest struct {
	Name               *string `json:"company_name" binding:"omitempty,min=2,max=255"`
	Email              *string `json:"company_email" binding:"omitempty,email"`
	Phone              *string `json:"company_phone" binding:"omitempty,max=20"`
	Website            *string `json:"company_website" binding:"omitempty,max=255"`
	AddressLine1       *string `json:"address_line1" binding:"omitempty,max=255"`
	AddressLine2       *string `json:"address_line2" binding:"omitempty,max=255"`
	City               *string `json:"city" binding:"omitempty,max=100"`
	State              *string `json:"state" binding:"omitempty,max=100"`
	Country            *string `json:"country" binding:"omitempty,max=100"`
	Pincode            *string `json:"pincode" binding:"omitempty,max=20"`
	ContactPersonName  *string `json:"contact_person_name" binding:"omitempty,max=255"`
	ContactPersonEmail *string `json:"contact_person_email" binding:"omitempty,email"`
	ContactPersonPhone *string `json:"contact_person_phone" binding:"omitempty,max=20"`
}

func (r UpdateCompanyRequest) fields() map[string]any {
	out := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			out[col] = *v
		}
	}
	set("company_name", r.Name)
	set("company_email", r.Email)
	set("company_phone", r.Phone)
	set("company_website", r.Website)
	set("address_line1", r.AddressLine1)
	set("address_line2", r.AddressLine2)
	set("city", r.City)
	set("state", r.State)
	set("country", r.Country)
	set("pincode", r.Pincode)
	set("contact_person_name", r.ContactPersonName)
	set("contact_person_email", r.ContactPersonEmail)
	set("contact_person_phone", r.ContactPersonPhone)
	return out
}

type BranchResponse struct {
	ID           int64     `json:"branch_id"`
	UUID         uuid.UUID `json:"uuid"`
	CompanyID    int64     `json:"company_id"`
	Name         string    `json:"branch_name"`
	Phone        string    `json:"branch_phone,omitempty"`
	AddressLine1 string    `json:"address_line1,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Country      string    `json:"country,omitempty"`
	Pincode      string    `json:"pincode,omitempty"`
	IsActive     bool      `json:"is_active"`
}

type CreateBranchRequest struct {
	Name         string `json:"branch_name" binding:"required,min=2,max=255"`
	Phone        string `json:"branch_phone" binding:"omitempty,max=20"`
	AddressLine1 string `json:"address_line1" binding:"omitempty,max=255"`
	City         string `json:"city" binding:"omitempty,max=100"`
	State        string `json:"state" binding:"omitempty,max=100"`
	Country      string `json:"country" binding:"omitempty,max=100"`
	Pincode      string `json:"pincode" binding:"omitempty,max=20"`
}

type UpdateBranchRequest struct {
	Name         *string `json:"branch_name" binding:"omitempty,min=2,max=255"`
	Phone        *string `json:"branch_phone" binding:"omitempty,max=20"`
	AddressLine1 *string `json:"address_line1" binding:"omitempty,max=255"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	Country      *string `json:"country" binding:"omitempty,max=100"`
	Pincode      *string `json:"pincode" binding:"omitempty,max=20"`
}

func (r UpdateBranchRequest) fields() map[string]any {
	out := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			out[col] = *v
		}
	}
	set("branch_name", r.Name)
	set("branch_phone", r.Phone)
	set("address_line1", r.AddressLine1)
	set("city", r.City)
	set("state", r.State)
	set("country", r.Country)
	set("pincode", r.Pincode)
	return out
}

func toCompanyResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:                 c.ID,
		UUID:               c.UUID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Website:            c.Website,
		AddressLine1:       c.AddressLine1,
		AddressLine2:       c.AddressLine2,
		City:               c.City,
		State:              c.State,
		Country:            c.Country,
		Pincode:            c.Pincode,
		ContactPersonName:  c.ContactPersonName,
		ContactPersonEmail: c.ContactPersonEmail,
		ContactPersonPhone: c.ContactPersonPhone,
		IsActive:           c.IsActive,
	}
}

func toBranchResponse(b *Branch) BranchResponse {
	return BranchResponse{
		ID:           b.ID,
		UUID:         b.UUID,
		CompanyID:    b.CompanyID,
		Name:         b.Name,
		Phone:        b.Phone,
		AddressLine1: b.AddressLine1,
		City:         b.City,
		State:        b.State,
		Country:      b.Country,
		Pincode:      b.Pincode,
		IsActive:     b.IsActive,
	}
}
