package registration

import (
	"strconv"
	"strings"
	"time"

	"go-hms/internal/employee"
	"go-hms/internal/provisioning"
	"go-hms/internal/user"
)

// RegisterRequest creates a user and, without company_id, a new company with
// its default branch.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50,username"`
	Email        string `json:"email" binding:"required,email,max=255"`
	Password     string `json:"password" binding:"required,min=8,max=128,password_strength"`
	FirstName    string `json:"first_name" binding:"required,min=2,max=100,person_name"`
	LastName     string `json:"last_name" binding:"required,min=1,max=100,person_name"`
	Phone        string `json:"phone" binding:"required,phone10"`
	CompanyID    *int64 `json:"company_id" binding:"omitempty,gt=0"`
	RoleID       *int64 `json:"role_id" binding:"omitempty,gt=0"`
	CompanyName  string `json:"company_name" binding:"omitempty,max=255"`
	CompanyEmail string `json:"company_email" binding:"omitempty,email,max=255"`
	CompanyPhone string `json:"company_phone" binding:"omitempty,phone10"`
}

// RegisterCompleteRequest onboards an employee with a branch assignment and,
// unless is_admin is false, full permissions for the role.
type RegisterCompleteRequest struct {
	Email        string `json:"email" binding:"required,email,max=255"`
	Password     string `json:"password" binding:"required,min=8,max=128,password_strength"`
	FirstName    string `json:"first_name" binding:"required,min=2,max=100,person_name"`
	LastName     string `json:"last_name" binding:"required,min=1,max=100,person_name"`
	Phone        string `json:"phone" binding:"required,phone10"`
	Username     string `json:"username" binding:"omitempty,min=3,max=50,username"`
	Designation  string `json:"designation" binding:"omitempty,max=100"`
	Department   string `json:"department" binding:"omitempty,max=100"`
	AddressLine1 string `json:"address_line1" binding:"omitempty,max=255"`
	City         string `json:"city" binding:"omitempty,max=100"`
	State        string `json:"state" binding:"omitempty,max=100"`
	Country      string `json:"country" binding:"omitempty,max=100"`
	Pincode      string `json:"pincode" binding:"omitempty,max=20"`
	CompanyID    *int64 `json:"company_id" binding:"omitempty,gt=0"`
	RoleID       *int64 `json:"role_id" binding:"omitempty,gt=0"`
	CompanyName  string `json:"company_name" binding:"omitempty,max=255"`
	CompanyEmail string `json:"company_email" binding:"omitempty,email,max=255"`
	CompanyPhone string `json:"company_phone" binding:"omitempty,phone10"`
	BranchName   string `json:"branch_name" binding:"omitempty,max=255"`
	IsAdmin      *bool  `json:"is_admin"`
}

// RegisterCompanyUserRequest has no company field: the caller's company is used.
type RegisterCompanyUserRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50,username"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=8,max=128,password_strength"`
	FirstName   string `json:"first_name" binding:"required,min=2,max=100,person_name"`
	LastName    string `json:"last_name" binding:"required,min=1,max=100,person_name"`
	Phone       string `json:"phone" binding:"required,phone10"`
	RoleID      *int64 `json:"role_id" binding:"omitempty,gt=0"`
	Designation string `json:"designation" binding:"omitempty,max=100"`
	Department  string `json:"department" binding:"omitempty,max=100"`
	IsDoctor    bool   `json:"is_doctor"`
}

type AuthResponse struct {
	User         user.IdentityView `json:"user"`
	Token        string            `json:"token"`
	RefreshToken string            `json:"refreshToken"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

// account is the person being registered, common to every flow.
type account struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	Designation string
	Department  string
	IsDoctor    bool
	Address     provisioning.BranchSeed

	// DerivedUsername is set when Username came from the email and may take a suffix.
	DerivedUsername bool
}

func (a account) employee(companyID int64, branchID *int64, code string) *employee.Employee {
	return &employee.Employee{
		CompanyID:    companyID,
		BranchID:     branchID,
		EmployeeCode: code,
		FirstName:    strings.TrimSpace(a.FirstName),
		LastName:     strings.TrimSpace(a.LastName),
		Email:        user.NormalizeEmail(a.Email),
		Phone:        a.Phone,
		Designation:  a.Designation,
		Department:   a.Department,
		AddressLine1: a.Address.AddressLine1,
		City:         a.Address.City,
		State:        a.Address.State,
		Country:      a.Address.Country,
		Pincode:      a.Address.Pincode,
		IsDoctor:     a.IsDoctor,
	}
}

func (r RegisterRequest) account() account {
	return account{
		Username:  strings.TrimSpace(r.Username),
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

func (r RegisterRequest) companySeed() provisioning.NewCompany {
	return provisioning.NewCompany{
		Name:                r.CompanyName,
		Email:               r.CompanyEmail,
		Phone:               r.CompanyPhone,
		RegistrantFirstName: r.FirstName,
		RegistrantLastName:  r.LastName,
		RegistrantEmail:     user.NormalizeEmail(r.Email),
		RegistrantPhone:     r.Phone,
	}
}

func (r RegisterCompleteRequest) account() account {
	username, derived := strings.TrimSpace(r.Username), false
	if username == "" {
		username, derived = DefaultUsername(r.Email), true
	}
	designation := strings.TrimSpace(r.Designation)
	if designation == "" {
		designation = employee.DefaultDesignation
	}
	department := strings.TrimSpace(r.Department)
	if department == "" {
		department = employee.DefaultDepartment
	}
	return account{
		Username:        username,
		DerivedUsername: derived,
		Email:           r.Email,
		Password:        r.Password,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		Designation:     designation,
		Department:      department,
		Address:         r.branchSeed(),
	}
}

func (r RegisterCompleteRequest) companySeed() provisioning.NewCompany {
	return provisioning.NewCompany{
		Name:                r.CompanyName,
		Email:               r.CompanyEmail,
		Phone:               r.CompanyPhone,
		AddressLine1:        r.AddressLine1,
		City:                r.City,
		State:               r.State,
		Country:             r.Country,
		Pincode:             r.Pincode,
		RegistrantFirstName: r.FirstName,
		RegistrantLastName:  r.LastName,
		RegistrantEmail:     user.NormalizeEmail(r.Email),
		RegistrantPhone:     r.Phone,
	}
}

func (r RegisterCompleteRequest) branchSeed() provisioning.BranchSeed {
	return provisioning.BranchSeed{
		Name:         r.BranchName,
		Phone:        r.CompanyPhone,
		AddressLine1: r.AddressLine1,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		Pincode:      r.Pincode,
	}
}

func (r RegisterCompleteRequest) isAdmin() bool {
	return r.IsAdmin == nil || *r.IsAdmin
}

func (r RegisterCompanyUserRequest) account() account {
	return account{
		Username:    strings.TrimSpace(r.Username),
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		Designation: strings.TrimSpace(r.Designation),
		Department:  strings.TrimSpace(r.Department),
		IsDoctor:    r.IsDoctor,
	}
}

const (
	minUsernameLen = 3
	maxUsernameLen = 50
)

// DefaultUsername is the ASCII alphanumeric part of the email's local part,
// prefixed with "user" when shorter than three characters.
func DefaultUsername(email string) string {
	local, _, _ := strings.Cut(user.NormalizeEmail(email), "@")
	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	username := b.String()
	if len(username) < minUsernameLen {
		username = "user" + username
	}
	if len(username) > maxUsernameLen {
		username = username[:maxUsernameLen]
	}
	return username
}

// usernameCandidate appends n to base, keeping the result within the length limit.
func usernameCandidate(base string, n int) string {
	if n <= 1 {
		return base
	}
	suffix := strconv.Itoa(n)
	if len(base)+len(suffix) > maxUsernameLen {
		base = base[:maxUsernameLen-len(suffix)]
	}
	return base + suffix
}
