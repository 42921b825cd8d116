package user

import "go-hms/internal/shared/query"

type UserListResponse struct {
	Items []IdentityView
	Meta  query.PageMeta
}

// UpdateUserRequest spans the user row (email, username, role) and the
// employee row (names, phone).
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Username  *string `json:"username" binding:"omitempty,min=3,max=50,username"`
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=100,person_name"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100,person_name"`
	Phone     *string `json:"phone" binding:"omitempty,phone10"`
	RoleID    *int64  `json:"role_id" binding:"omitempty,gt=0"`
}

func (r UpdateUserRequest) userFields() map[string]any {
	out := map[string]any{}
	if r.Email != nil {
		out["email"] = *r.Email
	}
	if r.Username != nil {
		out["username"] = *r.Username
	}
	if r.RoleID != nil {
		out["role_id"] = *r.RoleID
	}
	return out
}

func (r UpdateUserRequest) employeeFields() map[string]any {
	out := map[string]any{}
	if r.FirstName != nil {
		out["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		out["last_name"] = *r.LastName
	}
	if r.Phone != nil {
		out["phone"] = *r.Phone
	}
	if r.Email != nil {
		out["email"] = NormalizeEmail(*r.Email)
	}
	return out
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=active inactive suspended"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8,max=128,password_strength"`
}
