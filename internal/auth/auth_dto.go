package auth

import (
	"time"

	"go-hms/internal/rbac"
	"go-hms/internal/user"
)

// LoginRequest.Email carries either an email address or a username.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateProfileRequest only reaches the employee row. Email and username
// are not part of it and are dropped at bind time.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=100,person_name"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100,person_name"`
	Phone     *string `json:"phone" binding:"omitempty,phone10"`
}

func (r UpdateProfileRequest) fields() map[string]any {
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
	return out
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required,max=128"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=128,password_strength"`
}

type Session struct {
	User         user.IdentityView `json:"user"`
	Token        string            `json:"token"`
	RefreshToken string            `json:"refreshToken"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

type LoginResponse struct {
	Session
	rbac.PermissionSet
}
