package contextutil

import (
	"context"

	"github.com/google/uuid"
)

// Role names treated as administrator-equivalent.
const (
	RoleAdministrator = "Administrator"
	RoleSuperAdmin    = "Super Admin"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID       int64
	UserUUID     uuid.UUID
	Email        string
	Username     string
	EmployeeID   int64
	EmployeeUUID uuid.UUID
	RoleID       int64
	RoleName     string
	CompanyID    int64
	CompanyName  string
	BranchID     *int64
	BranchName   string
	IsDoctor     bool
}

func (i Identity) IsAdministrator() bool {
	return IsAdministratorRole(i.RoleName)
}

func IsAdministratorRole(name string) bool {
	return name == RoleAdministrator || name == RoleSuperAdmin
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
