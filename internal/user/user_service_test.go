package user_test

import (
	"context"
	"errors"
	"testing"

	credentialMock "go-hms/internal/credential/mock"
	employeeMock "go-hms/internal/employee/mock"
	"go-hms/internal/rbac"
	rbacMock "go-hms/internal/rbac/mock"
	"go-hms/internal/shared/contextutil"
	"go-hms/internal/shared/database"
	"go-hms/internal/user"
	usererrors "go-hms/internal/user/errors"
	userMock "go-hms/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	repo      *userMock.MockRepository
	employees *employeeMock.MockRepository
	roles     *rbacMock.MockRepository
	hasher    *credentialMock.MockPasswordHasher
	svc       user.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:      userMock.NewMockRepository(ctrl),
		employees: employeeMock.NewMockRepository(ctrl),
		roles:     rbacMock.NewMockRepository(ctrl),
		hasher:    credentialMock.NewMockPasswordHasher(ctrl),
	}
	f.svc = user.NewService(f.repo, f.employees, f.roles, f.hasher, database.Immediate{}, zap.NewNop())
	return f
}

func adminActor() contextutil.Identity {
	return contextutil.Identity{UserID: 1, CompanyID: 10, RoleID: 1, RoleName: rbac.AdministratorRoleName}
}

func view(id, companyID int64, roleName string, status user.Status) *user.IdentityView {
	return &user.IdentityView{
		UserID:     id,
		Username:   "user",
		Email:      "user@test.com",
		Status:     status,
		EmployeeID: id + 100,
		RoleID:     2,
		RoleName:   roleName,
		CompanyID:  companyID,
	}
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Same Company", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, "Doctor", user.StatusActive), nil)

		got, err := f.svc.Get(ctx, adminActor(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.UserID)
	})

	t.Run("Other Company Is Not Found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 20, "Doctor", user.StatusActive), nil)

		_, err := f.svc.Get(ctx, adminActor(), 5)
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("Missing", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(nil, nil)

		_, err := f.svc.Get(ctx, adminActor(), 5)
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	email := "New@Test.com"
	first := "Jane"

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		target := view(5, 10, "Doctor", user.StatusActive)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(target, nil).Times(2)
		f.repo.EXPECT().EmailTaken(ctx, email, gomock.Any()).Return(false, nil)
		f.repo.EXPECT().WithTx(nil).Return(f.repo)
		f.repo.EXPECT().Update(ctx, int64(5), map[string]any{"email": email}, gomock.Any()).Return(true, nil)
		f.employees.EXPECT().WithTx(nil).Return(f.employees)
		f.employees.EXPECT().
			UpdateProfile(ctx, int64(105), map[string]any{"first_name": first, "email": "new@test.com"}, gomock.Any()).
			Return(true, nil)

		got, err := f.svc.Update(ctx, adminActor(), 5, user.UpdateUserRequest{Email: &email, FirstName: &first})
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.UserID)
	})

	t.Run("Own Role", func(t *testing.T) {
		f := newFixture(t)
		roleID := int64(3)
		f.repo.EXPECT().FindIdentity(ctx, int64(1)).Return(view(1, 10, rbac.AdministratorRoleName, user.StatusActive), nil)

		_, err := f.svc.Update(ctx, adminActor(), 1, user.UpdateUserRequest{RoleID: &roleID})
		assert.ErrorIs(t, err, usererrors.ErrSelfRoleChange)
	})

	t.Run("Unknown Role", func(t *testing.T) {
		f := newFixture(t)
		roleID := int64(9)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, "Doctor", user.StatusActive), nil)
		f.roles.EXPECT().FindRole(ctx, int64(9)).Return(nil, nil)

		_, err := f.svc.Update(ctx, adminActor(), 5, user.UpdateUserRequest{RoleID: &roleID})
		assert.ErrorIs(t, err, usererrors.ErrRoleNotFound)
	})

	t.Run("Email Taken", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, "Doctor", user.StatusActive), nil)
		f.repo.EXPECT().EmailTaken(ctx, email, gomock.Any()).Return(true, nil)

		_, err := f.svc.Update(ctx, adminActor(), 5, user.UpdateUserRequest{Email: &email})
		assert.ErrorIs(t, err, usererrors.ErrEmailTaken)
	})

	t.Run("Nothing To Update", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Update(ctx, adminActor(), 5, user.UpdateUserRequest{})
		assert.ErrorIs(t, err, usererrors.ErrNoFieldsToUpdate)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Own Status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateStatus(ctx, adminActor(), 1, user.UpdateStatusRequest{Status: user.StatusInactive})
		assert.ErrorIs(t, err, usererrors.ErrSelfStatusChange)
	})

	t.Run("Administrator Target Needs Administrator Caller", func(t *testing.T) {
		f := newFixture(t)
		caller := contextutil.Identity{UserID: 7, CompanyID: 10, RoleName: rbac.AdministratorRoleName}
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, rbac.AdministratorRoleName, user.StatusActive), nil)
		// the token says Administrator but storage has since demoted the caller
		f.repo.EXPECT().FindIdentity(ctx, int64(7)).Return(view(7, 10, "Nurse", user.StatusActive), nil)

		_, err := f.svc.UpdateStatus(ctx, caller, 5, user.UpdateStatusRequest{Status: user.StatusSuspended})
		assert.ErrorIs(t, err, usererrors.ErrStatusChangeForbidden)
	})

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, "Doctor", user.StatusActive), nil)
		f.repo.EXPECT().UpdateStatus(ctx, int64(5), user.StatusSuspended, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, "Doctor", user.StatusSuspended), nil)

		got, err := f.svc.UpdateStatus(ctx, adminActor(), 5, user.UpdateStatusRequest{Status: user.StatusSuspended})
		require.NoError(t, err)
		assert.Equal(t, user.StatusSuspended, got.Status)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Own Account", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.svc.Delete(ctx, adminActor(), 1), usererrors.ErrSelfDelete)
	})

	t.Run("Already Deleted", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, "Doctor", user.StatusInactive), nil)

		assert.ErrorIs(t, f.svc.Delete(ctx, adminActor(), 5), usererrors.ErrAlreadyDeleted)
	})

	t.Run("Other Company", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 99, "Doctor", user.StatusActive), nil)

		assert.ErrorIs(t, f.svc.Delete(ctx, adminActor(), 5), usererrors.ErrUserNotFound)
	})

	t.Run("Soft Deletes", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, rbac.AdministratorRoleName, user.StatusActive), nil)
		f.repo.EXPECT().FindIdentity(ctx, int64(1)).Return(view(1, 10, rbac.AdministratorRoleName, user.StatusActive), nil)
		f.repo.EXPECT().UpdateStatus(ctx, int64(5), user.StatusInactive, gomock.Any()).Return(true, nil)

		assert.NoError(t, f.svc.Delete(ctx, adminActor(), 5))
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, "Doctor", user.StatusActive), nil)
		f.hasher.EXPECT().Hash("N3w@Password").Return("hashed", nil)
		f.repo.EXPECT().UpdatePassword(ctx, int64(5), "hashed", gomock.Any()).Return(true, nil)

		assert.NoError(t, f.svc.ResetPassword(ctx, adminActor(), 5, user.ResetPasswordRequest{NewPassword: "N3w@Password"}))
	})

	t.Run("Hash Failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindIdentity(ctx, int64(5)).Return(view(5, 10, "Doctor", user.StatusActive), nil)
		f.hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("boom"))

		assert.Error(t, f.svc.ResetPassword(ctx, adminActor(), 5, user.ResetPasswordRequest{NewPassword: "N3w@Password"}))
	})
}

func TestService_ListRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), adminActor(), user.ListFilter{Status: "archived"})
	assert.Error(t, err)
}
