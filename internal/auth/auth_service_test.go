package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hms/internal/auth"
	autherrors "go-hms/internal/auth/errors"
	"go-hms/internal/credential"
	credentialMock "go-hms/internal/credential/mock"
	employeeMock "go-hms/internal/employee/mock"
	"go-hms/internal/rbac"
	rbacMock "go-hms/internal/rbac/mock"
	"go-hms/internal/shared/contextutil"
	"go-hms/internal/user"
	userMock "go-hms/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	users     *userMock.MockRepository
	employees *employeeMock.MockRepository
	roles     *rbacMock.MockService
	hasher    *credentialMock.MockPasswordHasher
	issuer    *credentialMock.MockTokenIssuer
	verifier  *credentialMock.MockTokenVerifier
	svc       auth.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		users:     userMock.NewMockRepository(ctrl),
		employees: employeeMock.NewMockRepository(ctrl),
		roles:     rbacMock.NewMockService(ctrl),
		hasher:    credentialMock.NewMockPasswordHasher(ctrl),
		issuer:    credentialMock.NewMockTokenIssuer(ctrl),
		verifier:  credentialMock.NewMockTokenVerifier(ctrl),
	}
	f.svc = auth.NewService(auth.Deps{
		Users:     f.users,
		Employees: f.employees,
		Roles:     f.roles,
		Hasher:    f.hasher,
		Issuer:    f.issuer,
		Verifier:  f.verifier,
	}, zap.NewNop())
	return f
}

func storedUser(status user.Status) *user.User {
	return &user.User{ID: 7, Username: "drhouse", Email: "house@ppth.org", PasswordHash: "hash", EmployeeID: 70, RoleID: 3, Status: status}
}

func identity(status user.Status) *user.IdentityView {
	return &user.IdentityView{
		UserID:     7,
		Username:   "drhouse",
		Email:      "house@ppth.org",
		Status:     status,
		EmployeeID: 70,
		RoleID:     3,
		RoleName:   "Doctor",
		CompanyID:  10,
	}
}

var pair = credential.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: time.Unix(1700000000, 0)}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success By Email", func(t *testing.T) {
		f := newFixture(t)
		perms := rbac.PermissionSet{Menus: []rbac.RoleMenuView{{MenuID: 1, MenuName: "Patients", CanView: true}}}

		f.users.EXPECT().FindByEmail(ctx, "house@ppth.org").Return(storedUser(user.StatusActive), nil)
		f.hasher.EXPECT().Verify("Secret@123", "hash").Return(true)
		f.users.EXPECT().FindIdentity(ctx, int64(7)).Return(identity(user.StatusActive), nil)
		f.roles.EXPECT().Permissions(ctx, int64(3)).Return(perms, nil)
		f.users.EXPECT().UpdateLastLogin(ctx, int64(7), gomock.Any()).Return(nil)
		f.issuer.EXPECT().IssuePair(gomock.Any()).
			DoAndReturn(func(id contextutil.Identity) (credential.TokenPair, error) {
				assert.Equal(t, int64(7), id.UserID)
				assert.Equal(t, int64(10), id.CompanyID)
				return pair, nil
			})

		resp, err := f.svc.Login(ctx, auth.LoginRequest{Email: "house@ppth.org", Password: "Secret@123"})
		require.NoError(t, err)
		assert.Equal(t, "access", resp.Token)
		assert.Equal(t, "refresh", resp.RefreshToken)
		assert.NotNil(t, resp.User.LastLogin)
		assert.Len(t, resp.Menus, 1)
	})

	t.Run("Falls Back To Username", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().FindByEmail(ctx, "drhouse").Return(nil, nil)
		f.users.EXPECT().FindByUsername(ctx, "drhouse").Return(storedUser(user.StatusActive), nil)
		f.hasher.EXPECT().Verify("Secret@123", "hash").Return(true)
		f.users.EXPECT().FindIdentity(ctx, int64(7)).Return(identity(user.StatusActive), nil)
		f.roles.EXPECT().Permissions(ctx, int64(3)).Return(rbac.PermissionSet{}, nil)
		f.users.EXPECT().UpdateLastLogin(ctx, int64(7), gomock.Any()).Return(nil)
		f.issuer.EXPECT().IssuePair(gomock.Any()).Return(pair, nil)

		_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "drhouse", Password: "Secret@123"})
		require.NoError(t, err)
	})

	t.Run("Unknown Identifier", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().FindByEmail(ctx, "ghost").Return(nil, nil)
		f.users.EXPECT().FindByUsername(ctx, "ghost").Return(nil, nil)
		f.hasher.EXPECT().Verify("x", credential.DummyHash()).Return(false)

		_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ghost", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Wrong Password Looks The Same", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().FindByEmail(ctx, "house@ppth.org").Return(storedUser(user.StatusActive), nil)
		f.hasher.EXPECT().Verify("nope", "hash").Return(false)

		_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "house@ppth.org", Password: "nope"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Inactive Account", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().FindByEmail(ctx, "house@ppth.org").Return(storedUser(user.StatusInactive), nil)
		f.hasher.EXPECT().Verify("Secret@123", "hash").Return(true)

		_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "house@ppth.org", Password: "Secret@123"})
		assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
	})
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Rotates Pair", func(t *testing.T) {
		f := newFixture(t)

		f.verifier.EXPECT().Verify("old-refresh", credential.RefreshToken).Return(&credential.Claims{UserID: 7}, nil)
		f.users.EXPECT().FindIdentity(ctx, int64(7)).Return(identity(user.StatusActive), nil)
		f.issuer.EXPECT().IssuePair(gomock.Any()).Return(pair, nil)

		session, err := f.svc.Refresh(ctx, "old-refresh")
		require.NoError(t, err)
		assert.Equal(t, "refresh", session.RefreshToken)
		assert.NotEqual(t, "old-refresh", session.RefreshToken)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		f := newFixture(t)

		f.verifier.EXPECT().Verify("bad", credential.RefreshToken).Return(nil, autherrors.ErrInvalidToken)

		_, err := f.svc.Refresh(ctx, "bad")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("User Gone", func(t *testing.T) {
		f := newFixture(t)

		f.verifier.EXPECT().Verify("old", credential.RefreshToken).Return(&credential.Claims{UserID: 7}, nil)
		f.users.EXPECT().FindIdentity(ctx, int64(7)).Return(nil, nil)

		_, err := f.svc.Refresh(ctx, "old")
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("Suspended User", func(t *testing.T) {
		f := newFixture(t)

		f.verifier.EXPECT().Verify("old", credential.RefreshToken).Return(&credential.Claims{UserID: 7}, nil)
		f.users.EXPECT().FindIdentity(ctx, int64(7)).Return(identity(user.StatusSuspended), nil)

		_, err := f.svc.Refresh(ctx, "old")
		assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Only Employee Fields", func(t *testing.T) {
		f := newFixture(t)
		first, phone := "Gregory", "5551234567"

		f.users.EXPECT().FindIdentity(ctx, int64(7)).Return(identity(user.StatusActive), nil).Times(2)
		f.employees.EXPECT().
			UpdateProfile(ctx, int64(70), map[string]any{"first_name": first, "phone": phone}, gomock.Any()).
			Return(true, nil)

		_, err := f.svc.UpdateProfile(ctx, 7, auth.UpdateProfileRequest{FirstName: &first, Phone: &phone})
		require.NoError(t, err)
	})

	t.Run("Nothing To Update", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateProfile(ctx, 7, auth.UpdateProfileRequest{})
		assert.ErrorIs(t, err, autherrors.ErrNoProfileFields)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	req := auth.ChangePasswordRequest{CurrentPassword: "Old@12345", NewPassword: "New@12345"}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().FindByID(ctx, int64(7)).Return(storedUser(user.StatusActive), nil)
		f.hasher.EXPECT().Verify("Old@12345", "hash").Return(true)
		f.hasher.EXPECT().Hash("New@12345").Return("new-hash", nil)
		f.users.EXPECT().UpdatePassword(ctx, int64(7), "new-hash", gomock.Any()).Return(true, nil)

		require.NoError(t, f.svc.ChangePassword(ctx, 7, req))
	})

	t.Run("Wrong Current Password", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().FindByID(ctx, int64(7)).Return(storedUser(user.StatusActive), nil)
		f.hasher.EXPECT().Verify("Old@12345", "hash").Return(false)

		err := f.svc.ChangePassword(ctx, 7, req)
		assert.ErrorIs(t, err, autherrors.ErrWrongCurrentPassword)
	})

	t.Run("Same Password", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.ChangePassword(ctx, 7, auth.ChangePasswordRequest{CurrentPassword: "Same@1234", NewPassword: "Same@1234"})
		assert.ErrorIs(t, err, autherrors.ErrSamePassword)
	})

	t.Run("Hash Failure", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().FindByID(ctx, int64(7)).Return(storedUser(user.StatusActive), nil)
		f.hasher.EXPECT().Verify("Old@12345", "hash").Return(true)
		f.hasher.EXPECT().Hash("New@12345").Return("", errors.New("bcrypt"))

		assert.Error(t, f.svc.ChangePassword(ctx, 7, req))
	})
}

func TestService_Permissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	want := rbac.PermissionSet{Features: []rbac.RoleFeatureView{{FeatureID: 2, FeatureName: "PATIENT_MGMT", IsActive: true}}}

	f.roles.EXPECT().Permissions(ctx, int64(3)).Return(want, nil)

	got, err := f.svc.Permissions(ctx, contextutil.Identity{UserID: 7, RoleID: 3})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
