package rbac_test

import (
	"context"
	"errors"
	"testing"

	"go-hms/internal/rbac"
	"go-hms/internal/rbac/infra"
	rbacMock "go-hms/internal/rbac/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newEnforcer(t *testing.T, repo rbac.Repository) *rbac.Enforcer {
	t.Helper()
	ce, err := infra.NewEnforcer()
	require.NoError(t, err)
	return rbac.NewEnforcer(repo, ce, zap.NewNop())
}

func TestEnforcer_Enforce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rbacMock.NewMockRepository(ctrl)
	enforcer := newEnforcer(t, repo)
	ctx := context.Background()

	grants := []rbac.RoleMenuView{
		{MenuID: 1, MenuName: "Roles", CanView: true, CanEdit: true},
		{MenuID: 2, MenuName: "Employees", CanView: true},
	}
	// loaded once for every check below
	repo.EXPECT().RoleMenus(ctx, int64(4)).Return(grants, nil).Times(1)

	tests := []struct {
		name   string
		menu   string
		action string
		want   bool
	}{
		{"granted edit", "Roles", rbac.ActionEdit, true},
		{"missing create", "Roles", rbac.ActionCreate, false},
		{"view only menu", "Employees", rbac.ActionView, true},
		{"view only menu delete", "Employees", rbac.ActionDelete, false},
		{"unknown menu", "Billing", rbac.ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := enforcer.Enforce(ctx, 4, tt.menu, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}

	t.Run("policies do not leak between roles", func(t *testing.T) {
		repo.EXPECT().RoleMenus(ctx, int64(5)).Return(nil, nil).Times(1)

		allowed, err := enforcer.Enforce(ctx, 5, "Roles", rbac.ActionEdit)
		require.NoError(t, err)
		assert.False(t, allowed)

		allowed, err = enforcer.Enforce(ctx, 4, "Roles", rbac.ActionEdit)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("repository failure is not cached", func(t *testing.T) {
		gomock.InOrder(
			repo.EXPECT().RoleMenus(ctx, int64(6)).Return(nil, errors.New("db down")),
			repo.EXPECT().RoleMenus(ctx, int64(6)).Return([]rbac.RoleMenuView{{MenuName: "Roles", CanView: true}}, nil),
		)

		_, err := enforcer.Enforce(ctx, 6, "Roles", rbac.ActionView)
		assert.Error(t, err)

		allowed, err := enforcer.Enforce(ctx, 6, "Roles", rbac.ActionView)
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestEnforcer_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rbacMock.NewMockRepository(ctrl)
	enforcer := newEnforcer(t, repo)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().RoleMenus(ctx, int64(4)).
			Return([]rbac.RoleMenuView{{MenuName: "Roles", CanView: true, CanEdit: true}}, nil),
		repo.EXPECT().RoleMenus(ctx, int64(4)).
			Return([]rbac.RoleMenuView{{MenuName: "Roles", CanView: true}}, nil),
	)

	allowed, err := enforcer.Enforce(ctx, 4, "Roles", rbac.ActionEdit)
	require.NoError(t, err)
	require.True(t, allowed)

	enforcer.Invalidate(4)

	allowed, err = enforcer.Enforce(ctx, 4, "Roles", rbac.ActionEdit)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = enforcer.Enforce(ctx, 4, "Roles", rbac.ActionView)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestService_AssignMenusRefreshesPolicies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rbacMock.NewMockRepository(ctrl)
	enforcer := newEnforcer(t, repo)
	svc := rbac.NewService(repo, enforcer, zap.NewNop())
	ctx := context.Background()

	employeesView := []rbac.RoleMenuView{{MenuID: 10, MenuName: "Employees", CanView: true}}
	gomock.InOrder(
		repo.EXPECT().RoleMenus(ctx, int64(4)).Return(nil, nil),
		repo.EXPECT().RoleMenus(ctx, int64(4)).Return(employeesView, nil).Times(2),
	)
	repo.EXPECT().FindRole(ctx, int64(4)).Return(&rbac.Role{ID: 4, Name: "Doctor"}, nil).Times(2)
	repo.EXPECT().ActiveMenus(ctx).Return([]rbac.Menu{{ID: 10, Name: "Employees"}}, nil)
	repo.EXPECT().UpsertRoleMenus(ctx, gomock.Any(), &admin.UserID).Return(nil)
	repo.EXPECT().RoleFeatures(ctx, int64(4)).Return([]rbac.RoleFeatureView{}, nil)

	allowed, err := enforcer.Enforce(ctx, 4, "Employees", rbac.ActionView)
	require.NoError(t, err)
	require.False(t, allowed)

	_, err = svc.AssignMenus(ctx, admin, 4, rbac.AssignMenusRequest{
		Menus: []rbac.MenuGrant{{MenuID: 10, CanView: true}},
	})
	require.NoError(t, err)

	allowed, err = enforcer.Enforce(ctx, 4, "Employees", rbac.ActionView)
	require.NoError(t, err)
	assert.True(t, allowed)
}
