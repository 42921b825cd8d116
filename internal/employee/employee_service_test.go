package employee_test

import (
	"context"
	"testing"

	"go-hms/internal/company"
	companyerrors "go-hms/internal/company/errors"
	companyMock "go-hms/internal/company/mock"
	"go-hms/internal/employee"
	employeeerrors "go-hms/internal/employee/errors"
	employeeMock "go-hms/internal/employee/mock"
	"go-hms/internal/shared/contextutil"
	"go-hms/internal/shared/query"
	"go-hms/internal/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var caller = contextutil.Identity{UserID: 10, CompanyID: 1}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo, companyMock.NewMockRepository(ctrl), zap.NewNop())
	ctx := context.Background()

	f := employee.ListFilter{Search: "ana", Pagination: query.Pagination{Page: 1, Limit: 20}}
	repo.EXPECT().List(ctx, int64(1), f).Return(repository.Page[employee.Employee]{
		Items: []employee.Employee{{ID: 3, CompanyID: 1, FirstName: "Ana", LastName: "Rao", EmployeeCode: "EMP-000003"}},
		Meta:  query.PageMeta{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
	}, nil)

	resp, err := svc.List(ctx, caller, f)

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Ana Rao", resp.Items[0].FullName)
	assert.Equal(t, int64(1), resp.Meta.Total)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo, companyMock.NewMockRepository(ctrl), zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, int64(1), int64(3)).Return(&employee.Employee{ID: 3, CompanyID: 1, FirstName: "Ana"}, nil)
		repo.EXPECT().BranchIDs(ctx, int64(3)).Return([]int64{4, 6}, nil)

		resp, err := svc.Get(ctx, caller, 3)

		require.NoError(t, err)
		assert.Equal(t, []int64{4, 6}, resp.BranchIDs)
	})

	t.Run("Other Company Is Not Found", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, int64(1), int64(77)).Return(nil, nil)

		_, err := svc.Get(ctx, caller, 77)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestService_AssignBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employeeMock.NewMockRepository(ctrl)
	branches := companyMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo, branches, zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		emp := &employee.Employee{ID: 3, CompanyID: 1, IsDoctor: true}
		repo.EXPECT().FindByID(ctx, int64(1), int64(3)).Return(emp, nil).Times(2)
		branches.EXPECT().FindBranch(ctx, int64(1), int64(6)).Return(&company.Branch{ID: 6, CompanyID: 1}, nil)
		repo.EXPECT().AssignBranch(ctx, &employee.EmployeeBranch{EmployeeID: 3, BranchID: 6}, &caller.UserID).Return(nil)
		repo.EXPECT().BranchIDs(ctx, int64(3)).Return([]int64{6}, nil)

		resp, err := svc.AssignBranch(ctx, caller, 3, employee.AssignBranchRequest{BranchID: 6})

		require.NoError(t, err)
		assert.True(t, resp.IsDoctor)
		assert.Equal(t, []int64{6}, resp.BranchIDs)
	})

	t.Run("Branch Of Other Company", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, int64(1), int64(3)).Return(&employee.Employee{ID: 3, CompanyID: 1}, nil)
		branches.EXPECT().FindBranch(ctx, int64(1), int64(50)).Return(nil, nil)

		_, err := svc.AssignBranch(ctx, caller, 3, employee.AssignBranchRequest{BranchID: 50})
		assert.ErrorIs(t, err, companyerrors.ErrBranchNotFound)
	})
}

func TestService_RemoveBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo, companyMock.NewMockRepository(ctrl), zap.NewNop())
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(1), int64(3)).Return(&employee.Employee{ID: 3, CompanyID: 1}, nil)
	repo.EXPECT().RemoveBranch(ctx, int64(3), int64(9)).Return(false, nil)

	err := svc.RemoveBranch(ctx, caller, 3, 9)
	assert.ErrorIs(t, err, companyerrors.ErrBranchNotFound)
}
