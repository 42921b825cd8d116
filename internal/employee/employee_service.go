package employee

import (
	"context"

	"go-hms/internal/company"
	companyerrors "go-hms/internal/company/errors"
	employeeerrors "go-hms/internal/employee/errors"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// BranchLookup resolves a branch inside the caller's company.
type BranchLookup interface {
	FindBranch(ctx context.Context, companyID, branchID int64) (*company.Branch, error)
}

//go:generate mockgen -destination=mock/employee_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context, actor contextutil.Identity, f ListFilter) (EmployeeListResponse, error)
	Get(ctx context.Context, actor contextutil.Identity, id int64) (EmployeeResponse, error)
	AssignBranch(ctx context.Context, actor contextutil.Identity, id int64, req AssignBranchRequest) (EmployeeResponse, error)
	RemoveBranch(ctx context.Context, actor contextutil.Identity, id, branchID int64) error
}

type service struct {
	repo     Repository
	branches BranchLookup
	logger   *zap.Logger
}

func NewService(repo Repository, branches BranchLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, branches: branches, logger: l}
}

func (s *service) List(ctx context.Context, actor contextutil.Identity, f ListFilter) (EmployeeListResponse, error) {
	page, err := s.repo.List(ctx, actor.CompanyID, f)
	if err != nil {
		return EmployeeListResponse{}, apperror.FromDB(err)
	}

	items := make([]EmployeeResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toEmployeeResponse(&page.Items[i]))
	}
	return EmployeeListResponse{Items: items, Meta: page.Meta}, nil
}

func (s *service) Get(ctx context.Context, actor contextutil.Identity, id int64) (EmployeeResponse, error) {
	emp, err := s.own(ctx, actor, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	ids, err := s.repo.BranchIDs(ctx, emp.ID)
	if err != nil {
		return EmployeeResponse{}, apperror.FromDB(err)
	}

	resp := toEmployeeResponse(emp)
	resp.BranchIDs = ids
	return resp, nil
}

func (s *service) AssignBranch(ctx context.Context, actor contextutil.Identity, id int64, req AssignBranchRequest) (EmployeeResponse, error) {
	emp, err := s.own(ctx, actor, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	branch, err := s.branches.FindBranch(ctx, actor.CompanyID, req.BranchID)
	if err != nil {
		return EmployeeResponse{}, apperror.FromDB(err)
	}
	if branch == nil {
		return EmployeeResponse{}, companyerrors.ErrBranchNotFound
	}

	link := &EmployeeBranch{EmployeeID: emp.ID, BranchID: branch.ID, IsPrimary: req.IsPrimary}
	if err := s.repo.AssignBranch(ctx, link, &actor.UserID); err != nil {
		return EmployeeResponse{}, apperror.FromDB(err)
	}

	s.logger.Info("employee assigned to branch",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("employee_id", emp.ID),
		zap.Int64("branch_id", branch.ID),
	)
	return s.Get(ctx, actor, id)
}

func (s *service) RemoveBranch(ctx context.Context, actor contextutil.Identity, id, branchID int64) error {
	emp, err := s.own(ctx, actor, id)
	if err != nil {
		return err
	}

	ok, err := s.repo.RemoveBranch(ctx, emp.ID, branchID)
	if err != nil {
		return apperror.FromDB(err)
	}
	if !ok {
		return companyerrors.ErrBranchNotFound
	}
	return nil
}

func (s *service) own(ctx context.Context, actor contextutil.Identity, id int64) (*Employee, error) {
	emp, err := s.repo.FindByID(ctx, actor.CompanyID, id)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	if emp == nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}
	return emp, nil
}
