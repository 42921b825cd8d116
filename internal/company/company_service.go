package company

import (
	"context"

	companyerrors "go-hms/internal/company/errors"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Service exposes the caller's own company and its branches.
//
//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	GetMine(ctx context.Context, actor contextutil.Identity) (CompanyResponse, error)
	UpdateMine(ctx context.Context, actor contextutil.Identity, req UpdateCompanyRequest) (CompanyResponse, error)
	ListBranches(ctx context.Context, actor contextutil.Identity) ([]BranchResponse, error)
	CreateBranch(ctx context.Context, actor contextutil.Identity, req CreateBranchRequest) (BranchResponse, error)
	UpdateBranch(ctx context.Context, actor contextutil.Identity, id int64, req UpdateBranchRequest) (BranchResponse, error)
	DeleteBranch(ctx context.Context, actor contextutil.Identity, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetMine(ctx context.Context, actor contextutil.Identity) (CompanyResponse, error) {
	comp, err := s.repo.FindByID(ctx, actor.CompanyID)
	if err != nil {
		return CompanyResponse{}, apperror.FromDB(err)
	}
	if comp == nil {
		return CompanyResponse{}, companyerrors.ErrCompanyNotFound
	}
	return toCompanyResponse(comp), nil
}

func (s *service) UpdateMine(ctx context.Context, actor contextutil.Identity, req UpdateCompanyRequest) (CompanyResponse, error) {
	fields := req.fields()
	if len(fields) == 0 {
		return CompanyResponse{}, companyerrors.ErrNoFieldsToUpdate
	}

	ok, err := s.repo.Update(ctx, actor.CompanyID, fields, &actor.UserID)
	if err != nil {
		s.logger.Error("update company failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Int64("company_id", actor.CompanyID),
			zap.Error(err),
		)
		return CompanyResponse{}, apperror.FromDB(err)
	}
	if !ok {
		return CompanyResponse{}, companyerrors.ErrCompanyNotFound
	}

	return s.GetMine(ctx, actor)
}

func (s *service) ListBranches(ctx context.Context, actor contextutil.Identity) ([]BranchResponse, error) {
	branches, err := s.repo.ListBranches(ctx, actor.CompanyID)
	if err != nil {
		return nil, apperror.FromDB(err)
	}

	out := make([]BranchResponse, 0, len(branches))
	for i := range branches {
		out = append(out, toBranchResponse(&branches[i]))
	}
	return out, nil
}

func (s *service) CreateBranch(ctx context.Context, actor contextutil.Identity, req CreateBranchRequest) (BranchResponse, error) {
	b := &Branch{
		CompanyID:    actor.CompanyID,
		Name:         req.Name,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Pincode:      req.Pincode,
	}
	if err := s.repo.CreateBranch(ctx, b, &actor.UserID); err != nil {
		return BranchResponse{}, apperror.FromDB(err)
	}

	s.logger.Info("branch created",
		zap.Int64("company_id", actor.CompanyID),
		zap.Int64("branch_id", b.ID),
	)
	return toBranchResponse(b), nil
}

func (s *service) UpdateBranch(ctx context.Context, actor contextutil.Identity, id int64, req UpdateBranchRequest) (BranchResponse, error) {
	if _, err := s.ownBranch(ctx, actor, id); err != nil {
		return BranchResponse{}, err
	}

	fields := req.fields()
	if len(fields) == 0 {
		return BranchResponse{}, companyerrors.ErrNoFieldsToUpdate
	}

	ok, err := s.repo.UpdateBranch(ctx, id, fields, &actor.UserID)
	if err != nil {
		return BranchResponse{}, apperror.FromDB(err)
	}
	if !ok {
		return BranchResponse{}, companyerrors.ErrBranchNotFound
	}

	b, err := s.ownBranch(ctx, actor, id)
	if err != nil {
		return BranchResponse{}, err
	}
	return toBranchResponse(b), nil
}

func (s *service) DeleteBranch(ctx context.Context, actor contextutil.Identity, id int64) error {
	if _, err := s.ownBranch(ctx, actor, id); err != nil {
		return err
	}

	count, err := s.repo.CountActiveBranches(ctx, actor.CompanyID)
	if err != nil {
		return apperror.FromDB(err)
	}
	if count <= 1 {
		return companyerrors.ErrLastBranch
	}

	ok, err := s.repo.SoftDeleteBranch(ctx, id, &actor.UserID)
	if err != nil {
		return apperror.FromDB(err)
	}
	if !ok {
		return companyerrors.ErrBranchNotFound
	}
	return nil
}

// ownBranch hides branches of other companies behind the same not-found.
func (s *service) ownBranch(ctx context.Context, actor contextutil.Identity, id int64) (*Branch, error) {
	b, err := s.repo.FindBranch(ctx, actor.CompanyID, id)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	if b == nil {
		return nil, companyerrors.ErrBranchNotFound
	}
	return b, nil
}
