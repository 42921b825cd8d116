package company

import (
	"context"

	"go-hms/internal/shared/repository"

	"gorm.io/gorm"
)

var (
	companyTable = repository.Options{Table: "companies", SoftDelete: true}
	branchTable  = repository.Options{Table: "branches", SoftDelete: true}
)

// Find* methods return nil without error when no active row matches.
//
//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, comp *Company, actor *int64) error
	FindByID(ctx context.Context, id int64) (*Company, error)
	Update(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error)

	CreateBranch(ctx context.Context, branch *Branch, actor *int64) error
	FindBranch(ctx context.Context, companyID, branchID int64) (*Branch, error)
	FirstActiveBranch(ctx context.Context, companyID int64) (*Branch, error)
	ListBranches(ctx context.Context, companyID int64) ([]Branch, error)
	CountActiveBranches(ctx context.Context, companyID int64) (int64, error)
	UpdateBranch(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error)
	SoftDeleteBranch(ctx context.Context, id int64, actor *int64) (bool, error)
}

type companyRepo struct {
	companies *repository.Store[Company]
	branches  *repository.Store[Branch]
}

func NewRepository(db *gorm.DB) Repository {
	return &companyRepo{
		companies: repository.NewStore[Company](db, companyTable),
		branches:  repository.NewStore[Branch](db, branchTable),
	}
}

func (r *companyRepo) WithTx(tx *gorm.DB) Repository {
	return &companyRepo{
		companies: r.companies.WithTx(tx),
		branches:  r.branches.WithTx(tx),
	}
}

func (r *companyRepo) Create(ctx context.Context, comp *Company, actor *int64) error {
	return r.companies.Create(ctx, comp, actor)
}

func (r *companyRepo) FindByID(ctx context.Context, id int64) (*Company, error) {
	return r.companies.FindByKey(ctx, id)
}

func (r *companyRepo) Update(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error) {
	return r.companies.Update(ctx, id, fields, actor)
}

func (r *companyRepo) CreateBranch(ctx context.Context, branch *Branch, actor *int64) error {
	return r.branches.Create(ctx, branch, actor)
}

func (r *companyRepo) FindBranch(ctx context.Context, companyID, branchID int64) (*Branch, error) {
	b, err := r.branches.FindByKey(ctx, branchID)
	if err != nil || b == nil {
		return nil, err
	}
	if b.CompanyID != companyID {
		return nil, nil
	}
	return b, nil
}

func (r *companyRepo) FirstActiveBranch(ctx context.Context, companyID int64) (*Branch, error) {
	var branches []Branch
	err := r.branches.Conn(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("id ASC").
		Limit(1).
		Find(&branches).Error
	if err != nil || len(branches) == 0 {
		return nil, err
	}
	return &branches[0], nil
}

func (r *companyRepo) ListBranches(ctx context.Context, companyID int64) ([]Branch, error) {
	branches := make([]Branch, 0)
	err := r.branches.Conn(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("branch_name ASC").
		Find(&branches).Error
	return branches, err
}

func (r *companyRepo) CountActiveBranches(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.branches.Conn(ctx).
		Model(&Branch{}).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Count(&count).Error
	return count, err
}

func (r *companyRepo) UpdateBranch(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error) {
	return r.branches.Update(ctx, id, fields, actor)
}

func (r *companyRepo) SoftDeleteBranch(ctx context.Context, id int64, actor *int64) (bool, error) {
	return r.branches.SoftDelete(ctx, id, actor)
}
