package employee

import (
	"context"
	"strings"

	"go-hms/internal/shared/query"
	"go-hms/internal/shared/repository"
	"go-hms/internal/tenant"

	"gorm.io/gorm"
)

var (
	employeeTable       = repository.Options{Table: "employees", SoftDelete: true}
	employeeBranchTable = repository.Options{Table: "employee_branches"}

	sortableColumns = map[string]string{
		"first_name":    "first_name",
		"last_name":     "last_name",
		"employee_code": "employee_code",
		"created_at":    "created_at",
	}
)

type ListFilter struct {
	Search     string
	BranchID   *int64
	IsDoctor   *bool
	Pagination query.Pagination
}

//go:generate mockgen -destination=mock/employee_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, emp *Employee, actor *int64) error
	FindByID(ctx context.Context, companyID, id int64) (*Employee, error)
	List(ctx context.Context, companyID int64, f ListFilter) (repository.Page[Employee], error)
	UpdateProfile(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error)
	AssignBranch(ctx context.Context, link *EmployeeBranch, actor *int64) error
	RemoveBranch(ctx context.Context, employeeID, branchID int64) (bool, error)
	BranchIDs(ctx context.Context, employeeID int64) ([]int64, error)
}

type employeeRepo struct {
	employees *repository.Store[Employee]
	branches  *repository.Store[EmployeeBranch]
}

func NewRepository(db *gorm.DB) Repository {
	return &employeeRepo{
		employees: repository.NewStore[Employee](db, employeeTable),
		branches:  repository.NewStore[EmployeeBranch](db, employeeBranchTable),
	}
}

func (r *employeeRepo) WithTx(tx *gorm.DB) Repository {
	return &employeeRepo{
		employees: r.employees.WithTx(tx),
		branches:  r.branches.WithTx(tx),
	}
}

func (r *employeeRepo) Create(ctx context.Context, emp *Employee, actor *int64) error {
	return r.employees.Create(ctx, emp, actor)
}

// FindByID returns nil for employees of other companies.
func (r *employeeRepo) FindByID(ctx context.Context, companyID, id int64) (*Employee, error) {
	emp, err := r.employees.FindByKey(ctx, id)
	if err != nil || emp == nil {
		return nil, err
	}
	if emp.CompanyID != companyID {
		return nil, nil
	}
	return emp, nil
}

func (r *employeeRepo) List(ctx context.Context, companyID int64, f ListFilter) (repository.Page[Employee], error) {
	filter := repository.Filter{
		Scopes:     []func(*gorm.DB) *gorm.DB{tenant.Scope(companyID)},
		Sortable:   sortableColumns,
		Pagination: f.Pagination,
	}
	if f.BranchID != nil {
		filter.Scopes = append(filter.Scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("branch_id = ?", *f.BranchID)
		})
	}
	if f.IsDoctor != nil {
		filter.Scopes = append(filter.Scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("is_doctor = ?", *f.IsDoctor)
		})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		filter.Scopes = append(filter.Scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(employee_code) LIKE ?)", like, like, like)
		})
	}
	return r.employees.FindAll(ctx, filter)
}

func (r *employeeRepo) UpdateProfile(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error) {
	return r.employees.Update(ctx, id, fields, actor)
}

func (r *employeeRepo) AssignBranch(ctx context.Context, link *EmployeeBranch, actor *int64) error {
	return r.branches.Create(ctx, link, actor)
}

func (r *employeeRepo) RemoveBranch(ctx context.Context, employeeID, branchID int64) (bool, error) {
	res := r.branches.Conn(ctx).
		Where("employee_id = ? AND branch_id = ?", employeeID, branchID).
		Delete(&EmployeeBranch{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *employeeRepo) BranchIDs(ctx context.Context, employeeID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.branches.Conn(ctx).
		Model(&EmployeeBranch{}).
		Where("employee_id = ?", employeeID).
		Order("is_primary DESC, branch_id ASC").
		Pluck("branch_id", &ids).Error
	return ids, err
}
