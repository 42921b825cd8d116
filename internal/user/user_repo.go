package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hms/internal/shared/query"
	"go-hms/internal/shared/repository"
	"go-hms/internal/tenant"

	"gorm.io/gorm"
)

var (
	userTable = repository.Options{Table: "users"}

	sortableColumns = map[string]string{
		"username":   "users.username",
		"email":      "users.email",
		"status":     "users.status",
		"last_login": "users.last_login",
		"created_at": "users.created_at",
	}
)

const identityColumns = `users.id AS user_id, users.uuid AS user_uuid, users.username, users.email,
	users.status, users.last_login, users.created_at,
	employees.id AS employee_id, employees.uuid AS employee_uuid, employees.employee_code,
	employees.first_name, employees.last_name, employees.phone, employees.designation,
	employees.department, employees.is_doctor,
	roles.id AS role_id, roles.role_name,
	companies.id AS company_id, companies.company_name,
	branches.id AS branch_id, branches.branch_name`

type ListFilter struct {
	Search     string
	Status     Status
	RoleID     *int64
	Pagination query.Pagination
}

//go:generate mockgen -destination=mock/user_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *User, actor *int64) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindIdentity(ctx context.Context, id int64) (*IdentityView, error)
	ListByCompany(ctx context.Context, companyID int64, f ListFilter) (repository.Page[IdentityView], error)
	StatsByCompany(ctx context.Context, companyID int64) (Stats, error)
	Update(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	UpdatePassword(ctx context.Context, id int64, hash string, actor *int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status Status, actor *int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID *int64) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID *int64) (bool, error)
}

type userRepo struct {
	users *repository.Store[User]
}

func NewRepository(db *gorm.DB) Repository {
	return &userRepo{users: repository.NewStore[User](db, userTable)}
}

func (r *userRepo) WithTx(tx *gorm.DB) Repository {
	return &userRepo{users: r.users.WithTx(tx)}
}

// Create lowercases the email; uq_users_email and uq_users_username close
// races the pre-checks leave open.
func (r *userRepo) Create(ctx context.Context, u *User, actor *int64) error {
	u.Email = NormalizeEmail(u.Email)
	if u.Status == "" {
		u.Status = StatusActive
	}
	return r.users.Create(ctx, u, actor)
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	return r.users.FindByKey(ctx, id)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "email = ?", NormalizeEmail(email))
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.findOne(ctx, "username = ?", strings.TrimSpace(username))
}

func (r *userRepo) findOne(ctx context.Context, cond string, arg any) (*User, error) {
	var u User
	err := r.users.Conn(ctx).Where(cond, arg).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) identity(ctx context.Context) *gorm.DB {
	return r.users.Conn(ctx).
		Table("users").
		Joins("JOIN employees ON employees.id = users.employee_id AND employees.is_active = ?", true).
		Joins("JOIN roles ON roles.id = users.role_id").
		Joins("JOIN companies ON companies.id = employees.company_id").
		Joins("LEFT JOIN branches ON branches.id = employees.branch_id")
}

// FindIdentity ignores the user's status; callers decide what inactive means.
func (r *userRepo) FindIdentity(ctx context.Context, id int64) (*IdentityView, error) {
	var views []IdentityView
	err := r.identity(ctx).
		Select(identityColumns).
		Where("users.id = ?", id).
		Limit(1).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}

func (r *userRepo) ListByCompany(ctx context.Context, companyID int64, f ListFilter) (repository.Page[IdentityView], error) {
	db := r.identity(ctx).Scopes(tenant.Column("employees.company_id", companyID))
	if f.Status != "" {
		db = db.Where("users.status = ?", f.Status)
	}
	if f.RoleID != nil {
		db = db.Where("users.role_id = ?", *f.RoleID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("(LOWER(users.username) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(employees.first_name) LIKE ? OR LOWER(employees.last_name) LIKE ?)",
			like, like, like, like)
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return repository.Page[IdentityView]{}, err
	}

	p := f.Pagination.Normalize()
	items := make([]IdentityView, 0)
	err := query.Apply(db.Select(identityColumns), p, sortableColumns, "users.created_at").
		Scan(&items).Error
	if err != nil {
		return repository.Page[IdentityView]{}, err
	}
	return repository.Page[IdentityView]{Items: items, Meta: query.BuildMeta(p, total)}, nil
}

func (r *userRepo) StatsByCompany(ctx context.Context, companyID int64) (Stats, error) {
	var stats Stats
	err := r.identity(ctx).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE users.status = ?) AS active,
			COUNT(*) FILTER (WHERE users.status = ?) AS inactive,
			COUNT(*) FILTER (WHERE users.status = ?) AS suspended,
			COUNT(*) FILTER (WHERE employees.is_doctor) AS doctors`,
			StatusActive, StatusInactive, StatusSuspended).
		Scopes(tenant.Column("employees.company_id", companyID)).
		Scan(&stats).Error
	return stats, err
}

func (r *userRepo) Update(ctx context.Context, id int64, fields map[string]any, actor *int64) (bool, error) {
	if email, ok := fields["email"].(string); ok {
		fields["email"] = NormalizeEmail(email)
	}
	return r.users.Update(ctx, id, fields, actor)
}

// UpdateLastLogin leaves updated_at/updated_by alone.
func (r *userRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.users.Conn(ctx).
		Table(userTable.Table).
		Where("id = ?", id).
		UpdateColumn("last_login", at).Error
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, hash string, actor *int64) (bool, error) {
	return r.users.Update(ctx, id, map[string]any{"password_hash": hash}, actor)
}

func (r *userRepo) UpdateStatus(ctx context.Context, id int64, status Status, actor *int64) (bool, error) {
	return r.users.Update(ctx, id, map[string]any{"status": status}, actor)
}

func (r *userRepo) EmailTaken(ctx context.Context, email string, excludeID *int64) (bool, error) {
	return r.users.ExistsByFilter(ctx, map[string]any{"email": NormalizeEmail(email)}, excludeID)
}

func (r *userRepo) UsernameTaken(ctx context.Context, username string, excludeID *int64) (bool, error) {
	return r.users.ExistsByFilter(ctx, map[string]any{"username": strings.TrimSpace(username)}, excludeID)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
