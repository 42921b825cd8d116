package rbac

import (
	"context"
	"errors"

	"go-hms/internal/shared/query"
	"go-hms/internal/shared/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	roleTable    = repository.Options{Table: "roles", SoftDelete: true}
	menuTable    = repository.Options{Table: "menus", SoftDelete: true}
	featureTable = repository.Options{Table: "features", SoftDelete: true}

	roleSortable = map[string]string{
		"role_name":  "role_name",
		"created_at": "created_at",
	}
)

//go:generate mockgen -destination=mock/rbac_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindRole(ctx context.Context, id int64) (*Role, error)
	FindRoleByName(ctx context.Context, name string) (*Role, error)
	CreateRole(ctx context.Context, role *Role, actor *int64) error
	ListRoles(ctx context.Context, p query.Pagination) (repository.Page[Role], error)

	ActiveMenus(ctx context.Context) ([]Menu, error)
	ActiveFeatures(ctx context.Context) ([]Feature, error)

	UpsertRoleMenus(ctx context.Context, rows []RoleMenu, actor *int64) error
	UpsertRoleFeatures(ctx context.Context, rows []RoleFeature, actor *int64) error
	RoleMenus(ctx context.Context, roleID int64) ([]RoleMenuView, error)
	RoleFeatures(ctx context.Context, roleID int64) ([]RoleFeatureView, error)
}

type rbacRepo struct {
	db       *gorm.DB
	roles    *repository.Store[Role]
	menus    *repository.Store[Menu]
	features *repository.Store[Feature]
}

func NewRepository(db *gorm.DB) Repository {
	return &rbacRepo{
		db:       db,
		roles:    repository.NewStore[Role](db, roleTable),
		menus:    repository.NewStore[Menu](db, menuTable),
		features: repository.NewStore[Feature](db, featureTable),
	}
}

func (r *rbacRepo) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &rbacRepo{
		db:       tx,
		roles:    r.roles.WithTx(tx),
		menus:    r.menus.WithTx(tx),
		features: r.features.WithTx(tx),
	}
}

func (r *rbacRepo) FindRole(ctx context.Context, id int64) (*Role, error) {
	return r.roles.FindByKey(ctx, id)
}

func (r *rbacRepo) FindRoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := r.roles.Conn(ctx).
		Where("role_name = ? AND is_active = ?", name, true).
		Take(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *rbacRepo) CreateRole(ctx context.Context, role *Role, actor *int64) error {
	return r.roles.Create(ctx, role, actor)
}

func (r *rbacRepo) ListRoles(ctx context.Context, p query.Pagination) (repository.Page[Role], error) {
	return r.roles.FindAll(ctx, repository.Filter{Sortable: roleSortable, Pagination: p})
}

func (r *rbacRepo) ActiveMenus(ctx context.Context) ([]Menu, error) {
	menus := make([]Menu, 0)
	err := r.menus.Conn(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&menus).Error
	return menus, err
}

func (r *rbacRepo) ActiveFeatures(ctx context.Context) ([]Feature, error) {
	features := make([]Feature, 0)
	err := r.features.Conn(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&features).Error
	return features, err
}

// UpsertRoleMenus inserts grants or overwrites the flags of existing ones.
func (r *rbacRepo) UpsertRoleMenus(ctx context.Context, rows []RoleMenu, actor *int64) error {
	if len(rows) == 0 {
		return nil
	}
	now := r.roles.Now()
	for i := range rows {
		rows[i].StampCreate(now, actor)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_id"}, {Name: "menu_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"can_view", "can_create", "can_edit", "can_delete", "updated_at", "updated_by"}),
		}).
		Create(&rows).Error
}

func (r *rbacRepo) UpsertRoleFeatures(ctx context.Context, rows []RoleFeature, actor *int64) error {
	if len(rows) == 0 {
		return nil
	}
	now := r.roles.Now()
	for i := range rows {
		rows[i].StampCreate(now, actor)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_id"}, {Name: "feature_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_active", "updated_at", "updated_by"}),
		}).
		Create(&rows).Error
}

func (r *rbacRepo) RoleMenus(ctx context.Context, roleID int64) ([]RoleMenuView, error) {
	out := make([]RoleMenuView, 0)
	err := r.db.WithContext(ctx).
		Table("role_menus").
		Select("menus.id AS menu_id, menus.menu_name, menus.menu_path, menus.parent_id, " +
			"role_menus.can_view, role_menus.can_create, role_menus.can_edit, role_menus.can_delete").
		Joins("JOIN menus ON menus.id = role_menus.menu_id AND menus.is_active = ?", true).
		Where("role_menus.role_id = ?", roleID).
		Order("menus.sort_order ASC, menus.id ASC").
		Scan(&out).Error
	return out, err
}

func (r *rbacRepo) RoleFeatures(ctx context.Context, roleID int64) ([]RoleFeatureView, error) {
	out := make([]RoleFeatureView, 0)
	err := r.db.WithContext(ctx).
		Table("role_features").
		Select("features.id AS feature_id, features.feature_name, role_features.is_active").
		Joins("JOIN features ON features.id = role_features.feature_id AND features.is_active = ?", true).
		Where("role_features.role_id = ?", roleID).
		Order("features.id ASC").
		Scan(&out).Error
	return out, err
}
