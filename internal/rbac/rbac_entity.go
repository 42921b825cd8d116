package rbac

import "go-hms/internal/shared/repository"

const (
	AdministratorRoleName        = "Administrator"
	AdministratorRoleDescription = "System Administrator"
)

// Menu actions understood by the enforcer.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// Role is a global catalog entry shared by every company.
type Role struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"column:role_name;type:varchar(100);not null;uniqueIndex:uq_roles_name"`
	Description string `gorm:"type:varchar(255)"`
	repository.Audit
	repository.Active
}

func (Role) TableName() string { return "roles" }

type Menu struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ParentID  *int64 `gorm:"index"`
	Name      string `gorm:"column:menu_name;type:varchar(100);not null;uniqueIndex:uq_menus_name"`
	Path      string `gorm:"column:menu_path;type:varchar(255)"`
	Icon      string `gorm:"type:varchar(100)"`
	SortOrder int    `gorm:"not null;default:0"`
	repository.Audit
	repository.Active
}

func (Menu) TableName() string { return "menus" }

type Feature struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"column:feature_name;type:varchar(100);not null;uniqueIndex:uq_features_name"`
	Description string `gorm:"type:varchar(255)"`
	repository.Audit
	repository.Active
}

func (Feature) TableName() string { return "features" }

type RoleMenu struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	RoleID    int64 `gorm:"not null;uniqueIndex:uq_role_menus,priority:1"`
	MenuID    int64 `gorm:"not null;uniqueIndex:uq_role_menus,priority:2"`
	CanView   bool  `gorm:"not null;default:false"`
	CanCreate bool  `gorm:"not null;default:false"`
	CanEdit   bool  `gorm:"not null;default:false"`
	CanDelete bool  `gorm:"not null;default:false"`
	repository.Audit
}

func (RoleMenu) TableName() string { return "role_menus" }

type RoleFeature struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	RoleID    int64 `gorm:"not null;uniqueIndex:uq_role_features,priority:1"`
	FeatureID int64 `gorm:"not null;uniqueIndex:uq_role_features,priority:2"`
	IsActive  bool  `gorm:"not null"`
	repository.Audit
}

func (RoleFeature) TableName() string { return "role_features" }

// RoleMenuView is a RoleMenu joined with its menu.
type RoleMenuView struct {
	MenuID    int64  `json:"menu_id"`
	MenuName  string `json:"menu_name"`
	MenuPath  string `json:"menu_path,omitempty"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	CanView   bool   `json:"can_view"`
	CanCreate bool   `json:"can_create"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

// Allows reports whether the grant covers action.
func (v RoleMenuView) Allows(action string) bool {
	switch action {
	case ActionView:
		return v.CanView
	case ActionCreate:
		return v.CanCreate
	case ActionEdit:
		return v.CanEdit
	case ActionDelete:
		return v.CanDelete
	}
	return false
}

type RoleFeatureView struct {
	FeatureID   int64  `json:"feature_id"`
	FeatureName string `json:"feature_name"`
	IsActive    bool   `json:"is_active"`
}
