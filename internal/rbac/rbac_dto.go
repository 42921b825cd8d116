package rbac

import (
	"go-hms/internal/shared/query"

	"github.com/google/uuid"
)

type RoleResponse struct {
	ID          int64     `json:"role_id"`
	UUID        uuid.UUID `json:"uuid"`
	Name        string    `json:"role_name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
}

type RoleListResponse struct {
	Items []RoleResponse
	Meta  query.PageMeta
}

type CreateRoleRequest struct {
	Name        string `json:"role_name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// PermissionSet is what a role may see and do.
type PermissionSet struct {
	Menus    []RoleMenuView    `json:"role_menus"`
	Features []RoleFeatureView `json:"role_features"`
}

type RolePermissionsResponse struct {
	Role RoleResponse `json:"role"`
	PermissionSet
}

type MenuGrant struct {
	MenuID    int64 `json:"menu_id" binding:"required,gt=0"`
	CanView   bool  `json:"can_view"`
	CanCreate bool  `json:"can_create"`
	CanEdit   bool  `json:"can_edit"`
	CanDelete bool  `json:"can_delete"`
}

type AssignMenusRequest struct {
	Menus []MenuGrant `json:"menus" binding:"required,min=1,dive"`
}

type FeatureGrant struct {
	FeatureID int64 `json:"feature_id" binding:"required,gt=0"`
	IsActive  bool  `json:"is_active"`
}

type AssignFeaturesRequest struct {
	Features []FeatureGrant `json:"features" binding:"required,min=1,dive"`
}

type MenuNode struct {
	ID        int64      `json:"menu_id"`
	Name      string     `json:"menu_name"`
	Path      string     `json:"menu_path,omitempty"`
	Icon      string     `json:"icon,omitempty"`
	SortOrder int        `json:"sort_order"`
	Children  []MenuNode `json:"children,omitempty"`
}

func toRoleResponse(r *Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		UUID:        r.UUID,
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// buildMenuTree nests menus under their parents; menus whose parent is
// missing or inactive are promoted to roots.
func buildMenuTree(menus []Menu) []MenuNode {
	known := make(map[int64]bool, len(menus))
	for _, m := range menus {
		known[m.ID] = true
	}

	children := make(map[int64][]Menu)
	roots := make([]Menu, 0)
	for _, m := range menus {
		if m.ParentID != nil && known[*m.ParentID] && *m.ParentID != m.ID {
			children[*m.ParentID] = append(children[*m.ParentID], m)
			continue
		}
		roots = append(roots, m)
	}

	var build func(m Menu, depth int) MenuNode
	build = func(m Menu, depth int) MenuNode {
		node := MenuNode{ID: m.ID, Name: m.Name, Path: m.Path, Icon: m.Icon, SortOrder: m.SortOrder}
		if depth > len(menus) {
			return node
		}
		for _, c := range children[m.ID] {
			node.Children = append(node.Children, build(c, depth+1))
		}
		return node
	}

	out := make([]MenuNode, 0, len(roots))
	for _, m := range roots {
		out = append(out, build(m, 0))
	}
	return out
}
