package rbac

import (
	"context"

	rbacerrors "go-hms/internal/rbac/errors"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"
	"go-hms/internal/shared/query"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const menuTreeKey = "menu-tree"

//go:generate mockgen -destination=mock/rbac_service_mock.go -package=mock . Service
type Service interface {
	ListRoles(ctx context.Context, p query.Pagination) (RoleListResponse, error)
	CreateRole(ctx context.Context, actor contextutil.Identity, req CreateRoleRequest) (RoleResponse, error)
	RolePermissions(ctx context.Context, roleID int64) (RolePermissionsResponse, error)
	Permissions(ctx context.Context, roleID int64) (PermissionSet, error)
	AssignMenus(ctx context.Context, actor contextutil.Identity, roleID int64, req AssignMenusRequest) (RolePermissionsResponse, error)
	AssignFeatures(ctx context.Context, actor contextutil.Identity, roleID int64, req AssignFeaturesRequest) (RolePermissionsResponse, error)
	MenuTree(ctx context.Context) ([]MenuNode, error)
}

type service struct {
	repo     Repository
	policies PolicyCache
	sf       *singleflight.Group
	logger   *zap.Logger
}

// NewService takes the enforcer's policy cache so menu grant changes apply to
// the next permission check. policies may be nil.
func NewService(repo Repository, policies PolicyCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{repo: repo, policies: policies, sf: &singleflight.Group{}, logger: l}
}

func (s *service) ListRoles(ctx context.Context, p query.Pagination) (RoleListResponse, error) {
	page, err := s.repo.ListRoles(ctx, p)
	if err != nil {
		return RoleListResponse{}, apperror.FromDB(err)
	}

	items := make([]RoleResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toRoleResponse(&page.Items[i]))
	}
	return RoleListResponse{Items: items, Meta: page.Meta}, nil
}

func (s *service) CreateRole(ctx context.Context, actor contextutil.Identity, req CreateRoleRequest) (RoleResponse, error) {
	existing, err := s.repo.FindRoleByName(ctx, req.Name)
	if err != nil {
		return RoleResponse{}, apperror.FromDB(err)
	}
	if existing != nil {
		return RoleResponse{}, rbacerrors.ErrRoleNameTaken
	}

	role := &Role{Name: req.Name, Description: req.Description}
	if err := s.repo.CreateRole(ctx, role, &actor.UserID); err != nil {
		return RoleResponse{}, apperror.FromDB(err)
	}

	s.logger.Info("role created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("role_id", role.ID),
		zap.String("role_name", role.Name),
		zap.Int64("created_by", actor.UserID),
	)
	return toRoleResponse(role), nil
}

func (s *service) RolePermissions(ctx context.Context, roleID int64) (RolePermissionsResponse, error) {
	role, err := s.role(ctx, roleID)
	if err != nil {
		return RolePermissionsResponse{}, err
	}

	set, err := s.Permissions(ctx, role.ID)
	if err != nil {
		return RolePermissionsResponse{}, err
	}
	return RolePermissionsResponse{Role: toRoleResponse(role), PermissionSet: set}, nil
}

func (s *service) Permissions(ctx context.Context, roleID int64) (PermissionSet, error) {
	menus, err := s.repo.RoleMenus(ctx, roleID)
	if err != nil {
		return PermissionSet{}, apperror.FromDB(err)
	}
	features, err := s.repo.RoleFeatures(ctx, roleID)
	if err != nil {
		return PermissionSet{}, apperror.FromDB(err)
	}
	return PermissionSet{Menus: menus, Features: features}, nil
}

func (s *service) AssignMenus(ctx context.Context, actor contextutil.Identity, roleID int64, req AssignMenusRequest) (RolePermissionsResponse, error) {
	role, err := s.mutableRole(ctx, roleID)
	if err != nil {
		return RolePermissionsResponse{}, err
	}

	menus, err := s.repo.ActiveMenus(ctx)
	if err != nil {
		return RolePermissionsResponse{}, apperror.FromDB(err)
	}
	active := make(map[int64]bool, len(menus))
	for _, m := range menus {
		active[m.ID] = true
	}

	rows := make([]RoleMenu, 0, len(req.Menus))
	for _, g := range req.Menus {
		if !active[g.MenuID] {
			return RolePermissionsResponse{}, rbacerrors.ErrMenuNotFound
		}
		rows = append(rows, RoleMenu{
			RoleID:    role.ID,
			MenuID:    g.MenuID,
			CanView:   g.CanView,
			CanCreate: g.CanCreate,
			CanEdit:   g.CanEdit,
			CanDelete: g.CanDelete,
		})
	}

	if err := s.repo.UpsertRoleMenus(ctx, rows, &actor.UserID); err != nil {
		return RolePermissionsResponse{}, apperror.FromDB(err)
	}
	if s.policies != nil {
		s.policies.Invalidate(role.ID)
	}

	s.logger.Info("role menus assigned",
		zap.Int64("role_id", role.ID),
		zap.Int("menus", len(rows)),
		zap.Int64("updated_by", actor.UserID),
	)
	return s.RolePermissions(ctx, role.ID)
}

func (s *service) AssignFeatures(ctx context.Context, actor contextutil.Identity, roleID int64, req AssignFeaturesRequest) (RolePermissionsResponse, error) {
	role, err := s.mutableRole(ctx, roleID)
	if err != nil {
		return RolePermissionsResponse{}, err
	}

	features, err := s.repo.ActiveFeatures(ctx)
	if err != nil {
		return RolePermissionsResponse{}, apperror.FromDB(err)
	}
	active := make(map[int64]bool, len(features))
	for _, f := range features {
		active[f.ID] = true
	}

	rows := make([]RoleFeature, 0, len(req.Features))
	for _, g := range req.Features {
		if !active[g.FeatureID] {
			return RolePermissionsResponse{}, rbacerrors.ErrFeatureNotFound
		}
		rows = append(rows, RoleFeature{RoleID: role.ID, FeatureID: g.FeatureID, IsActive: g.IsActive})
	}

	if err := s.repo.UpsertRoleFeatures(ctx, rows, &actor.UserID); err != nil {
		return RolePermissionsResponse{}, apperror.FromDB(err)
	}

	s.logger.Info("role features assigned",
		zap.Int64("role_id", role.ID),
		zap.Int("features", len(rows)),
		zap.Int64("updated_by", actor.UserID),
	)
	return s.RolePermissions(ctx, role.ID)
}

// MenuTree coalesces concurrent loads of the catalog into one query.
func (s *service) MenuTree(ctx context.Context) ([]MenuNode, error) {
	v, err, shared := s.sf.Do(menuTreeKey, func() (any, error) {
		menus, err := s.repo.ActiveMenus(ctx)
		if err != nil {
			return nil, err
		}
		return buildMenuTree(menus), nil
	})
	if err != nil {
		return nil, apperror.FromDB(err)
	}

	s.logger.Debug("menu tree loaded", zap.Bool("shared", shared))
	return v.([]MenuNode), nil
}

func (s *service) role(ctx context.Context, roleID int64) (*Role, error) {
	role, err := s.repo.FindRole(ctx, roleID)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	if role == nil {
		return nil, rbacerrors.ErrRoleNotFound
	}
	return role, nil
}

func (s *service) mutableRole(ctx context.Context, roleID int64) (*Role, error) {
	role, err := s.role(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role.Name == AdministratorRoleName {
		return nil, rbacerrors.ErrAdministratorRoleLocked
	}
	return role, nil
}
