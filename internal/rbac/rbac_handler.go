package rbac

import (
	"net/http"

	"go-hms/internal/middleware"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/query"
	"go-hms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListRoles(c *gin.Context) {
	resp, err := h.service.ListRoles(c.Request.Context(), query.ParsePagination(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Roles retrieved successfully", resp.Items, resp.Meta)
}

func (h *Handler) CreateRole(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	role, err := h.service.CreateRole(c.Request.Context(), actor, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Role created successfully", role)
}

func (h *Handler) RolePermissions(c *gin.Context) {
	id, err := query.ParseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.RolePermissions(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Role permissions retrieved successfully", resp)
}

func (h *Handler) AssignMenus(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, err := query.ParseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req AssignMenusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AssignMenus(c.Request.Context(), actor, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Role menus updated successfully", resp)
}

func (h *Handler) AssignFeatures(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, err := query.ParseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req AssignFeaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AssignFeatures(c.Request.Context(), actor, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Role features updated successfully", resp)
}

func (h *Handler) MenuTree(c *gin.Context) {
	tree, err := h.service.MenuTree(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Menus retrieved successfully", tree)
}
