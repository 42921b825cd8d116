package user

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	f := ListFilter{
		Search:     c.Query("search"),
		Status:     Status(c.Query("status")),
		Pagination: query.ParsePagination(c),
	}
	if v := c.Query("role_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			_ = c.Error(apperror.InvalidField("role_id"))
			return
		}
		f.RoleID = &id
	}

	resp, err := h.service.List(c.Request.Context(), actor, f)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Users retrieved successfully", resp.Items, resp.Meta)
}

func (h *Handler) Stats(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User statistics retrieved successfully", stats)
}

func (h *Handler) GetByID(c *gin.Context) {
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

	view, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved successfully", view)
}

func (h *Handler) Update(c *gin.Context) {
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

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	view, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated successfully", view)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
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

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	view, err := h.service.UpdateStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User status updated successfully", view)
}

func (h *Handler) Delete(c *gin.Context) {
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

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
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

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), actor, id, req); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password reset successfully", nil)
}
