package employee

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
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
		Pagination: query.ParsePagination(c),
	}
	if v := c.Query("branch_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			_ = c.Error(apperror.InvalidField("branch_id"))
			return
		}
		f.BranchID = &id
	}
	if v := c.Query("is_doctor"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			_ = c.Error(apperror.InvalidField("is_doctor"))
			return
		}
		f.IsDoctor = &b
	}

	resp, err := h.service.List(c.Request.Context(), actor, f)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Paginated(c, http.StatusOK, "Employees retrieved successfully", resp.Items, resp.Meta)
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

	resp, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employee retrieved successfully", resp)
}

func (h *Handler) AssignBranch(c *gin.Context) {
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

	var req AssignBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AssignBranch(c.Request.Context(), actor, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Branch assigned successfully", resp)
}

func (h *Handler) RemoveBranch(c *gin.Context) {
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
	branchID, err := query.ParseID(c, "branch_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.RemoveBranch(c.Request.Context(), actor, id, branchID); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Branch removed successfully", nil)
}
