package company

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
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetMe(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comp, err := h.service.GetMine(c.Request.Context(), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company retrieved successfully", comp)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.UpdateMine(c.Request.Context(), actor, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated successfully", comp)
}

func (h *Handler) ListBranches(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	branches, err := h.service.ListBranches(c.Request.Context(), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Branches retrieved successfully", branches)
}

func (h *Handler) CreateBranch(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	branch, err := h.service.CreateBranch(c.Request.Context(), actor, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Branch created successfully", branch)
}

func (h *Handler) UpdateBranch(c *gin.Context) {
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

	var req UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	branch, err := h.service.UpdateBranch(c.Request.Context(), actor, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Branch updated successfully", branch)
}

func (h *Handler) DeleteBranch(c *gin.Context) {
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

	if err := h.service.DeleteBranch(c.Request.Context(), actor, id); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Branch deleted successfully", nil)
}
