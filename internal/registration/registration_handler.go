package registration

import (
	"net/http"

	"go-hms/internal/middleware"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	cookie  response.CookieOptions
	logger  *zap.Logger
}

func NewHandler(service Service, cookie response.CookieOptions, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("registration.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.handler")
	}
	return &Handler{service: service, cookie: cookie, logger: l}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SetRefreshCookie(c, resp.RefreshToken, h.cookie)
	response.Success(c, http.StatusCreated, "User registered successfully", resp)
}

func (h *Handler) RegisterComplete(c *gin.Context) {
	var req RegisterCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RegisterComplete(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SetRefreshCookie(c, resp.RefreshToken, h.cookie)
	response.Success(c, http.StatusCreated, "Registration completed successfully", resp)
}

// RegisterCompanyUser leaves the caller's own refresh cookie untouched.
func (h *Handler) RegisterCompanyUser(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req RegisterCompanyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RegisterCompanyUser(c.Request.Context(), actor, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User registered successfully under your company", resp)
}
