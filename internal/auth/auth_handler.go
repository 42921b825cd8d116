package auth

import (
	"errors"
	"io"
	"net/http"
	"strings"

	autherrors "go-hms/internal/auth/errors"
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
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, cookie: cookie, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SetRefreshCookie(c, resp.RefreshToken, h.cookie)
	response.Success(c, http.StatusOK, "Login successful", resp)
}

// RefreshToken reads the refreshToken cookie first and falls back to the
// request body.
func (h *Handler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(response.RefreshCookieName)
	if token == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			_ = c.Error(apperror.MapValidationError(err))
			return
		}
		token = strings.TrimSpace(req.RefreshToken)
	}
	if token == "" {
		_ = c.Error(autherrors.ErrRefreshTokenRequired)
		return
	}

	session, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SetRefreshCookie(c, session.RefreshToken, h.cookie)
	response.Success(c, http.StatusOK, "Token refreshed successfully", session)
}

// Logout only clears the cookie; issued tokens stay valid until they expire.
func (h *Handler) Logout(c *gin.Context) {
	response.ClearRefreshCookie(c, h.cookie)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) Profile(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	view, err := h.service.Profile(c.Request.Context(), actor.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved successfully", view)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	view, err := h.service.UpdateProfile(c.Request.Context(), actor.UserID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", view)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor.UserID, req); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

func (h *Handler) Permissions(c *gin.Context) {
	actor, err := middleware.CurrentIdentity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	perms, err := h.service.Permissions(c.Request.Context(), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Permissions retrieved successfully", perms)
}
