package middleware

import (
	"net/http"
	"slices"

	autherrors "go-hms/internal/auth/errors"
	"go-hms/internal/credential"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
)

const (
	ContextIdentity  = "identity"
	ContextUserID    = "user_id"
	ContextCompanyID = "company_id"
)

var (
	ErrCompanyAccessDenied = apperror.New(apperror.CodeCompanyAccessDenied, "Access denied to this company", http.StatusForbidden)
	ErrBranchAccessDenied  = apperror.New(apperror.CodeBranchAccessDenied, "Access denied to this branch", http.StatusForbidden)
	ErrRoleAccessDenied    = apperror.New(apperror.CodeRoleAccessDenied, "Insufficient role permissions", http.StatusForbidden)
)

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func attachIdentity(c *gin.Context, id contextutil.Identity) {
	c.Set(ContextIdentity, id)
	c.Set(ContextUserID, id.UserID)
	c.Set(ContextCompanyID, id.CompanyID)
	c.Request = c.Request.WithContext(contextutil.WithIdentity(c.Request.Context(), id))
}

// CurrentIdentity returns the identity attached by Authenticate.
func CurrentIdentity(c *gin.Context) (contextutil.Identity, error) {
	if v, ok := c.Get(ContextIdentity); ok {
		if id, ok := v.(contextutil.Identity); ok {
			return id, nil
		}
	}
	if id, ok := contextutil.IdentityFrom(c.Request.Context()); ok {
		return id, nil
	}
	return contextutil.Identity{}, autherrors.ErrAuthRequired
}

// Authenticate requires "Authorization: Bearer <access token>".
func Authenticate(tokens credential.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := credential.ExtractBearer(c.GetHeader("Authorization"))
		if err != nil {
			abortWithError(c, err)
			return
		}

		claims, err := tokens.Verify(raw, credential.AccessToken)
		if err != nil {
			abortWithError(c, err)
			return
		}

		attachIdentity(c, claims.Identity())
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present and otherwise
// lets the request through unauthenticated.
func OptionalAuth(tokens credential.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := credential.ExtractBearer(c.GetHeader("Authorization"))
		if err == nil {
			if claims, err := tokens.Verify(raw, credential.AccessToken); err == nil {
				attachIdentity(c, claims.Identity())
			}
		}
		c.Next()
	}
}

func RequireRole(roleIDs ...int64) gin.HandlerFunc {
	return guard(ErrRoleAccessDenied, func(id contextutil.Identity) bool {
		return slices.Contains(roleIDs, id.RoleID)
	})
}

func RequireRoleName(names ...string) gin.HandlerFunc {
	return guard(ErrRoleAccessDenied, func(id contextutil.Identity) bool {
		return slices.Contains(names, id.RoleName)
	})
}

// RequireAdministrator admits Administrator and Super Admin roles.
func RequireAdministrator() gin.HandlerFunc {
	return guard(ErrRoleAccessDenied, func(id contextutil.Identity) bool {
		return id.IsAdministrator()
	})
}

func RequireCompany(companyID int64) gin.HandlerFunc {
	return guard(ErrCompanyAccessDenied, func(id contextutil.Identity) bool {
		return id.CompanyID == companyID
	})
}

func RequireBranch(branchID int64) gin.HandlerFunc {
	return guard(ErrBranchAccessDenied, func(id contextutil.Identity) bool {
		return id.BranchID != nil && *id.BranchID == branchID
	})
}

func guard(denied *apperror.AppError, allow func(contextutil.Identity) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := CurrentIdentity(c)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !allow(id) {
			abortWithError(c, denied)
			return
		}
		c.Next()
	}
}
