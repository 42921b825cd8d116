package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	autherrors "go-hms/internal/auth/errors"
	"go-hms/internal/credential"
	credentialMock "go-hms/internal/credential/mock"
	"go-hms/internal/middleware"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop(), false))
	r.Use(mw...)
	r.GET("/protected", func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "user_id": id.UserID, "company_id": id.CompanyID})
	})
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apperror.ErrorBody {
	t.Helper()
	var body apperror.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := credentialMock.NewMockTokenVerifier(ctrl)
	r := newRouter(middleware.Authenticate(verifier))

	t.Run("Success", func(t *testing.T) {
		verifier.EXPECT().Verify("good", credential.AccessToken).
			Return(&credential.Claims{UserID: 42, CompanyID: 3, Kind: credential.AccessToken}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["authenticated"])
		assert.EqualValues(t, 42, res["user_id"])
		assert.EqualValues(t, 3, res["company_id"])
	})

	t.Run("MissingHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeError(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, "No token provided", body.Message)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "No token provided", decodeError(t, w).Message)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		verifier.EXPECT().Verify("old", credential.AccessToken).Return(nil, autherrors.ErrTokenExpired)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer old")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperror.CodeTokenExpired, decodeError(t, w).Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := credentialMock.NewMockTokenVerifier(ctrl)
	r := newRouter(middleware.OptionalAuth(verifier))

	t.Run("InvalidTokenPassesThrough", func(t *testing.T) {
		verifier.EXPECT().Verify("bad", credential.AccessToken).Return(nil, autherrors.ErrInvalidToken)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("ValidTokenAttaches", func(t *testing.T) {
		verifier.EXPECT().Verify("good", credential.AccessToken).
			Return(&credential.Claims{UserID: 5, CompanyID: 1}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"authenticated":true`)
	})
}

func withIdentity(id contextutil.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, id)
		c.Next()
	}
}

func TestGuards(t *testing.T) {
	branch := int64(9)
	caller := contextutil.Identity{UserID: 1, RoleID: 2, RoleName: contextutil.RoleAdministrator, CompanyID: 3, BranchID: &branch}

	tests := []struct {
		name     string
		guard    gin.HandlerFunc
		identity *contextutil.Identity
		status   int
		code     string
	}{
		{"RoleMatches", middleware.RequireRole(2, 5), &caller, http.StatusOK, ""},
		{"RoleMismatch", middleware.RequireRole(5), &caller, http.StatusForbidden, apperror.CodeRoleAccessDenied},
		{"RoleNameMatches", middleware.RequireRoleName(contextutil.RoleAdministrator), &caller, http.StatusOK, ""},
		{"AdministratorMatches", middleware.RequireAdministrator(), &caller, http.StatusOK, ""},
		{"CompanyMatches", middleware.RequireCompany(3), &caller, http.StatusOK, ""},
		{"CompanyMismatch", middleware.RequireCompany(4), &caller, http.StatusForbidden, apperror.CodeCompanyAccessDenied},
		{"BranchMatches", middleware.RequireBranch(9), &caller, http.StatusOK, ""},
		{"BranchMismatch", middleware.RequireBranch(10), &caller, http.StatusForbidden, apperror.CodeBranchAccessDenied},
		{"NoIdentity", middleware.RequireCompany(3), nil, http.StatusUnauthorized, apperror.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var chain []gin.HandlerFunc
			if tt.identity != nil {
				chain = append(chain, withIdentity(*tt.identity))
			}
			chain = append(chain, tt.guard)
			r := newRouter(chain...)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, w).Code)
			}
		})
	}
}

type fakeEnforcer struct {
	allowed bool
	err     error
}

func (f fakeEnforcer) Enforce(_ context.Context, _ int64, _, _ string) (bool, error) {
	return f.allowed, f.err
}

func TestRequirePermission(t *testing.T) {
	caller := contextutil.Identity{UserID: 1, RoleID: 2, CompanyID: 3}

	t.Run("Allowed", func(t *testing.T) {
		r := newRouter(withIdentity(caller), middleware.RequirePermission(fakeEnforcer{allowed: true}, "Roles", "edit"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Denied", func(t *testing.T) {
		r := newRouter(withIdentity(caller), middleware.RequirePermission(fakeEnforcer{}, "Roles", "edit"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("EnforcerError", func(t *testing.T) {
		r := newRouter(withIdentity(caller), middleware.RequirePermission(fakeEnforcer{err: errors.New("boom")}, "Roles", "edit"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "boom", decodeError(t, w).Detail)
	})
}
