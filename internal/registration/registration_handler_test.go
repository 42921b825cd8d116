package registration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hms/internal/middleware"
	"go-hms/internal/rbac"
	"go-hms/internal/registration"
	registrationerrors "go-hms/internal/registration/errors"
	registrationMock "go-hms/internal/registration/mock"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"
	"go-hms/internal/shared/response"
	"go-hms/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var caller = contextutil.Identity{UserID: 1, CompanyID: 10, RoleID: 1, RoleName: rbac.AdministratorRoleName}

func newTestRouter(handler *registration.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop(), false))
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/register-complete", handler.RegisterComplete)
	r.POST("/users", func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, caller)
		c.Next()
	}, handler.RegisterCompanyUser)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const registerBody = `{"username":"newuser","email":"newuser@test.com","password":"Test@123456","first_name":"New","last_name":"User","phone":"9876543210"}`

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := registrationMock.NewMockService(ctrl)
	cookie := response.CookieOptions{MaxAge: time.Hour}
	r := newTestRouter(registration.NewHandler(mockService, cookie, zap.NewNop()))

	t.Run("Created With Tokens And Cookie", func(t *testing.T) {
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(registration.AuthResponse{
				User:         user.IdentityView{UserID: 5, Email: "newuser@test.com"},
				Token:        "access",
				RefreshToken: "refresh",
				ExpiresAt:    time.Unix(1700000000, 0).UTC(),
			}, nil)

		w := postJSON(r, "/auth/register", registerBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		var res struct {
			Success bool `json:"success"`
			Data    struct {
				User         map[string]any `json:"user"`
				Token        string         `json:"token"`
				RefreshToken string         `json:"refreshToken"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, "newuser@test.com", res.Data.User["email"])
		assert.Equal(t, "access", res.Data.Token)
		assert.Equal(t, "refresh", res.Data.RefreshToken)

		setCookie := w.Header().Get("Set-Cookie")
		assert.True(t, strings.HasPrefix(setCookie, "refreshToken=refresh"))
		assert.Contains(t, setCookie, "HttpOnly")
	})

	t.Run("Duplicate Is 409", func(t *testing.T) {
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(registration.AuthResponse{}, registrationerrors.ErrEmailTaken)

		w := postJSON(r, "/auth/register", registerBody)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), `"field":"email"`)
	})

	t.Run("Weak Password Is 400", func(t *testing.T) {
		body := strings.Replace(registerBody, "Test@123456", "password", 1)
		w := postJSON(r, "/auth/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"password"`)
	})
}

func TestHandler_RegisterComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := registrationMock.NewMockService(ctrl)
	r := newTestRouter(registration.NewHandler(mockService, response.CookieOptions{MaxAge: time.Hour}, zap.NewNop()))

	t.Run("Is Admin Defaults To True", func(t *testing.T) {
		mockService.EXPECT().RegisterComplete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req registration.RegisterCompleteRequest) (registration.AuthResponse, error) {
				assert.Nil(t, req.IsAdmin)
				assert.Empty(t, req.Username)
				return registration.AuthResponse{RefreshToken: "refresh"}, nil
			})

		w := postJSON(r, "/auth/register-complete",
			`{"email":"dr@test.com","password":"Test@123456","first_name":"Greg","last_name":"House","phone":"9876543210","branch_name":"Princeton"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing Email", func(t *testing.T) {
		w := postJSON(r, "/auth/register-complete", `{"password":"Test@123456","first_name":"Greg","last_name":"House","phone":"9876543210"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_RegisterCompanyUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := registrationMock.NewMockService(ctrl)
	r := newTestRouter(registration.NewHandler(mockService, response.CookieOptions{MaxAge: time.Hour}, zap.NewNop()))

	t.Run("Payload Company Is Ignored", func(t *testing.T) {
		mockService.EXPECT().RegisterCompanyUser(gomock.Any(), caller, gomock.Any()).
			Return(registration.AuthResponse{User: user.IdentityView{UserID: 6, CompanyID: 10}, RefreshToken: "refresh"}, nil)

		w := postJSON(r, "/users",
			`{"username":"nurse","email":"nurse@test.com","password":"Test@123456","first_name":"Nina","last_name":"Nurse","phone":"9876543210","company_id":99}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "User registered successfully under your company")
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})
}
