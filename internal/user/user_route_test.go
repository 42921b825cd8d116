package user_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hms/internal/credential"
	credentialMock "go-hms/internal/credential/mock"
	"go-hms/internal/middleware"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/user"
	userMock "go-hms/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// menuGrants allows exactly the listed menu/action pairs.
type menuGrants map[string]bool

func (g menuGrants) Enforce(_ context.Context, _ int64, menu, action string) (bool, error) {
	return g[menu+":"+action], nil
}

func newRoutedRouter(t *testing.T, service user.Service, grants menuGrants) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	verifier := credentialMock.NewMockTokenVerifier(gomock.NewController(t))
	verifier.EXPECT().Verify("nurse-token", credential.AccessToken).
		Return(&credential.Claims{UserID: 9, RoleID: 3, RoleName: "Nurse", CompanyID: 10, Kind: credential.AccessToken}, nil).
		AnyTimes()

	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop(), false))
	user.RegisterRoutes(r.Group(""), user.NewHandler(service, zap.NewNop()), verifier, grants)
	return r
}

func TestRoutes_UserChangesNeedUsersGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"role change", http.MethodPatch, "/users/5", `{"role_id":1}`},
		{"status change", http.MethodPatch, "/users/5/status", `{"status":"suspended"}`},
		{"delete", http.MethodDelete, "/users/5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no service calls expected
			mockService := userMock.NewMockService(ctrl)
			r := newRoutedRouter(t, mockService, menuGrants{"Users:view": true})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Authorization", "Bearer nurse-token")
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}

	t.Run("granted role reaches the service", func(t *testing.T) {
		mockService := userMock.NewMockService(ctrl)
		r := newRoutedRouter(t, mockService, menuGrants{"Users:edit": true})

		mockService.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), int64(5), user.UpdateStatusRequest{Status: user.StatusSuspended}).
			Return(*view(5, 10, "Doctor", user.StatusSuspended), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/users/5/status", bytes.NewBufferString(`{"status":"suspended"}`))
		req.Header.Set("Authorization", "Bearer nurse-token")
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
