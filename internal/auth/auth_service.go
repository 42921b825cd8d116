package auth

import (
	"context"
	"time"

	autherrors "go-hms/internal/auth/errors"
	"go-hms/internal/credential"
	"go-hms/internal/employee"
	"go-hms/internal/rbac"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"
	"go-hms/internal/user"

	"go.uber.org/zap"
)

// PermissionSource resolves what a role may see and do.
type PermissionSource interface {
	Permissions(ctx context.Context, roleID int64) (rbac.PermissionSet, error)
}

//go:generate mockgen -destination=mock/auth_service_mock.go -package=mock . Service
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
	Profile(ctx context.Context, userID int64) (user.IdentityView, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (user.IdentityView, error)
	ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error
	Permissions(ctx context.Context, actor contextutil.Identity) (rbac.PermissionSet, error)
}

type Deps struct {
	Users       user.Repository
	Employees   employee.Repository
	Roles       PermissionSource
	Hasher      credential.PasswordHasher
	Issuer      credential.TokenIssuer
	Verifier    credential.TokenVerifier
}

type service struct {
	Deps
	logger *zap.Logger
	now    func() time.Time
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{Deps: deps, logger: l, now: time.Now}
}

// Login tries the identifier as an email first, then as a username. Unknown
// identifiers and wrong passwords fail the same way.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	u, err := s.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return LoginResponse{}, apperror.FromDB(err)
	}
	if u == nil {
		u, err = s.Users.FindByUsername(ctx, req.Email)
		if err != nil {
			return LoginResponse{}, apperror.FromDB(err)
		}
	}
	hash := credential.DummyHash()
	if u != nil {
		hash = u.PasswordHash
	}
	if !s.Hasher.Verify(req.Password, hash) || u == nil {
		s.logger.Warn("login rejected", zap.String("request_id", contextutil.GetRequestID(ctx)))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive() {
		return LoginResponse{}, autherrors.ErrAccountInactive
	}

	view, err := s.Users.FindIdentity(ctx, u.ID)
	if err != nil {
		return LoginResponse{}, apperror.FromDB(err)
	}
	if view == nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	perms, err := s.Roles.Permissions(ctx, view.RoleID)
	if err != nil {
		return LoginResponse{}, err
	}

	now := s.now().UTC()
	if err := s.Users.UpdateLastLogin(ctx, u.ID, now); err != nil {
		return LoginResponse{}, apperror.FromDB(err)
	}
	view.LastLogin = &now

	session, err := s.session(*view)
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("user logged in",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("user_id", view.UserID),
		zap.Int64("company_id", view.CompanyID),
	)
	return LoginResponse{Session: session, PermissionSet: perms}, nil
}

// Refresh re-reads the user instead of trusting the old claims and always
// returns a new pair.
func (s *service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	claims, err := s.Verifier.Verify(refreshToken, credential.RefreshToken)
	if err != nil {
		return Session{}, err
	}

	view, err := s.Users.FindIdentity(ctx, claims.UserID)
	if err != nil {
		return Session{}, apperror.FromDB(err)
	}
	if view == nil {
		return Session{}, autherrors.ErrUserNotFound
	}
	if !view.IsActive() {
		return Session{}, autherrors.ErrAccountInactive
	}
	return s.session(*view)
}

func (s *service) Profile(ctx context.Context, userID int64) (user.IdentityView, error) {
	view, err := s.Users.FindIdentity(ctx, userID)
	if err != nil {
		return user.IdentityView{}, apperror.FromDB(err)
	}
	if view == nil {
		return user.IdentityView{}, autherrors.ErrUserNotFound
	}
	return *view, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (user.IdentityView, error) {
	fields := req.fields()
	if len(fields) == 0 {
		return user.IdentityView{}, autherrors.ErrNoProfileFields
	}

	view, err := s.Profile(ctx, userID)
	if err != nil {
		return user.IdentityView{}, err
	}

	ok, err := s.Employees.UpdateProfile(ctx, view.EmployeeID, fields, &userID)
	if err != nil {
		return user.IdentityView{}, apperror.FromDB(err)
	}
	if !ok {
		return user.IdentityView{}, autherrors.ErrUserNotFound
	}

	s.logger.Info("profile updated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("user_id", userID),
	)
	return s.Profile(ctx, userID)
}

func (s *service) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error {
	if req.NewPassword == req.CurrentPassword {
		return autherrors.ErrSamePassword
	}

	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return apperror.FromDB(err)
	}
	if u == nil {
		return autherrors.ErrUserNotFound
	}
	if !s.Hasher.Verify(req.CurrentPassword, u.PasswordHash) {
		return autherrors.ErrWrongCurrentPassword
	}

	hash, err := s.Hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	ok, err := s.Users.UpdatePassword(ctx, userID, hash, &userID)
	if err != nil {
		return apperror.FromDB(err)
	}
	if !ok {
		return autherrors.ErrUserNotFound
	}

	s.logger.Info("password changed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("user_id", userID),
	)
	return nil
}

func (s *service) Permissions(ctx context.Context, actor contextutil.Identity) (rbac.PermissionSet, error) {
	return s.Roles.Permissions(ctx, actor.RoleID)
}

func (s *service) session(view user.IdentityView) (Session, error) {
	pair, err := s.Issuer.IssuePair(view.Identity())
	if err != nil {
		return Session{}, err
	}
	return Session{
		User:         view,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}, nil
}
