package user

import (
	"context"

	"go-hms/internal/credential"
	"go-hms/internal/employee"
	"go-hms/internal/rbac"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"
	"go-hms/internal/shared/database"
	usererrors "go-hms/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RoleLookup resolves a role from the global catalog.
type RoleLookup interface {
	FindRole(ctx context.Context, id int64) (*rbac.Role, error)
}

//go:generate mockgen -destination=mock/user_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context, actor contextutil.Identity, f ListFilter) (UserListResponse, error)
	Stats(ctx context.Context, actor contextutil.Identity) (Stats, error)
	Get(ctx context.Context, actor contextutil.Identity, id int64) (IdentityView, error)
	Update(ctx context.Context, actor contextutil.Identity, id int64, req UpdateUserRequest) (IdentityView, error)
	UpdateStatus(ctx context.Context, actor contextutil.Identity, id int64, req UpdateStatusRequest) (IdentityView, error)
	Delete(ctx context.Context, actor contextutil.Identity, id int64) error
	ResetPassword(ctx context.Context, actor contextutil.Identity, id int64, req ResetPasswordRequest) error
}

type service struct {
	repo      Repository
	employees employee.Repository
	roles     RoleLookup
	hasher    credential.PasswordHasher
	uow       database.UnitOfWork
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees employee.Repository,
	roles RoleLookup,
	hasher credential.PasswordHasher,
	uow database.UnitOfWork,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		roles:     roles,
		hasher:    hasher,
		uow:       uow,
		logger:    l,
	}
}

func (s *service) List(ctx context.Context, actor contextutil.Identity, f ListFilter) (UserListResponse, error) {
	if f.Status != "" && !f.Status.Valid() {
		return UserListResponse{}, apperror.InvalidField("status")
	}

	page, err := s.repo.ListByCompany(ctx, actor.CompanyID, f)
	if err != nil {
		return UserListResponse{}, apperror.FromDB(err)
	}
	return UserListResponse{Items: page.Items, Meta: page.Meta}, nil
}

func (s *service) Stats(ctx context.Context, actor contextutil.Identity) (Stats, error) {
	stats, err := s.repo.StatsByCompany(ctx, actor.CompanyID)
	if err != nil {
		return Stats{}, apperror.FromDB(err)
	}
	return stats, nil
}

func (s *service) Get(ctx context.Context, actor contextutil.Identity, id int64) (IdentityView, error) {
	view, err := s.own(ctx, actor, id)
	if err != nil {
		return IdentityView{}, err
	}
	return *view, nil
}

func (s *service) Update(ctx context.Context, actor contextutil.Identity, id int64, req UpdateUserRequest) (IdentityView, error) {
	userFields, employeeFields := req.userFields(), req.employeeFields()
	if len(userFields) == 0 && len(employeeFields) == 0 {
		return IdentityView{}, usererrors.ErrNoFieldsToUpdate
	}

	target, err := s.own(ctx, actor, id)
	if err != nil {
		return IdentityView{}, err
	}

	if req.RoleID != nil && *req.RoleID != target.RoleID {
		if id == actor.UserID {
			return IdentityView{}, usererrors.ErrSelfRoleChange
		}
		role, err := s.roles.FindRole(ctx, *req.RoleID)
		if err != nil {
			return IdentityView{}, apperror.FromDB(err)
		}
		if role == nil {
			return IdentityView{}, usererrors.ErrRoleNotFound
		}
	}

	if req.Email != nil {
		taken, err := s.repo.EmailTaken(ctx, *req.Email, &id)
		if err != nil {
			return IdentityView{}, apperror.FromDB(err)
		}
		if taken {
			return IdentityView{}, usererrors.ErrEmailTaken
		}
	}
	if req.Username != nil {
		taken, err := s.repo.UsernameTaken(ctx, *req.Username, &id)
		if err != nil {
			return IdentityView{}, apperror.FromDB(err)
		}
		if taken {
			return IdentityView{}, usererrors.ErrUsernameTaken
		}
	}

	err = s.uow.Within(ctx, func(tx *gorm.DB) error {
		if len(userFields) > 0 {
			ok, err := s.repo.WithTx(tx).Update(ctx, id, userFields, &actor.UserID)
			if err != nil {
				return err
			}
			if !ok {
				return usererrors.ErrUserNotFound
			}
		}
		if len(employeeFields) > 0 {
			ok, err := s.employees.WithTx(tx).UpdateProfile(ctx, target.EmployeeID, employeeFields, &actor.UserID)
			if err != nil {
				return err
			}
			if !ok {
				return usererrors.ErrUserNotFound
			}
		}
		return nil
	})
	if err != nil {
		return IdentityView{}, apperror.FromDB(err)
	}

	s.logger.Info("user updated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("user_id", id),
		zap.Int64("updated_by", actor.UserID),
	)
	return s.Get(ctx, actor, id)
}

func (s *service) UpdateStatus(ctx context.Context, actor contextutil.Identity, id int64, req UpdateStatusRequest) (IdentityView, error) {
	if !req.Status.Valid() {
		return IdentityView{}, apperror.InvalidField("status")
	}
	if id == actor.UserID {
		return IdentityView{}, usererrors.ErrSelfStatusChange
	}

	target, err := s.own(ctx, actor, id)
	if err != nil {
		return IdentityView{}, err
	}
	if err := s.guardAdministratorTarget(ctx, actor, target, usererrors.ErrStatusChangeForbidden); err != nil {
		return IdentityView{}, err
	}

	ok, err := s.repo.UpdateStatus(ctx, id, req.Status, &actor.UserID)
	if err != nil {
		return IdentityView{}, apperror.FromDB(err)
	}
	if !ok {
		return IdentityView{}, usererrors.ErrUserNotFound
	}

	s.logger.Info("user status changed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("user_id", id),
		zap.String("from", string(target.Status)),
		zap.String("to", string(req.Status)),
		zap.Int64("updated_by", actor.UserID),
	)
	return s.Get(ctx, actor, id)
}

// Delete is a soft delete: the user is marked inactive.
func (s *service) Delete(ctx context.Context, actor contextutil.Identity, id int64) error {
	if id == actor.UserID {
		return usererrors.ErrSelfDelete
	}

	target, err := s.own(ctx, actor, id)
	if err != nil {
		return err
	}
	if target.Status == StatusInactive {
		return usererrors.ErrAlreadyDeleted
	}
	if err := s.guardAdministratorTarget(ctx, actor, target, usererrors.ErrDeleteForbidden); err != nil {
		return err
	}

	ok, err := s.repo.UpdateStatus(ctx, id, StatusInactive, &actor.UserID)
	if err != nil {
		return apperror.FromDB(err)
	}
	if !ok {
		return usererrors.ErrUserNotFound
	}

	s.logger.Info("user deleted",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("user_id", id),
		zap.Int64("deleted_by", actor.UserID),
	)
	return nil
}

func (s *service) ResetPassword(ctx context.Context, actor contextutil.Identity, id int64, req ResetPasswordRequest) error {
	target, err := s.own(ctx, actor, id)
	if err != nil {
		return err
	}
	if id != actor.UserID {
		if err := s.guardAdministratorTarget(ctx, actor, target, usererrors.ErrResetForbidden); err != nil {
			return err
		}
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	ok, err := s.repo.UpdatePassword(ctx, id, hash, &actor.UserID)
	if err != nil {
		return apperror.FromDB(err)
	}
	if !ok {
		return usererrors.ErrUserNotFound
	}

	s.logger.Info("user password reset",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("user_id", id),
		zap.Int64("reset_by", actor.UserID),
	)
	return nil
}

// own loads a user of the caller's company. Users of other companies are
// reported as not found.
func (s *service) own(ctx context.Context, actor contextutil.Identity, id int64) (*IdentityView, error) {
	view, err := s.repo.FindIdentity(ctx, id)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	if view == nil || view.CompanyID != actor.CompanyID {
		return nil, usererrors.ErrUserNotFound
	}
	return view, nil
}

// guardAdministratorTarget requires an administrator caller when target is
// an administrator. The caller's role is read from storage, not from the token.
func (s *service) guardAdministratorTarget(ctx context.Context, actor contextutil.Identity, target *IdentityView, denied error) error {
	if !target.IsAdministrator() {
		return nil
	}
	caller, err := s.repo.FindIdentity(ctx, actor.UserID)
	if err != nil {
		return apperror.FromDB(err)
	}
	if caller == nil || !caller.IsAdministrator() {
		return denied
	}
	return nil
}
