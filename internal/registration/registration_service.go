package registration

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-hms/internal/company"
	"go-hms/internal/credential"
	"go-hms/internal/employee"
	"go-hms/internal/events"
	"go-hms/internal/messaging/kafka"
	"go-hms/internal/provisioning"
	"go-hms/internal/rbac"
	registrationerrors "go-hms/internal/registration/errors"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"
	"go-hms/internal/shared/counter"
	"go-hms/internal/shared/database"
	"go-hms/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	FlowRegister         = "register"
	FlowRegisterComplete = "register-complete"
	FlowRegisterUser     = "register-user"
)

const employeeCodeFormat = "EMP-%06d"

//go:generate mockgen -destination=mock/registration_service_mock.go -package=mock . Service
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	RegisterComplete(ctx context.Context, req RegisterCompleteRequest) (AuthResponse, error)
	RegisterCompanyUser(ctx context.Context, actor contextutil.Identity, req RegisterCompanyUserRequest) (AuthResponse, error)
}

type Deps struct {
	UnitOfWork  database.UnitOfWork
	Provisioner provisioning.Provisioner
	Employees   employee.Repository
	Users       user.Repository
	Counters    counter.Repository
	Outbox      kafka.OutboxRepository
	Hasher      credential.PasswordHasher
	Tokens      credential.TokenIssuer

	// Policies, when set, is told about roles whose grants a registration rewrote.
	Policies rbac.PolicyCache
}

type service struct {
	Deps
	logger *zap.Logger
	now    func() time.Time
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("registration.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.service")
	}
	return &service{Deps: deps, logger: l, now: time.Now}
}

// tenancy is where the new account lands, decided inside the transaction.
type tenancy struct {
	company    *company.Company
	created    bool
	branch     *company.Branch
	branchID   *int64
	role       *rbac.Role
	linkBranch bool
	grantFull  bool
}

type resolver func(ctx context.Context, p provisioning.Provisioner) (tenancy, error)

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	return s.register(ctx, FlowRegister, req.account(), nil, func(ctx context.Context, p provisioning.Provisioner) (tenancy, error) {
		comp, created, err := p.ResolveOrCreateCompany(ctx, req.CompanyID, req.companySeed(), nil)
		if err != nil {
			return tenancy{}, err
		}
		t := tenancy{company: comp, created: created}
		if created {
			if t.branch, err = p.CreateDefaultBranch(ctx, comp.ID, provisioning.BranchSeed{Phone: comp.Phone}, nil); err != nil {
				return tenancy{}, err
			}
		}
		if t.role, err = p.ResolveRole(ctx, req.RoleID, nil); err != nil {
			return tenancy{}, err
		}
		return t, nil
	})
}

func (s *service) RegisterComplete(ctx context.Context, req RegisterCompleteRequest) (AuthResponse, error) {
	return s.register(ctx, FlowRegisterComplete, req.account(), nil, func(ctx context.Context, p provisioning.Provisioner) (tenancy, error) {
		comp, created, err := p.ResolveOrCreateCompany(ctx, req.CompanyID, req.companySeed(), nil)
		if err != nil {
			return tenancy{}, err
		}
		t := tenancy{company: comp, created: created, linkBranch: true, grantFull: req.isAdmin()}
		if created {
			t.branch, err = p.CreateDefaultBranch(ctx, comp.ID, req.branchSeed(), nil)
		} else {
			t.branch, err = p.ResolveBranch(ctx, comp.ID, req.branchSeed(), nil)
		}
		if err != nil {
			return tenancy{}, err
		}
		t.branchID = &t.branch.ID
		if t.role, err = p.ResolveRole(ctx, req.RoleID, nil); err != nil {
			return tenancy{}, err
		}
		return t, nil
	})
}

// RegisterCompanyUser always places the new user in the caller's company.
func (s *service) RegisterCompanyUser(ctx context.Context, actor contextutil.Identity, req RegisterCompanyUserRequest) (AuthResponse, error) {
	return s.register(ctx, FlowRegisterUser, req.account(), &actor.UserID, func(ctx context.Context, p provisioning.Provisioner) (tenancy, error) {
		comp, _, err := p.ResolveOrCreateCompany(ctx, &actor.CompanyID, provisioning.NewCompany{}, &actor.UserID)
		if err != nil {
			return tenancy{}, err
		}
		t := tenancy{company: comp, branchID: actor.BranchID, linkBranch: actor.BranchID != nil}
		if t.role, err = p.ResolveRole(ctx, req.RoleID, &actor.UserID); err != nil {
			return tenancy{}, err
		}
		return t, nil
	})
}

func (s *service) register(ctx context.Context, flow string, acct account, actor *int64, resolve resolver) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	hash, err := s.Hasher.Hash(acct.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	var (
		userID  int64
		granted *int64
	)
	err = s.UnitOfWork.Within(ctx, func(tx *gorm.DB) error {
		users := s.Users.WithTx(tx)
		employees := s.Employees.WithTx(tx)
		prov := s.Provisioner.WithTx(tx)

		if err := s.checkUnique(ctx, users, &acct); err != nil {
			return err
		}

		t, err := resolve(ctx, prov)
		if err != nil {
			return err
		}

		seq, err := s.Counters.WithTx(tx).GetNextValue(ctx, t.company.ID, counter.EmployeeCode)
		if err != nil {
			return err
		}

		emp := acct.employee(t.company.ID, t.branchID, fmt.Sprintf(employeeCodeFormat, seq))
		if err := employees.Create(ctx, emp, actor); err != nil {
			return err
		}

		u := &user.User{
			Username:     acct.Username,
			Email:        acct.Email,
			PasswordHash: hash,
			EmployeeID:   emp.ID,
			RoleID:       t.role.ID,
			Status:       user.StatusActive,
		}
		if err := users.Create(ctx, u, actor); err != nil {
			return err
		}
		userID = u.ID

		if t.linkBranch && t.branchID != nil {
			link := &employee.EmployeeBranch{EmployeeID: emp.ID, BranchID: *t.branchID, IsPrimary: true}
			if err := employees.AssignBranch(ctx, link, actor); err != nil {
				return err
			}
		}
		if t.grantFull {
			if err := prov.GrantFullPermissions(ctx, t.role.ID, actor); err != nil {
				return err
			}
			granted = &t.role.ID
		}

		return s.writeEvents(ctx, s.Outbox.WithTx(tx), flow, t, emp, u, actor)
	})
	if err != nil {
		log.Warn("registration failed", zap.String("flow", flow), zap.Error(err))
		return AuthResponse{}, apperror.FromDB(err)
	}
	if granted != nil && s.Policies != nil {
		s.Policies.Invalidate(*granted)
	}

	view, err := s.Users.FindIdentity(ctx, userID)
	if err != nil {
		return AuthResponse{}, apperror.FromDB(err)
	}
	if view == nil {
		return AuthResponse{}, registrationerrors.ErrIdentityUnavailable
	}

	pair, err := s.Tokens.IssuePair(view.Identity())
	if err != nil {
		return AuthResponse{}, err
	}

	log.Info("user registered",
		zap.String("flow", flow),
		zap.Int64("user_id", view.UserID),
		zap.Int64("company_id", view.CompanyID),
		zap.Int64("role_id", view.RoleID),
	)
	return AuthResponse{
		User:         *view,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}, nil
}

// maxUsernameAttempts bounds the suffixes tried for a username derived from the email.
const maxUsernameAttempts = 20

// checkUnique rejects a taken email or chosen username. A derived username
// takes the first free numeric suffix instead.
func (s *service) checkUnique(ctx context.Context, users user.Repository, acct *account) error {
	taken, err := users.EmailTaken(ctx, acct.Email, nil)
	if err != nil {
		return err
	}
	if taken {
		return registrationerrors.ErrEmailTaken
	}

	attempts := 1
	if acct.DerivedUsername {
		attempts = maxUsernameAttempts
	}
	base := acct.Username
	for n := 1; n <= attempts; n++ {
		candidate := usernameCandidate(base, n)
		taken, err = users.UsernameTaken(ctx, candidate, nil)
		if err != nil {
			return err
		}
		if !taken {
			acct.Username = candidate
			return nil
		}
	}
	return registrationerrors.ErrUsernameTaken
}

func (s *service) writeEvents(
	ctx context.Context,
	outbox kafka.OutboxRepository,
	flow string,
	t tenancy,
	emp *employee.Employee,
	u *user.User,
	actor *int64,
) error {
	occurredAt := s.now().UTC()

	if t.created {
		provisioned := events.CompanyProvisionedEvent{
			EventType:   events.EventCompanyProvisioned,
			CompanyID:   t.company.ID,
			CompanyUUID: t.company.UUID.String(),
			CompanyName: t.company.Name,
			OccurredAt:  occurredAt,
		}
		if t.branch != nil {
			provisioned.BranchID = t.branch.ID
		}
		event, err := kafka.NewOutboxEvent(ctx, events.IdentityLifecycleTopic, events.EventCompanyProvisioned,
			events.AggregateCompany, strconv.FormatInt(t.company.ID, 10), provisioned)
		if err != nil {
			return err
		}
		if err := outbox.Create(ctx, event); err != nil {
			return err
		}
	}

	event, err := kafka.NewOutboxEvent(ctx, events.IdentityLifecycleTopic, events.EventUserRegistered,
		events.AggregateUser, strconv.FormatInt(u.ID, 10), events.UserRegisteredEvent{
			EventType:    events.EventUserRegistered,
			UserID:       u.ID,
			UserUUID:     u.UUID.String(),
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			Email:        u.Email,
			RoleID:       u.RoleID,
			CompanyID:    t.company.ID,
			BranchID:     t.branchID,
			RegisteredBy: actor,
			Flow:         flow,
			OccurredAt:   occurredAt,
		})
	if err != nil {
		return err
	}
	return outbox.Create(ctx, event)
}
