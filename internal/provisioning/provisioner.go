package provisioning

import (
	"context"
	"strings"

	"go-hms/internal/company"
	companyerrors "go-hms/internal/company/errors"
	"go-hms/internal/rbac"
	rbacerrors "go-hms/internal/rbac/errors"
	"go-hms/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewCompany seeds a company created during registration. Empty fields fall
// back to the registrant's own details.
type NewCompany struct {
	Name         string
	Email        string
	Phone        string
	AddressLine1 string
	City         string
	State        string
	Country      string
	Pincode      string

	RegistrantFirstName string
	RegistrantLastName  string
	RegistrantEmail     string
	RegistrantPhone     string
}

func (n NewCompany) contactName() string {
	return strings.TrimSpace(n.RegistrantFirstName + " " + n.RegistrantLastName)
}

func (n NewCompany) build() *company.Company {
	name := strings.TrimSpace(n.Name)
	if name == "" {
		name = n.contactName() + " Company"
	}
	return &company.Company{
		Name:               name,
		Email:              firstNonEmpty(n.Email, n.RegistrantEmail),
		Phone:              firstNonEmpty(n.Phone, n.RegistrantPhone),
		AddressLine1:       n.AddressLine1,
		City:               n.City,
		State:              n.State,
		Country:            n.Country,
		Pincode:            n.Pincode,
		ContactPersonName:  n.contactName(),
		ContactPersonEmail: n.RegistrantEmail,
		ContactPersonPhone: n.RegistrantPhone,
	}
}

type BranchSeed struct {
	Name         string
	Phone        string
	AddressLine1 string
	City         string
	State        string
	Country      string
	Pincode      string
}

//go:generate mockgen -destination=mock/provisioner_mock.go -package=mock . Provisioner
type Provisioner interface {
	WithTx(tx *gorm.DB) Provisioner
	ResolveOrCreateCompany(ctx context.Context, existingID *int64, seed NewCompany, actor *int64) (*company.Company, bool, error)
	CreateDefaultBranch(ctx context.Context, companyID int64, seed BranchSeed, actor *int64) (*company.Branch, error)
	ResolveBranch(ctx context.Context, companyID int64, seed BranchSeed, actor *int64) (*company.Branch, error)
	ResolveRole(ctx context.Context, roleID *int64, actor *int64) (*rbac.Role, error)
	ResolveOrCreateAdministratorRole(ctx context.Context, actor *int64) (*rbac.Role, error)
	GrantFullPermissions(ctx context.Context, roleID int64, actor *int64) error
}

type provisioner struct {
	companies company.Repository
	roles     rbac.Repository
	logger    *zap.Logger
}

func New(companies company.Repository, roles rbac.Repository, logger ...*zap.Logger) Provisioner {
	l := zap.L().Named("provisioning")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("provisioning")
	}
	return &provisioner{companies: companies, roles: roles, logger: l}
}

func (p *provisioner) WithTx(tx *gorm.DB) Provisioner {
	return &provisioner{
		companies: p.companies.WithTx(tx),
		roles:     p.roles.WithTx(tx),
		logger:    p.logger,
	}
}

// ResolveOrCreateCompany returns the active company existingID names, or
// creates one from seed when existingID is nil. The bool reports creation.
func (p *provisioner) ResolveOrCreateCompany(ctx context.Context, existingID *int64, seed NewCompany, actor *int64) (*company.Company, bool, error) {
	if existingID != nil {
		comp, err := p.companies.FindByID(ctx, *existingID)
		if err != nil {
			return nil, false, apperror.FromDB(err)
		}
		if comp == nil {
			return nil, false, companyerrors.ErrCompanyNotFound.WithField("company_id")
		}
		return comp, false, nil
	}

	comp := seed.build()
	if err := p.companies.Create(ctx, comp, actor); err != nil {
		return nil, false, apperror.FromDB(err)
	}
	p.logger.Info("company created", zap.Int64("company_id", comp.ID), zap.String("company_name", comp.Name))
	return comp, true, nil
}

func (p *provisioner) CreateDefaultBranch(ctx context.Context, companyID int64, seed BranchSeed, actor *int64) (*company.Branch, error) {
	name := strings.TrimSpace(seed.Name)
	if name == "" {
		name = company.DefaultBranchName
	}
	branch := &company.Branch{
		CompanyID:    companyID,
		Name:         name,
		Phone:        seed.Phone,
		AddressLine1: seed.AddressLine1,
		City:         seed.City,
		State:        seed.State,
		Country:      seed.Country,
		Pincode:      seed.Pincode,
	}
	if err := p.companies.CreateBranch(ctx, branch, actor); err != nil {
		return nil, apperror.FromDB(err)
	}
	return branch, nil
}

// ResolveBranch returns the company's first active branch, creating the
// default branch when it has none.
func (p *provisioner) ResolveBranch(ctx context.Context, companyID int64, seed BranchSeed, actor *int64) (*company.Branch, error) {
	branch, err := p.companies.FirstActiveBranch(ctx, companyID)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	if branch != nil {
		return branch, nil
	}
	return p.CreateDefaultBranch(ctx, companyID, seed, actor)
}

// ResolveRole looks up roleID, or the Administrator role when roleID is nil.
func (p *provisioner) ResolveRole(ctx context.Context, roleID *int64, actor *int64) (*rbac.Role, error) {
	if roleID == nil {
		return p.ResolveOrCreateAdministratorRole(ctx, actor)
	}
	role, err := p.roles.FindRole(ctx, *roleID)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	if role == nil {
		return nil, rbacerrors.ErrRoleNotFound.WithField("role_id")
	}
	return role, nil
}

// ResolveOrCreateAdministratorRole works on the single global Administrator
// row shared by every company. A concurrent first creation loses on
// uq_roles_name and surfaces as a conflict.
func (p *provisioner) ResolveOrCreateAdministratorRole(ctx context.Context, actor *int64) (*rbac.Role, error) {
	role, err := p.roles.FindRoleByName(ctx, rbac.AdministratorRoleName)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	if role != nil {
		return role, nil
	}

	role = &rbac.Role{Name: rbac.AdministratorRoleName, Description: rbac.AdministratorRoleDescription}
	if err := p.roles.CreateRole(ctx, role, actor); err != nil {
		return nil, apperror.FromDB(err)
	}
	p.logger.Info("administrator role created", zap.Int64("role_id", role.ID))
	return role, nil
}

// GrantFullPermissions upserts every active menu with all four flags and
// every active feature as active. Running it twice leaves the same rows.
func (p *provisioner) GrantFullPermissions(ctx context.Context, roleID int64, actor *int64) error {
	menus, err := p.roles.ActiveMenus(ctx)
	if err != nil {
		return apperror.FromDB(err)
	}
	features, err := p.roles.ActiveFeatures(ctx)
	if err != nil {
		return apperror.FromDB(err)
	}

	menuRows := make([]rbac.RoleMenu, 0, len(menus))
	for _, m := range menus {
		menuRows = append(menuRows, rbac.RoleMenu{
			RoleID:    roleID,
			MenuID:    m.ID,
			CanView:   true,
			CanCreate: true,
			CanEdit:   true,
			CanDelete: true,
		})
	}
	if err := p.roles.UpsertRoleMenus(ctx, menuRows, actor); err != nil {
		return apperror.FromDB(err)
	}

	featureRows := make([]rbac.RoleFeature, 0, len(features))
	for _, f := range features {
		featureRows = append(featureRows, rbac.RoleFeature{RoleID: roleID, FeatureID: f.ID, IsActive: true})
	}
	if err := p.roles.UpsertRoleFeatures(ctx, featureRows, actor); err != nil {
		return apperror.FromDB(err)
	}

	p.logger.Info("full permissions granted",
		zap.Int64("role_id", roleID),
		zap.Int("menus", len(menuRows)),
		zap.Int("features", len(featureRows)),
	)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
