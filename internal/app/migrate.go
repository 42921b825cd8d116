package app

import (
	"context"
	"fmt"
	"time"

	"go-hms/internal/company"
	"go-hms/internal/employee"
	"go-hms/internal/messaging/kafka"
	"go-hms/internal/provisioning"
	"go-hms/internal/rbac"
	"go-hms/internal/shared/counter"
	"go-hms/internal/shared/database"
	"go-hms/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type menuSeed struct {
	name   string
	path   string
	icon   string
	parent string
	order  int
}

type featureSeed struct {
	name        string
	description string
}

var menuCatalog = []menuSeed{
	{name: "Dashboard", path: "/dashboard", icon: "dashboard", order: 1},
	{name: "Patients", path: "/patients", icon: "patients", order: 2},
	{name: "Appointments", path: "/appointments", icon: "calendar", order: 3},
	{name: "Reports", path: "/reports", icon: "reports", order: 4},
	{name: "Administration", icon: "settings", order: 5},
	{name: "Employees", path: "/employees", parent: "Administration", order: 1},
	{name: "Users", path: "/users", parent: "Administration", order: 2},
	{name: rbac.MenuRoles, path: "/roles", parent: "Administration", order: 3},
	{name: "Branches", path: "/branches", parent: "Administration", order: 4},
}

var featureCatalog = []featureSeed{
	{name: "USER_MGMT", description: "Manage system users"},
	{name: "PATIENT_MGMT", description: "Manage patient records"},
	{name: "APPT_MGMT", description: "Manage appointments"},
	{name: "REPORT_GEN", description: "Generate reports"},
}

func models() []any {
	return []any{
		&company.Company{},
		&company.Branch{},
		&rbac.Role{},
		&rbac.Menu{},
		&rbac.Feature{},
		&rbac.RoleMenu{},
		&rbac.RoleFeature{},
		&employee.Employee{},
		&employee.EmployeeBranch{},
		&user.User{},
		&counter.CompanyCounter{},
		&kafka.OutboxEvent{},
	}
}

// Migrate creates the schema and seeds the menu/feature catalog together
// with the fully granted Administrator role. Running it again changes nothing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := zap.L().Named("app.migrate")

	if err := db.WithContext(ctx).AutoMigrate(models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	err := database.NewUnitOfWork(db).Within(ctx, func(tx *gorm.DB) error {
		if err := seedMenus(ctx, tx); err != nil {
			return err
		}
		if err := seedFeatures(ctx, tx); err != nil {
			return err
		}

		prov := provisioning.New(company.NewRepository(tx), rbac.NewRepository(tx))
		role, err := prov.ResolveOrCreateAdministratorRole(ctx, nil)
		if err != nil {
			return err
		}
		return prov.GrantFullPermissions(ctx, role.ID, nil)
	})
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	log.Info("schema migrated", zap.Int("menus", len(menuCatalog)), zap.Int("features", len(featureCatalog)))
	return nil
}

func seedMenus(ctx context.Context, tx *gorm.DB) error {
	now := time.Now().UTC()
	ids := make(map[string]int64, len(menuCatalog))

	for _, s := range menuCatalog {
		seed := rbac.Menu{Name: s.name, Path: s.path, Icon: s.icon, SortOrder: s.order}
		if s.parent != "" {
			parentID, ok := ids[s.parent]
			if !ok {
				return fmt.Errorf("menu %q seeded before its parent %q", s.name, s.parent)
			}
			seed.ParentID = &parentID
		}
		seed.StampCreate(now, nil)
		seed.MarkActive()

		var menu rbac.Menu
		if err := tx.WithContext(ctx).Where("menu_name = ?", s.name).Attrs(seed).FirstOrCreate(&menu).Error; err != nil {
			return err
		}
		ids[s.name] = menu.ID
	}
	return nil
}

func seedFeatures(ctx context.Context, tx *gorm.DB) error {
	now := time.Now().UTC()

	for _, s := range featureCatalog {
		seed := rbac.Feature{Name: s.name, Description: s.description}
		seed.StampCreate(now, nil)
		seed.MarkActive()

		var feature rbac.Feature
		if err := tx.WithContext(ctx).Where("feature_name = ?", s.name).Attrs(seed).FirstOrCreate(&feature).Error; err != nil {
			return err
		}
	}
	return nil
}
