package app

import (
	"go-hms/internal/auth"
	"go-hms/internal/company"
	"go-hms/internal/config"
	"go-hms/internal/credential"
	"go-hms/internal/employee"
	"go-hms/internal/messaging/kafka"
	"go-hms/internal/middleware"
	"go-hms/internal/provisioning"
	"go-hms/internal/rbac"
	"go-hms/internal/rbac/infra"
	"go-hms/internal/registration"
	"go-hms/internal/shared/counter"
	"go-hms/internal/shared/database"
	"go-hms/internal/shared/response"
	"go-hms/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb redis.Cmdable,
	logger *zap.Logger,
) error {
	// --- Credentials ---
	tokens := credential.NewTokenManager(credential.TokenConfig{
		AccessSecret:  cfg.AccessTokenSecret,
		RefreshSecret: cfg.RefreshTokenSecret,
		AccessTTL:     cfg.AccessTokenExpiry,
		RefreshTTL:    cfg.RefreshTokenExpiry,
		Issuer:        cfg.JWTIssuer,
		Audience:      cfg.JWTAudience,
	})
	hasher := credential.NewBcryptHasher(cfg.BcryptRounds)
	cookie := response.CookieOptions{MaxAge: cfg.RefreshTokenExpiry, Secure: cfg.IsProduction()}
	uow := database.NewUnitOfWork(db)

	// --- Repositories ---
	companyRepo := company.NewRepository(db)
	rbacRepo := rbac.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	userRepo := user.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	casbinEnforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	enforcer := rbac.NewEnforcer(rbacRepo, casbinEnforcer, logger)
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	companyService := company.NewService(companyRepo, logger)
	employeeService := employee.NewService(employeeRepo, companyRepo, logger)
	userService := user.NewService(userRepo, employeeRepo, rbacRepo, hasher, uow, logger)
	registrationService := registration.NewService(registration.Deps{
		UnitOfWork:  uow,
		Provisioner: provisioning.New(companyRepo, rbacRepo, logger),
		Employees:   employeeRepo,
		Users:       userRepo,
		Counters:    counterRepo,
		Outbox:      outboxRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		Policies:    enforcer,
	}, logger)
	authService := auth.NewService(auth.Deps{
		Users:     userRepo,
		Employees: employeeRepo,
		Roles:     rbacService,
		Hasher:    hasher,
		Issuer:    tokens,
		Verifier:  tokens,
	}, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	{
		auth.RegisterRoutes(api, auth.NewHandler(authService, cookie, logger), tokens)
		registration.RegisterRoutes(api, registration.NewHandler(registrationService, cookie, logger), tokens, rdb, logger)
		user.RegisterRoutes(api, user.NewHandler(userService, logger), tokens, enforcer)
		company.RegisterRoutes(api, company.NewHandler(companyService, logger), tokens)
		employee.RegisterRoutes(api, employee.NewHandler(employeeService, logger), tokens, enforcer)
		rbac.RegisterRoutes(api, rbac.NewHandler(rbacService, logger), tokens, enforcer)
	}

	return nil
}
