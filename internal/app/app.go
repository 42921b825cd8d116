package app

import (
	"context"
	"net/http"

	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/connection"
	"go-hms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the connections the API process keeps open.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	logger *zap.Logger
}

func postgresConfig(cfg *config.Config) connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// NewRouter builds the engine with the ambient middleware chain: request id,
// request-scoped logger, CORS and the error envelope.
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperror.Init()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.ErrorHandler(logger, cfg.IsProduction()),
	)
	return r
}

func BuildApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(ctx, postgresConfig(cfg), cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	if cfg.DBAutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			return nil, err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}

	router := NewRouter(cfg, logger)
	router.GET("/health", health(db))

	if err := registerModules(router, cfg, db, rdb, logger); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &App{Router: router, DB: db, Redis: rdb, logger: logger}, nil
}

func (a *App) Close() {
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := a.Redis.Close(); err != nil {
		a.logger.Warn("close redis", zap.Error(err))
	}
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(apperror.ErrServiceUnavailable.WithErr(err))
			return
		}
		response.Success(c, http.StatusOK, "OK", gin.H{"database": "up"})
	}
}
