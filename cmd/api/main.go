package main

import (
	"context"

	"go-hms/internal/app"
	"go-hms/internal/bootstrap"
	"go-hms/internal/config"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.Load()
	if cfg.IsProduction() {
		if prod, err := zap.NewProduction(); err == nil {
			logger = prod
			zap.ReplaceGlobals(logger)
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	application, err := app.BuildApp(context.Background(), cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer application.Close()

	bootstrap.StartHTTPServer(
		application.Router,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		bootstrap.NewStdoutAuditLogger(logger),
	)
}
