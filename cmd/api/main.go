package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-service/config"
	_ "catalog-service/docs" // Swagger docs
	"catalog-service/internal/httpserver"
	"catalog-service/pkg/log"
)

// @title       Catalog Service API
// @description Catalog CRUD API with a normalized JSON error envelope.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting catalog-service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.URL)
	if err != nil {
		logger.Errorf(ctx, "Invalid postgres URL: %v", err)
		return
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.Postgres.MaxConns)
	}
	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to create postgres pool: %v", err)
		return
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Warnf(ctx, "Postgres not reachable yet: %v", err)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		DB:          db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
