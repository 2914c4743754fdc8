package main

import (
	"context"
	"fmt"

	"smartcars-insurance/config"
	"smartcars-insurance/internal/httpserver"
	"smartcars-insurance/internal/middleware"
	"smartcars-insurance/internal/store"
	toolsHTTP "smartcars-insurance/internal/tools/delivery/http"
	"smartcars-insurance/pkg/log"
)

// @title       Smartcars Insurance Tool Service
// @description Reference data lookups and premium calculators.
// @version     1
// @host        localhost:4001
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

	ctx := context.Background()
	logger.Info(ctx, "Starting smartcars insurance tool service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data dir: %s", cfg.Data.Dir)

	// 3. Reference data, loaded once and immutable afterwards.
	s, err := store.Load(cfg.Data.Dir)
	if err != nil {
		logger.Error(ctx, "Failed to load reference data: ", err)
		return
	}

	// 4. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.ToolServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   middleware.New(logger),
		ToolsHandler: toolsHTTP.New(logger, s),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := srv.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
