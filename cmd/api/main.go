package main

import (
	"context"
	"fmt"

	"smartcars-insurance/config"
	chatHTTP "smartcars-insurance/internal/chat/delivery/http"
	chatUC "smartcars-insurance/internal/chat/usecase"
	"smartcars-insurance/internal/httpserver"
	"smartcars-insurance/internal/intent"
	"smartcars-insurance/internal/middleware"
	toolsClient "smartcars-insurance/internal/tools/client"
	"smartcars-insurance/pkg/gemini"
	"smartcars-insurance/pkg/log"
)

// @title       Smartcars Insurance Chat API
// @description Answers natural-language questions about auto-insurance premiums.
// @version     1
// @host        localhost:4000
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
	logger.Info(ctx, "Starting smartcars insurance chat orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Tool service: %s", cfg.Tools.BaseURL)

	// 3. Intent resolver. Without a credential the resolver is disabled
	// and every question resolves to unknown; the service still runs.
	var llm gemini.IGemini
	if cfg.Gemini.Enabled() {
		llm, err = gemini.New(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			APIURL:  cfg.Gemini.APIURL,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Gemini client: ", err)
			return
		}
		logger.Infof(ctx, "Intent resolver enabled (model=%s)", llm.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, intent resolver disabled")
	}
	resolver := intent.New(llm, logger, cfg.Chat.IntentCacheSize)

	// 4. Chat domain
	tools := toolsClient.New(cfg.Tools.BaseURL, cfg.Tools.Timeout)
	uc := chatUC.New(logger, resolver, tools)
	chatHandler := chatHTTP.New(logger, uc)

	// 5. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger),
		ChatHandler:    chatHandler,
		ChatRatePerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := srv.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
