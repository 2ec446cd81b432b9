package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conference-tracker/config"
	webDelivery "conference-tracker/internal/conference/delivery/web"
	yamlRepo "conference-tracker/internal/conference/repository/yamlfile"
	"conference-tracker/internal/conference/usecase"
	"conference-tracker/internal/httpserver"
	"conference-tracker/internal/middleware"
	"conference-tracker/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Conference Deadline Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Deadlines file: %s/%s", cfg.Tracker.DataDir, cfg.Tracker.DataFile)

	// 3. Conference domain
	repo := yamlRepo.New(logger, cfg.Tracker.DataDir, cfg.Tracker.DataFile)
	uc := usecase.New(logger, repo)
	webHandler := webDelivery.New(logger, uc, cfg.Tracker.GithubRepoURL, time.Now)

	// 4. HTTP server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		TemplatesGlob: cfg.Tracker.TemplatesGlob,
		Middleware:    mw,
		WebHandler:    webHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
