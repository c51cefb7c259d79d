// Package main implements the entry point for the blog API server: user
// registration/login with JWT issuance and owner-scoped CRUD over posts.
package main

import (
	"context"
	"log"

	"github.com/arundaon/blog-api/internal/config"
	"github.com/arundaon/blog-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg.Server)
	logg.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, logg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
