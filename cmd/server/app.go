package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/arundaon/blog-api/internal/api/middleware"
	"github.com/arundaon/blog-api/internal/config"
	"github.com/arundaon/blog-api/internal/platform/postgres"
	"github.com/arundaon/blog-api/internal/service"
	"github.com/arundaon/blog-api/internal/service/auth"
	"github.com/arundaon/blog-api/internal/store"
)

// application holds the fully wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	postStore store.PostStore

	tokenService auth.TokenService
	authMw       *middleware.AuthMiddleware

	userService service.UserService
	postService service.PostService
}

// newApplication connects to the database, runs migrations and wires the
// services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		return nil, err
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewUserStore(db, logger)
	postStore := postgres.NewPostStore(db, logger)
	hasher := auth.NewBcryptHasher()
	txRunner := store.NewSQLTxRunner(db)

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		userStore:    userStore,
		postStore:    postStore,
		tokenService: tokenService,
		authMw:       middleware.NewAuthMiddleware(tokenService, userStore),
		userService:  service.NewUserService(userStore, hasher, hasher, tokenService, txRunner, logger),
		postService:  service.NewPostService(postStore, service.NewOwnerPolicy(), txRunner, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
