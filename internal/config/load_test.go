package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arundaon/blog-api/internal/config"
)

const testSecret = "test-secret-string-that-is-32-chars!"

// setRequiredEnv sets the minimum environment for a loadable config.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("BLOG_DATABASE_URL", "postgres://localhost:5432/blog")
	t.Setenv("BLOG_AUTH_JWT_SECRET", testSecret)
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "postgres://localhost:5432/blog", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BLOG_SERVER_PORT", "9090")
	t.Setenv("BLOG_SERVER_LOG_LEVEL", "debug")
	t.Setenv("BLOG_AUTH_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("BLOG_DATABASE_URL", "postgres://localhost:5432/blog")
	t.Setenv("BLOG_AUTH_JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("BLOG_DATABASE_URL", "postgres://localhost:5432/blog")
	t.Setenv("BLOG_AUTH_JWT_SECRET", "too-short")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("BLOG_AUTH_JWT_SECRET", testSecret)
	t.Setenv("BLOG_DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BLOG_SERVER_LOG_LEVEL", "verbose")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BLOG_SERVER_PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}
