package config_test

import (
	"testing"
	"time"

	"go-ems/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_API(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load[config.API]()
		require.NoError(t, err)

		assert.Equal(t, "3001", cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 5, cfg.Database.MaxRetries)
		assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REQUEST_TIMEOUT", "3s")

		cfg, err := config.Load[config.API]()
		require.NoError(t, err)

		assert.Equal(t, "8081", cfg.Server.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "soon")

		_, err := config.Load[config.API]()
		assert.Error(t, err)
	})
}

func TestDatabase_DSN(t *testing.T) {
	db := config.Database{
		Host: "localhost", Port: "5432", User: "ems", Password: "secret", Name: "employees", SSLMode: "disable",
	}

	assert.Equal(t,
		"host=localhost user=ems password=secret dbname=employees port=5432 sslmode=disable",
		db.DSN(),
	)
}

func TestLoad_Web(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api:3001")

	cfg, err := config.Load[config.Web]()
	require.NoError(t, err)

	assert.Equal(t, "http://api:3001", cfg.APIBaseURL)
	assert.Equal(t, "3000", cfg.Port)

	server := cfg.HTTPServer()
	assert.Equal(t, "3000", server.Port)
	assert.Equal(t, 5*time.Second, server.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.IdleTimeout)
}

func TestLoad_WebServerOverrides(t *testing.T) {
	t.Setenv("WEB_PORT", "8080")
	t.Setenv("WEB_WRITE_TIMEOUT", "30s")

	cfg, err := config.Load[config.Web]()
	require.NoError(t, err)

	server := cfg.HTTPServer()
	assert.Equal(t, "8080", server.Port)
	assert.Equal(t, 30*time.Second, server.WriteTimeout)
	assert.Equal(t, 5*time.Second, server.ReadTimeout)
}

func TestLoad_Worker(t *testing.T) {
	t.Setenv("OUTBOX_MAX_ATTEMPTS", "4")

	cfg, err := config.Load[config.Worker]()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 15*time.Second, cfg.RetryBackoff)
	assert.Equal(t, 4, cfg.MaxAttempts)
}
