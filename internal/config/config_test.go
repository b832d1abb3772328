package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"API_ADDR", "PORT", "APP_ENV", "DB_DRIVER", "DB_DSN_PRIMARY", "JWT_SECRET", "JWT_TTL",
		"CORS_ALLOWED_ORIGIN", "UPLOAD_DIR", "MAX_PAGE_LIMIT", "SLUG_MODE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 72*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, 100, cfg.MaxPageLimit)
	assert.Equal(t, "simple", cfg.SlugMode)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN_PRIMARY", "file:inkwell.db")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("MAX_PAGE_LIMIT", "not-a-number")
	t.Setenv("SLUG_MODE", "ascii")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 100, cfg.MaxPageLimit)
	assert.Equal(t, "ascii", cfg.SlugMode)

	t.Setenv("API_ADDR", "127.0.0.1:7000")
	assert.Equal(t, "127.0.0.1:7000", Load().Addr)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	cfg.DBDriver = "postgres"
	cfg.SlugMode = "kebab"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "SLUG_MODE")

	cfg = Load()
	cfg.Env = EnvProduction
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}
