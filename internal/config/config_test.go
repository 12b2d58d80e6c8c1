package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := LoadFrom(viper.New(), "")

	assert.Equal(t, "billdesk-api", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, time.Duration(0), cfg.Store.Latency)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiryHours)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("STORE_LATENCY", "250ms")
	t.Setenv("DB_NAME", "billing_test")
	t.Setenv("JWT_EXPIRY_HOURS", "2")

	cfg := LoadFrom(viper.New(), "")

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, StoreBackendPostgres, cfg.Store.Backend)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.Latency)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiryHours)
	assert.Contains(t, cfg.Database.DSN(), "dbname=billing_test")
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9090\nLOG_FORMAT=json\n"), 0o600))

	cfg := LoadFrom(viper.New(), path)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingEnvFileFallsBack(t *testing.T) {
	cfg := LoadFrom(viper.New(), filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.App.Port)
}
