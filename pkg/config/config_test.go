package config_test

import (
	"testing"
	"time"

	"github.com/kabirm/safarnama/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "INR", cfg.Planner.Currency)
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("STORAGE_DRIVER", config.StoragePostgres)
	t.Setenv("DEFAULT_CURRENCY", "USD")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("MAX_CONNS", "10")

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "USD", cfg.Planner.Currency)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "pool_max_conns=10")
}

func TestNewConfigMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewConfigUnknownStorageDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := config.NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestNewConfigBadTimeout(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	_, err := config.NewConfig()
	assert.Error(t, err)
}
