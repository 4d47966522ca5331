package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "STORE_DRIVER", "STORE_PATH", "STORE_KEY", "PASETO_SECRET_KEY", "AUTH_REQUIRED", "SEED_GENERATED", "SEED_VALUE", "CORS_ORIGINS", "MONGO_MODE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "allProducts", cfg.StoreKey)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, 0, cfg.SeedGenerated)
	assert.Equal(t, int64(1), cfg.SeedValue)
	assert.Equal(t, "data/catalog.db", cfg.StorePath)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:3000")
	assert.Len(t, cfg.PasetoSecretKey, 32)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("PASETO_SECRET_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTH_REQUIRED", "false")
	t.Setenv("SEED_GENERATED", "25")
	t.Setenv("SEED_VALUE", "42")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.False(t, cfg.AuthRequired)
	assert.Equal(t, 25, cfg.SeedGenerated)
	assert.Equal(t, int64(42), cfg.SeedValue)
	assert.Equal(t, []byte("0123456789abcdef0123456789abcdef"), cfg.PasetoSecretKey)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	t.Setenv("PASETO_SECRET_KEY", "0123456789abcdef0123456789abcdef")

	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("seed size", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("SEED_GENERATED", "lots")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("short key", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("SEED_GENERATED", "0")
		t.Setenv("PASETO_SECRET_KEY", "short")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("production requires key", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("SEED_GENERATED", "0")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("PASETO_SECRET_KEY", "")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}
