package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Test case 1: Default values - should use defaults when not provided
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "localhost", config.Database.Host)
		assert.Equal(t, 5432, config.Database.Port)
		assert.Equal(t, "postgres", config.Database.User)
		assert.Equal(t, "vendordirectory", config.Database.Name)
		assert.Equal(t, "disable", config.Database.SSLMode)
		assert.Equal(t, "memory", config.Cache.Type)
		assert.Equal(t, 300, config.Cache.DefaultTTLSeconds)
		assert.Equal(t, 300, config.Cache.SweepIntervalSeconds)
		assert.Equal(t, "localhost:6379", config.Cache.RedisAddr)
		assert.Equal(t, 1440, config.Scheduler.InvitePurgeInterval)
		assert.Equal(t, 10, config.Scheduler.FeaturedRefreshMinutes)
		assert.Equal(t, "http://localhost:8080", config.AppBaseURL)
	})

	// Test case 2: Custom values - should use provided values
	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("DB_HOST", "test-db-host"))
		require.NoError(t, os.Setenv("DB_PORT", "5433"))
		require.NoError(t, os.Setenv("DB_USER", "test-user"))
		require.NoError(t, os.Setenv("DB_PASSWORD", "test-db-password"))
		require.NoError(t, os.Setenv("DB_NAME", "test-db"))
		require.NoError(t, os.Setenv("DB_SSL_MODE", "require"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "redis"))
		require.NoError(t, os.Setenv("CACHE_DEFAULT_TTL", "120"))
		require.NoError(t, os.Setenv("CACHE_SWEEP_INTERVAL", "60"))
		require.NoError(t, os.Setenv("CACHE_REDIS_ADDR", "redis:6380"))
		require.NoError(t, os.Setenv("INVITE_PURGE_INTERVAL", "720"))
		require.NoError(t, os.Setenv("APP_URL", "https://example.com"))

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.NotNil(t, config)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "test-db-host", config.Database.Host)
		assert.Equal(t, 5433, config.Database.Port)
		assert.Equal(t, "test-user", config.Database.User)
		assert.Equal(t, "test-db", config.Database.Name)
		assert.Equal(t, "require", config.Database.SSLMode)
		assert.Equal(t, "redis", config.Cache.Type)
		assert.Equal(t, 120, config.Cache.DefaultTTLSeconds)
		assert.Equal(t, 60, config.Cache.SweepIntervalSeconds)
		assert.Equal(t, "redis:6380", config.Cache.RedisAddr)
		assert.Equal(t, 720, config.Scheduler.InvitePurgeInterval)
		assert.Equal(t, "https://example.com", config.AppBaseURL)
	})
}

func TestConfigValidation(t *testing.T) {
	t.Run("InvalidServerPort", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("SERVER_PORT", "70000"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("InvalidSSLMode", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("DB_SSL_MODE", "maybe"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "DB_SSL_MODE")
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("CACHE_TYPE", "memcached"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "CACHE_TYPE")
	})

	t.Run("InvalidCacheTTL", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("CACHE_DEFAULT_TTL", "0"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "CACHE_DEFAULT_TTL")
	})

	t.Run("InvalidAppURL", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("APP_URL", "example.com"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "APP_URL")
	})

	t.Run("InvalidSchedulerInterval", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("INVITE_PURGE_INTERVAL", "20000"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "INVITE_PURGE_INTERVAL")
	})
}

func TestGetDSN(t *testing.T) {
	dbConfig := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "app",
		Password: "secret",
		Name:     "directory",
		SSLMode:  "require",
	}

	dsn := dbConfig.GetDSN()
	assert.Equal(t, "host=db.internal port=5432 user=app password=secret dbname=directory sslmode=require", dsn)
}
