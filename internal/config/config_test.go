package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		viper.Set("jwt.secret_key", "test-secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "corebank", cfg.Database.Name)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.True(t, cfg.Database.Migrate)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
		assert.Equal(t, 10, cfg.Auth.BcryptCost)
		assert.Equal(t, 5, cfg.Auth.MaxFailedLogins)
		assert.Equal(t, 15*time.Minute, cfg.Auth.LockoutWindow)
		assert.Equal(t, []string{"https://*", "http://*"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("overrides", func(t *testing.T) {
		viper.Reset()
		viper.Set("jwt.secret_key", "test-secret")
		viper.Set("jwt.expiry", "30m")
		viper.Set("server.port", "9090")
		viper.Set("auth.max_failed_logins", 3)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 30*time.Minute, cfg.JWT.Expiry)
		assert.Equal(t, 3, cfg.Auth.MaxFailedLogins)
	})

	t.Run("comma separated origins", func(t *testing.T) {
		viper.Reset()
		viper.Set("jwt.secret_key", "test-secret")
		viper.Set("cors.allowed_origins", "https://a.com,https://b.com")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("origins from the environment", func(t *testing.T) {
		viper.Reset()
		viper.Set("jwt.secret_key", "test-secret")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com, https://b.com https://c.com")
		require.NoError(t, viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS"))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.com", "https://b.com", "https://c.com"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		viper.Reset()

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}
