package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("CREWLOG_DATABASE_URL", "file:crewlog.db")
	t.Setenv("CREWLOG_SESSION_SECRET", "a-test-secret")
	t.Setenv("PORT", "8080")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "file:crewlog.db", cfg.DatabaseURL)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, "dev", cfg.Env)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "json", cfg.LogFormat)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ENV", "prod")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "prod", cfg.Env)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "text", cfg.LogFormat)
		require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	})

	t.Run("missing database url", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CREWLOG_DATABASE_URL", "")

		_, err := LoadConfig()
		require.ErrorContains(t, err, "CREWLOG_DATABASE_URL")
	})

	t.Run("missing session secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CREWLOG_SESSION_SECRET", "")

		_, err := LoadConfig()
		require.ErrorContains(t, err, "CREWLOG_SESSION_SECRET")
	})

	t.Run("missing port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "")

		_, err := LoadConfig()
		require.ErrorContains(t, err, "PORT")
	})

	t.Run("non-numeric port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "eighty")

		_, err := LoadConfig()
		require.ErrorContains(t, err, "PORT")
	})

	t.Run("bad grace period falls back to default", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "soonish")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	})
}
