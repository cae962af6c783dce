package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops-backend/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Valid file", func(t *testing.T) {
		path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
revenue:
  owner_share: 0.5
  operator_share: 0.3
  platform_share: 0.2
session:
  ttl_minutes: 60
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
		assert.Equal(t, 0.5, cfg.Revenue.OwnerShare)
		assert.Equal(t, 60, cfg.Session.TTLMinutes)
		// Scheduler falls back to stock cron specs.
		assert.NotEmpty(t, cfg.Scheduler.CompleteBookings)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Shares must sum to one", func(t *testing.T) {
		path := writeConfig(t, `
revenue:
  owner_share: 0.65
  operator_share: 0.25
  platform_share: 0.25
`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum to 1.0")
	})

	t.Run("Share outside unit interval", func(t *testing.T) {
		path := writeConfig(t, `
revenue:
  owner_share: 1.3
  operator_share: -0.2
  platform_share: -0.1
`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 1")
	})

	t.Run("Environment override", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "7070")
		path := writeConfig(t, `
server:
  port: 9090
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
	})
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.65, cfg.Revenue.OwnerShare)
	assert.Equal(t, 0.25, cfg.Revenue.OperatorShare)
	assert.Equal(t, 0.10, cfg.Revenue.PlatformShare)
}

func TestRevenueConfig_Validate(t *testing.T) {
	t.Run("Tolerates float rounding", func(t *testing.T) {
		shares := config.RevenueConfig{OwnerShare: 0.1 + 0.2, OperatorShare: 0.3, PlatformShare: 0.4}
		assert.NoError(t, shares.Validate())
	})

	t.Run("Rejects drift beyond tolerance", func(t *testing.T) {
		shares := config.RevenueConfig{OwnerShare: 0.65, OperatorShare: 0.25, PlatformShare: 0.11}
		assert.Error(t, shares.Validate())
	})
}
