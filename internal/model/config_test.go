package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Notification.PollIntervalSec)
	require.Equal(t, 50, cfg.Notification.RecentLimit)
	require.Equal(t, 12, cfg.Session.TTLHours)
	require.NotEmpty(t, cfg.Database.Path)
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &AppConfig{
		Database:     DatabaseConfig{Path: "/tmp/test.db"},
		Notification: NotificationConfig{PollIntervalSec: 60, RecentLimit: 20},
		Session:      SessionConfig{Secret: "abc123", TTLHours: 4},
	}
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/test.db", loaded.Database.Path)
	require.Equal(t, 60, loaded.Notification.PollIntervalSec)
	require.Equal(t, 20, loaded.Notification.RecentLimit)
	require.Equal(t, "abc123", loaded.Session.Secret)
	require.Equal(t, 4, loaded.Session.TTLHours)
}

func TestLoadConfigSanitizesNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte("notification:\n  poll_interval_sec: -5\n  recent_limit: 0\nsession:\n  ttl_hours: 0\n")
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Notification.PollIntervalSec)
	require.Equal(t, 50, cfg.Notification.RecentLimit)
	require.Equal(t, 12, cfg.Session.TTLHours)
}

func TestPollInterval(t *testing.T) {
	cfg := NotificationConfig{PollIntervalSec: 45}
	require.Equal(t, 45*time.Second, cfg.PollInterval())
}
