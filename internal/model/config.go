package model

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds settings for the local SQLite database.
type DatabaseConfig struct {
	// Path is the location of the database file.
	Path string `mapstructure:"path" yaml:"path"`
}

// NotificationConfig holds settings for the notification engine.
type NotificationConfig struct {
	// PollIntervalSec is how often (in seconds) the notification list
	// is refreshed from the database.
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec"`

	// RecentLimit is how many recent notifications are kept in memory.
	RecentLimit int `mapstructure:"recent_limit" yaml:"recent_limit"`
}

// PollInterval returns the poll interval as a duration.
func (c NotificationConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSec) * time.Second
}

// SessionConfig holds settings for login sessions.
type SessionConfig struct {
	// Secret signs session tokens. Generated on first run if empty.
	Secret string `mapstructure:"secret" yaml:"secret"`

	// TTLHours is how long a session token stays valid.
	TTLHours int `mapstructure:"ttl_hours" yaml:"ttl_hours"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database     DatabaseConfig     `mapstructure:"database" yaml:"database"`
	Notification NotificationConfig `mapstructure:"notification" yaml:"notification"`
	Session      SessionConfig      `mapstructure:"session" yaml:"session"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/propman/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "propman", "config.yaml")
}

// defaultDatabasePath returns the default location of the database file,
// next to the configuration file.
func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "property-management.db")
	}
	return filepath.Join(home, ".config", "propman", "property-management.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Path: defaultDatabasePath(),
		},
		Notification: NotificationConfig{
			PollIntervalSec: 30,
			RecentLimit:     50,
		},
		Session: SessionConfig{
			TTLHours: 12,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("database.path", defaultDatabasePath())
	v.SetDefault("notification.poll_interval_sec", 30)
	v.SetDefault("notification.recent_limit", 50)
	v.SetDefault("session.ttl_hours", 12)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Notification.PollIntervalSec <= 0 {
		cfg.Notification.PollIntervalSec = 30
	}
	if cfg.Notification.RecentLimit <= 0 {
		cfg.Notification.RecentLimit = 50
	}
	if cfg.Session.TTLHours <= 0 {
		cfg.Session.TTLHours = 12
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("notification", cfg.Notification)
	v.Set("session", cfg.Session)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
