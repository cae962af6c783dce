package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// shareTolerance bounds the floating-point slack allowed when checking
// that the three revenue shares sum to exactly 1.0.
const shareTolerance = 1e-9

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Revenue   RevenueConfig   `yaml:"revenue"`
	Session   SessionConfig   `yaml:"session"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Seed      SeedConfig      `yaml:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// RevenueConfig contains the fixed revenue-split percentages applied to
// every booking's net profit. The three shares must sum to exactly 1.0.
type RevenueConfig struct {
	OwnerShare    float64 `yaml:"owner_share"`
	OperatorShare float64 `yaml:"operator_share"`
	PlatformShare float64 `yaml:"platform_share"`
}

// SessionConfig contains API session settings
type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	CompleteBookings string `yaml:"complete_bookings"`
	PruneSessions    string `yaml:"prune_sessions"`
}

// SeedConfig controls demo-data seeding for new sessions
type SeedConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns a configuration with the stock revenue split and
// sensible server settings. Used when no config file is supplied and as
// the baseline for tests.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Log:    LogConfig{Level: "info", Format: "text"},
		Revenue: RevenueConfig{
			OwnerShare:    0.65,
			OperatorShare: 0.25,
			PlatformShare: 0.10,
		},
		Session:   SessionConfig{CookieName: "stayops_session", TTLMinutes: 720},
		Scheduler: SchedulerConfig{},
		Seed:      SeedConfig{Enabled: true},
	}
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Revenue
	if val := os.Getenv("OWNER_SHARE"); val != "" {
		fmt.Sscanf(val, "%f", &c.Revenue.OwnerShare)
	}
	if val := os.Getenv("OPERATOR_SHARE"); val != "" {
		fmt.Sscanf(val, "%f", &c.Revenue.OperatorShare)
	}
	if val := os.Getenv("PLATFORM_SHARE"); val != "" {
		fmt.Sscanf(val, "%f", &c.Revenue.PlatformShare)
	}

	// Session
	if val := os.Getenv("SESSION_TTL_MINUTES"); val != "" {
		fmt.Sscanf(val, "%d", &c.Session.TTLMinutes)
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Revenue validation
	if err := c.Revenue.Validate(); err != nil {
		return err
	}

	// Session validation
	if c.Session.CookieName == "" {
		c.Session.CookieName = "stayops_session"
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("session ttl must be positive, got %d minutes", c.Session.TTLMinutes)
	}

	// Scheduler defaults (6-field cron specs, UTC)
	if c.Scheduler.CompleteBookings == "" {
		c.Scheduler.CompleteBookings = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.PruneSessions == "" {
		c.Scheduler.PruneSessions = "0 */30 * * * *" // every 30 minutes
	}

	return nil
}

// Validate checks the share percentages at startup: each within [0,1]
// and the three summing to 1.0.
func (r RevenueConfig) Validate() error {
	for name, share := range map[string]float64{
		"owner_share":    r.OwnerShare,
		"operator_share": r.OperatorShare,
		"platform_share": r.PlatformShare,
	} {
		if share < 0 || share > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, share)
		}
	}

	sum := r.OwnerShare + r.OperatorShare + r.PlatformShare
	if math.Abs(sum-1.0) > shareTolerance {
		return fmt.Errorf("revenue shares must sum to 1.0, got %v", sum)
	}
	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
