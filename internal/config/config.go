// Package config loads and validates CLI configuration.
package config

import (
	"fmt"
	"time"
)

// Config is the full CLI configuration.
type Config struct {
	LogLevel      string `mapstructure:"LogLevel"`
	LogFilePath   string `mapstructure:"LogFilePath"`
	LogMaxSizeMB  int    `mapstructure:"LogMaxSizeMB"`
	LogMaxBackups int    `mapstructure:"LogMaxBackups"`
	LogCompress   bool   `mapstructure:"LogCompress"`

	Store   StoreConfig   `mapstructure:"Store"`
	Cache   CacheConfig   `mapstructure:"Cache"`
	Online  OnlineConfig  `mapstructure:"Online"`
	Offline OfflineConfig `mapstructure:"Offline"`
}

// StoreConfig selects and configures the durable key-value backend.
type StoreConfig struct {
	Backend  string `mapstructure:"Backend"`  // "file", "redis", or "memory"
	Path     string `mapstructure:"Path"`     // base directory for the file backend
	RedisURL string `mapstructure:"RedisURL"` // connection URL for the redis backend
}

// CacheConfig configures the translation cache.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"TTL"`
}

// OnlineConfig configures the online provider path.
type OnlineConfig struct {
	APIKey            string `mapstructure:"APIKey"`
	Model             string `mapstructure:"Model"`
	RequestsPerMinute int    `mapstructure:"RequestsPerMinute"`
	MaxRetries        int    `mapstructure:"MaxRetries"`
	ProbeAddr         string `mapstructure:"ProbeAddr"` // connectivity probe host:port
}

// OfflineConfig configures the pack manager.
type OfflineConfig struct {
	DownloadDelay time.Duration `mapstructure:"DownloadDelay"` // simulated fetch delay
}

// FieldError carries the field path and reason, so the CLI can point the
// user at the offending setting.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "file", "redis", "memory":
	default:
		return FieldError{Field: "Store.Backend", Reason: fmt.Sprintf("unknown backend %q", c.Store.Backend)}
	}

	if c.Store.Backend == "redis" && c.Store.RedisURL == "" {
		return FieldError{Field: "Store.RedisURL", Reason: "required when Store.Backend is redis"}
	}
	if c.Store.Backend == "file" && c.Store.Path == "" {
		return FieldError{Field: "Store.Path", Reason: "required when Store.Backend is file"}
	}

	if c.Cache.TTL < 0 {
		return FieldError{Field: "Cache.TTL", Reason: "must not be negative"}
	}

	return nil
}
