package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the configuration file, applying defaults and environment
// overrides (GOLINGO_* variables). An absent file is fine when no explicit
// path was given: the defaults describe a working local setup.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("golingo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		v.SetConfigName("golingo")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/golingo")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Store.Backend == "file" {
		abs, err := filepath.Abs(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("resolving store path: %w", err)
		}
		cfg.Store.Path = abs
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFilePath", "")
	v.SetDefault("LogMaxSizeMB", 100)
	v.SetDefault("LogMaxBackups", 10)
	v.SetDefault("LogCompress", true)

	v.SetDefault("Store.Backend", "file")
	v.SetDefault("Store.Path", "./golingo-data")
	v.SetDefault("Store.RedisURL", "")

	v.SetDefault("Cache.TTL", "1h")

	v.SetDefault("Online.Model", "gpt-4o-mini")
	v.SetDefault("Online.RequestsPerMinute", 60)
	v.SetDefault("Online.MaxRetries", 3)
	v.SetDefault("Online.ProbeAddr", "1.1.1.1:443")

	v.SetDefault("Offline.DownloadDelay", "2s")
}
