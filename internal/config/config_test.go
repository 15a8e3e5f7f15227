package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golingo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Store.Backend = %q, want file", cfg.Store.Backend)
	}
	if !filepath.IsAbs(cfg.Store.Path) {
		t.Errorf("Store.Path = %q, want absolute", cfg.Store.Path)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
	}
	if cfg.Online.Model != "gpt-4o-mini" {
		t.Errorf("Online.Model = %q", cfg.Online.Model)
	}
	if cfg.Online.RequestsPerMinute != 60 {
		t.Errorf("Online.RequestsPerMinute = %d, want 60", cfg.Online.RequestsPerMinute)
	}
	if cfg.Offline.DownloadDelay != 2*time.Second {
		t.Errorf("Offline.DownloadDelay = %v, want 2s", cfg.Offline.DownloadDelay)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
LogLevel: debug
Store:
  Backend: memory
Cache:
  TTL: 30m
Online:
  APIKey: test-key
  RequestsPerMinute: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("Cache.TTL = %v, want 30m", cfg.Cache.TTL)
	}
	if cfg.Online.APIKey != "test-key" {
		t.Errorf("Online.APIKey = %q", cfg.Online.APIKey)
	}
	if cfg.Online.RequestsPerMinute != 10 {
		t.Errorf("Online.RequestsPerMinute = %d, want 10", cfg.Online.RequestsPerMinute)
	}
	// Unset fields keep their defaults
	if cfg.Online.MaxRetries != 3 {
		t.Errorf("Online.MaxRetries = %d, want default 3", cfg.Online.MaxRetries)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GOLINGO_STORE_BACKEND", "memory")
	t.Setenv("GOLINGO_LOGLEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want env override memory", cfg.Store.Backend)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want env override warn", cfg.LogLevel)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("an explicit path that does not exist should fail")
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	path := writeConfig(t, "Store:\n  Backend: cassandra\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var fieldErr FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %T", err)
	}
	if fieldErr.Field != "Store.Backend" {
		t.Errorf("Field = %q, want Store.Backend", fieldErr.Field)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{
			name: "memory backend needs nothing",
			cfg:  Config{Store: StoreConfig{Backend: "memory"}},
		},
		{
			name:      "redis backend requires URL",
			cfg:       Config{Store: StoreConfig{Backend: "redis"}},
			wantField: "Store.RedisURL",
		},
		{
			name:      "file backend requires path",
			cfg:       Config{Store: StoreConfig{Backend: "file"}},
			wantField: "Store.Path",
		},
		{
			name: "negative TTL rejected",
			cfg: Config{
				Store: StoreConfig{Backend: "memory"},
				Cache: CacheConfig{TTL: -time.Second},
			},
			wantField: "Cache.TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var fieldErr FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", fieldErr.Field, tt.wantField)
			}
		})
	}
}
