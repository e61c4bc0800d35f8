package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.HTTP.Addr != ":5000" {
		t.Errorf("HTTP.Addr = %q, want :5000", cfg.HTTP.Addr)
	}
	if cfg.Catalog.Source != CatalogBuiltin {
		t.Errorf("Catalog.Source = %q, want builtin", cfg.Catalog.Source)
	}
	if cfg.Catalog.Snapshot != "default" {
		t.Errorf("Catalog.Snapshot = %q, want default", cfg.Catalog.Snapshot)
	}
	if cfg.Quota.Limit != 60 || cfg.Quota.Window != time.Minute {
		t.Errorf("Quota = %+v, want 60 per 1m", cfg.Quota)
	}
	if cfg.QuotaEnabled() {
		t.Error("quota should be off without a redis address")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if len(cfg.HTTP.TrustedProxies) != 0 {
		t.Errorf("HTTP.TrustedProxies = %v, want none", cfg.HTTP.TrustedProxies)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SENSEI_HTTP_ADDR":      ":9090",
		"SENSEI_REDIS_ADDR":     "localhost:6379",
		"SENSEI_QUOTA_LIMIT":    "5",
		"SENSEI_QUOTA_WINDOW":   "30s",
		"SENSEI_CATALOG_SOURCE": "file",
		"SENSEI_CATALOG_FILE":   "/etc/sensei/catalog.json",
		"SENSEI_LOG_DEV":        "true",
	})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if !cfg.QuotaEnabled() || cfg.Quota.Limit != 5 || cfg.Quota.Window != 30*time.Second {
		t.Errorf("quota = %+v enabled=%v", cfg.Quota, cfg.QuotaEnabled())
	}
	if cfg.Catalog.File != "/etc/sensei/catalog.json" {
		t.Errorf("Catalog.File = %q", cfg.Catalog.File)
	}
	if !cfg.Log.Dev {
		t.Error("Log.Dev should be true")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"file source without path", map[string]string{"SENSEI_CATALOG_SOURCE": "file"}},
		{"postgres source without dsn", map[string]string{"SENSEI_CATALOG_SOURCE": "postgres"}},
		{"unknown source", map[string]string{"SENSEI_CATALOG_SOURCE": "s3"}},
		{"zero quota", map[string]string{"SENSEI_REDIS_ADDR": "localhost:6379", "SENSEI_QUOTA_LIMIT": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.vars)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadFrom() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFrom_ParseError(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"SENSEI_QUOTA_WINDOW": "soon"}); err == nil {
		t.Error("expected parse error for bad duration")
	}
}

func TestLoadFrom_TrustedProxies(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SENSEI_HTTP_TRUSTED_PROXIES": "10.0.0.1,172.16.0.0/12,::1",
	})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	want := []string{"10.0.0.1", "172.16.0.0/12", "::1"}
	if len(cfg.HTTP.TrustedProxies) != len(want) {
		t.Fatalf("HTTP.TrustedProxies = %v, want %v", cfg.HTTP.TrustedProxies, want)
	}
	for i := range want {
		if cfg.HTTP.TrustedProxies[i] != want[i] {
			t.Errorf("HTTP.TrustedProxies[%d] = %q, want %q", i, cfg.HTTP.TrustedProxies[i], want[i])
		}
	}

	for _, bad := range []string{"proxy.internal", "10.0.0.0/33"} {
		_, err := LoadFrom(map[string]string{"SENSEI_HTTP_TRUSTED_PROXIES": bad})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("trusted proxy %q: err = %v, want ErrInvalidConfig", bad, err)
		}
	}
}
