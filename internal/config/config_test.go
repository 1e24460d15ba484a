package config

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CRM_API_KEY", "test-api-key")
	t.Setenv("CRM_JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Profile != "dev" {
		t.Fatalf("unexpected profile %q", cfg.Profile)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("unexpected http addr %q", cfg.HTTPAddr)
	}
	if cfg.AccessTokenTTL != time.Hour {
		t.Fatalf("unexpected access token ttl %s", cfg.AccessTokenTTL)
	}
	if cfg.DatabaseDriver != "sqlite" {
		t.Fatalf("unexpected db driver %q", cfg.DatabaseDriver)
	}
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	t.Setenv("CRM_API_KEY", "")
	t.Setenv("CRM_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("CRM_PROFILE", "dev")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestLoadRejectsShortSecretInProd(t *testing.T) {
	t.Setenv("CRM_API_KEY", "test-api-key")
	t.Setenv("CRM_JWT_SECRET", "short")
	t.Setenv("CRM_PROFILE", "prod")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected error for short JWT secret in prod")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CRM_DB_DRIVER", "oracle")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected error for unsupported database driver")
	}
}

func TestLogLevelParsing(t *testing.T) {
	cases := []struct {
		name string
		want slog.Level
	}{
		{name: "debug", want: slog.LevelDebug},
		{name: "info", want: slog.LevelInfo},
		{name: "WARN", want: slog.LevelWarn},
		{name: "error", want: slog.LevelError},
		{name: "bogus", want: slog.LevelInfo},
	}
	for _, tc := range cases {
		cfg := &Config{LogLevelName: tc.name}
		if got := cfg.LogLevel(); got != tc.want {
			t.Fatalf("LogLevel(%q)=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CRM_ACCESS_TOKEN_TTL", "15m")
	t.Setenv("CRM_OTEL_METRICS_ENABLED", "true")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("unexpected ttl %s", cfg.AccessTokenTTL)
	}
	if !cfg.OTELMetricsEnabled {
		t.Fatal("expected metrics to be enabled")
	}
}
