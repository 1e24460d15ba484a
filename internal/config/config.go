package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Profile string

	HTTPAddr        string
	ShutdownTimeout time.Duration

	DatabaseDriver string
	DatabaseDSN    string

	APIKey         string
	JWTSecret      string
	AccessTokenTTL time.Duration

	RedisAddr     string
	RedisPassword string

	LogLevelName string

	OTELMetricsEnabled        bool
	OTELTracesEnabled         bool
	OTELLogsEnabled           bool
	OTELExporterOTLPEndpoint  string
	OTELExporterOTLPInsecure  bool
	OTELServiceName           string
	OTELEnvironment           string
	OTELMetricsExportInterval time.Duration
}

func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{
		Profile:                   envString("CRM_PROFILE", "dev"),
		HTTPAddr:                  envString("CRM_HTTP_ADDR", ":8000"),
		ShutdownTimeout:           envDuration("CRM_SHUTDOWN_TIMEOUT", 10*time.Second),
		DatabaseDriver:            envString("CRM_DB_DRIVER", "sqlite"),
		DatabaseDSN:               envString("CRM_DB_DSN", "file:crm.db?_pragma=foreign_keys(1)"),
		APIKey:                    envString("CRM_API_KEY", ""),
		JWTSecret:                 envString("CRM_JWT_SECRET", ""),
		AccessTokenTTL:            envDuration("CRM_ACCESS_TOKEN_TTL", time.Hour),
		RedisAddr:                 envString("CRM_REDIS_ADDR", ""),
		RedisPassword:             envString("CRM_REDIS_PASSWORD", ""),
		LogLevelName:              envString("CRM_LOG_LEVEL", "info"),
		OTELMetricsEnabled:        envBool("CRM_OTEL_METRICS_ENABLED", false),
		OTELTracesEnabled:         envBool("CRM_OTEL_TRACES_ENABLED", false),
		OTELLogsEnabled:           envBool("CRM_OTEL_LOGS_ENABLED", false),
		OTELExporterOTLPEndpoint:  envString("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTELExporterOTLPInsecure:  envBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		OTELServiceName:           envString("OTEL_SERVICE_NAME", "crm-backend"),
		OTELEnvironment:           envString("OTEL_ENVIRONMENT", "dev"),
		OTELMetricsExportInterval: envDuration("CRM_OTEL_METRICS_EXPORT_INTERVAL", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		recordConfigValidationEvent(ctx, cfg.Profile, "failure", classifyConfigLoadError(err))
		return nil, err
	}
	recordConfigValidationEvent(ctx, cfg.Profile, "success", "none")
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("validate config: CRM_API_KEY is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("validate config: CRM_JWT_SECRET is required")
	}
	if c.Profile == "prod" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("validate config: CRM_JWT_SECRET must be at least 32 bytes in the prod profile")
	}
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("validate config: unsupported CRM_DB_DRIVER %q", c.DatabaseDriver)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("validate config: CRM_ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}

func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.LogLevelName) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}
