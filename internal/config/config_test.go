package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected APP_ENV default: %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTP_ADDR default: %s", cfg.HTTPAddr)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.UpstreamEnabled {
		t.Fatal("upstream should be disabled by default")
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UpstreamRequiresBaseURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPSTREAM_ENABLED", "true")
	t.Setenv("UPSTREAM_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPSTREAM_ENABLED=true without UPSTREAM_BASE_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UpstreamParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("UPSTREAM_ENABLED", "true")
	t.Setenv("UPSTREAM_BASE_URL", "https://football-dashboard.onrender.com")
	t.Setenv("UPSTREAM_TIMEOUT", "7s")
	t.Setenv("UPSTREAM_MAX_RETRIES", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UpstreamBaseURL != "https://football-dashboard.onrender.com" {
		t.Fatalf("unexpected base url: %s", cfg.UpstreamBaseURL)
	}
	if cfg.UpstreamTimeout != 7*time.Second || cfg.UpstreamMaxRetries != 4 {
		t.Fatalf("unexpected upstream settings: timeout=%s retries=%d", cfg.UpstreamTimeout, cfg.UpstreamMaxRetries)
	}
}

func TestLoad_SyncWorkerCountValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SYNC_WORKER_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SYNC_WORKER_COUNT=0")
	}
}
