package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// setBaseEnv sets the minimal required variables. t.Setenv also registers the
// restore, so a later os.Unsetenv inside the test is cleaned up too.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "coach")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "health_coach")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setBaseEnv(t)
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_POOL_SIZE", "JWT_ACCESS_TOKEN_DURATION", "PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 || cfg.DB.MaxSize != 10 {
		t.Fatalf("unexpected db defaults: %+v", cfg.DB)
	}
	if cfg.Auth.AccessTokenDuration != 168*time.Hour {
		t.Fatalf("token duration=%v, want 168h", cfg.Auth.AccessTokenDuration)
	}
	if cfg.Server.Port != "8001" {
		t.Fatalf("server port=%q, want 8001", cfg.Server.Port)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("error does not name the missing variable: %v", err)
	}
}

func TestLoadConfig_CollectsAllErrors(t *testing.T) {
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	_, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("aggregated error missing %s: %v", key, err)
		}
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "soon")

	_, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected error for unparseable values")
	}
	if !strings.Contains(err.Error(), "DB_PORT") || !strings.Contains(err.Error(), "JWT_ACCESS_TOKEN_DURATION") {
		t.Fatalf("error does not name both invalid variables: %v", err)
	}
}

func TestLoadConfig_PoolSizeClamped(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_POOL_SIZE", "1000")

	// Clamping is reported as a configuration error; the clamped value is
	// still applied so a permissive caller could proceed.
	_, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected error for out-of-range pool size")
	}
	if !strings.Contains(err.Error(), "DB_POOL_SIZE") {
		t.Fatalf("error does not name DB_POOL_SIZE: %v", err)
	}
}
