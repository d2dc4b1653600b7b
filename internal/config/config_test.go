package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SESSION_LIFETIME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IsProduction() {
		t.Fatalf("default environment is %q, want development", cfg.Environment)
	}
	if cfg.Session.Lifetime != 7*24*time.Hour {
		t.Fatalf("development session lifetime = %v, want %v", cfg.Session.Lifetime, 7*24*time.Hour)
	}
	if cfg.MongoDB.Database != "career_portal" {
		t.Fatalf("default database = %q, want career_portal", cfg.MongoDB.Database)
	}
	if cfg.Upload.MaxSize != 16*1024*1024 {
		t.Fatalf("default upload cap = %d, want 16MB", cfg.Upload.MaxSize)
	}
	if cfg.PageSize != 12 {
		t.Fatalf("default page size = %d, want 12", cfg.PageSize)
	}
}

func TestLoadProductionShortensSessionLifetime(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_LIFETIME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.IsProduction() {
		t.Fatalf("environment = %q, want production", cfg.Environment)
	}
	if cfg.Session.Lifetime != 24*time.Hour {
		t.Fatalf("production session lifetime = %v, want %v", cfg.Session.Lifetime, 24*time.Hour)
	}
}

func TestLoadExplicitSessionLifetimeWins(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_LIFETIME", "72h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Session.Lifetime != 72*time.Hour {
		t.Fatalf("session lifetime = %v, want %v", cfg.Session.Lifetime, 72*time.Hour)
	}
}
