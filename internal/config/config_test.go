package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LISTEN_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "tayra.db" {
		t.Errorf("expected default database, got %q", cfg.DatabaseURL)
	}
	if cfg.ListenAddr != ":5000" {
		t.Errorf("expected default listen addr, got %q", cfg.ListenAddr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "  /data/tasks.db  ")
	t.Setenv("LISTEN_ADDR", ":8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "/data/tasks.db" {
		t.Errorf("expected trimmed database url, got %q", cfg.DatabaseURL)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.ListenAddr)
	}
}
