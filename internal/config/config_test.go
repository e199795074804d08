package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected server addr: %q", cfg.Server.Addr)
	}
	if cfg.Database.MigrationsDir != "migrations" {
		t.Fatalf("unexpected migrations dir: %q", cfg.Database.MigrationsDir)
	}
	if cfg.Catalog.Path != "catalog/items.json" {
		t.Fatalf("unexpected catalog path: %q", cfg.Catalog.Path)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("DATABASE_DSN", "postgres://localhost/gravehold")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("env override ignored for addr: %q", cfg.Server.Addr)
	}
	if cfg.Database.DSN != "postgres://localhost/gravehold" {
		t.Fatalf("env override ignored for dsn: %q", cfg.Database.DSN)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("env override ignored for log level: %q", cfg.Log.Level)
	}
}
