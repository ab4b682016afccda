package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for explicit missing config file, got %+v", cfg)
	}

	t.Chdir(t.TempDir())
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.ListenAddr != ":8080" || cfg.Store.Backend != BackendSQLite {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Offset != 9*time.Hour {
		t.Fatalf("expected +9h offset, got %s", cfg.Offset)
	}
	if err := cfg.RequireAuth(); err == nil {
		t.Fatalf("expected auth settings to be required")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paperdrill.yaml")
	body := "listen_addr: \":9000\"\nutc_offset: \"-05:00\"\nstore:\n  sqlite_path: /tmp/pd.db\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PAPERDRILL_APP_PASSWORD", "hunter2")
	t.Setenv("PAPERDRILL_SESSION_SECRET", "0123456789abcdef0123")
	t.Setenv("PAPERDRILL_LOG_FORMAT", "console")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":9000" || cfg.Store.SQLitePath != "/tmp/pd.db" || cfg.Log.Level != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Log.Format != "console" || cfg.AppPassword != "hunter2" {
		t.Fatalf("env values not applied: %+v", cfg)
	}
	if cfg.Offset != -5*time.Hour {
		t.Fatalf("expected -5h offset, got %s", cfg.Offset)
	}
	if err := cfg.RequireAuth(); err != nil {
		t.Fatalf("require auth: %v", err)
	}
}

func TestLoadRejectsIncompleteSheetsBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAPERDRILL_STORE_BACKEND", "sheets")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadRejectsBadOffset(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAPERDRILL_UTC_OFFSET", "tokyo")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected offset error")
	}
}
