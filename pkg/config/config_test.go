package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	cfg := Default()
	if len(cfg.Endpoints) != 3 {
		t.Fatalf("got %d default endpoints, want 3", len(cfg.Endpoints))
	}
	if cfg.Endpoints[0].ID != "dev" || cfg.Endpoints[2].ID != "home" {
		t.Errorf("unexpected endpoint order: %+v", cfg.Endpoints)
	}
	if len(cfg.Services) != 3 {
		t.Fatalf("got %d default services, want 3", len(cfg.Services))
	}
	if cfg.Services[1].Key != "gunicorn" || cfg.Services[1].Unit != "crown-admin.service" {
		t.Errorf("unexpected service mapping: %+v", cfg.Services[1])
	}
	if cfg.DiskPath != "/" {
		t.Errorf("disk path = %q", cfg.DiskPath)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Listen != ":8090" {
		t.Errorf("listen = %q", cfg.Listen)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statusd.yaml")
	data := `
listen: ":9000"
disk_path: /data
endpoints:
  - id: one
    name: Only Site
    url: https://example.com
services:
  - key: web
    unit: nginx.service
auth:
  allowed_emails: [ops@example.com]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STATUSD_LISTEN", ":9100")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":9100" {
		t.Errorf("env override lost: listen = %q", cfg.Listen)
	}
	if cfg.DiskPath != "/data" {
		t.Errorf("disk_path = %q", cfg.DiskPath)
	}
	if len(cfg.Endpoints) != 1 || cfg.Endpoints[0].ID != "one" {
		t.Errorf("endpoints = %+v", cfg.Endpoints)
	}
	if len(cfg.Auth.AllowedEmails) != 1 {
		t.Errorf("allowed_emails = %v", cfg.Auth.AllowedEmails)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
