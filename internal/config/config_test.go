package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.DataFile != "tasks.json" {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, "tasks.json")
	}
	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.SecretKey == "" {
		t.Error("SecretKey is empty, want a development default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TASKS_JSON_PATH", "/tmp/other.json")
	t.Setenv("PORT", "8123")
	t.Setenv("SECRET_KEY", "s3cret")

	cfg := Load()

	if cfg.DataFile != "/tmp/other.json" {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, "/tmp/other.json")
	}
	if cfg.Port != 8123 {
		t.Errorf("Port = %d, want 8123", cfg.Port)
	}
	if cfg.SecretKey != "s3cret" {
		t.Errorf("SecretKey = %q, want %q", cfg.SecretKey, "s3cret")
	}
}
