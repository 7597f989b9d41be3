package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want defaults for a missing file", err)
	}
	if config.Format != "json" {
		t.Errorf("config.Format = %q, want %q", config.Format, "json")
	}
	if config.Sender != "" {
		t.Errorf("config.Sender = %q, want empty (adapter default applies)", config.Sender)
	}
}

func TestLoadConfig_Values(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentledger.yaml")
	content := "sender: Majestic\nformat: yaml\ndb_path: /tmp/runs.db\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Sender != "Majestic" {
		t.Errorf("config.Sender = %q, want %q", config.Sender, "Majestic")
	}
	if config.Format != "yaml" {
		t.Errorf("config.Format = %q, want %q", config.Format, "yaml")
	}
	if config.DBPath != "/tmp/runs.db" {
		t.Errorf("config.DBPath = %q, want %q", config.DBPath, "/tmp/runs.db")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentledger.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- broken"), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() error = nil, want error for invalid YAML")
	}
}
