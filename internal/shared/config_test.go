package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Library.Data != "data" {
			t.Errorf("expected library data directory data, got %s", config.Library.Data)
		}

		if config.Database.Path != "illiad.sqlite" {
			t.Errorf("expected database path illiad.sqlite, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Server.Register {
			t.Error("expected registration to be disabled by default")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[library]
data = "/srv/audiobooks"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "0.0.0.0"
port = 9090
register = true
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Library.Data != "/srv/audiobooks" {
			t.Errorf("expected library data /srv/audiobooks, got %s", config.Library.Data)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 9090 {
			t.Errorf("expected server port 9090, got %d", config.Server.Port)
		}

		if !config.Server.Register {
			t.Error("expected registration to be enabled")
		}
	})

	t.Run("LoadConfigMissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("loading a missing config file should fail")
		}
	})
}
