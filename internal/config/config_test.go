package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/wallie/wallie/internal/urls"
)

func clearWallieEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"WALLIE_COUNTRIES_ENDPOINT",
		"WALLIE_FLAG_BASE_URL",
		"WALLIE_DEFAULT_COUNTRY",
		"WALLIE_FETCH_TIMEOUT",
		"WALLIE_DESTINATION",
		"WALLIE_LOG_LEVEL",
		"WALLIE_LOG_FILE",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "wallie") {
		t.Errorf("GetConfigDir() = %v, should contain 'wallie'", configDir)
	}

	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		configDir, _ = GetConfigDir()
		if configDir != "/tmp/xdg/wallie" {
			t.Errorf("GetConfigDir() with XDG_CONFIG_HOME = %v, want /tmp/xdg/wallie", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if cfg.Countries.Endpoint != urls.CountriesAll {
		t.Errorf("Endpoint = %s, want %s", cfg.Countries.Endpoint, urls.CountriesAll)
	}
	if cfg.Countries.DefaultCode != "US" {
		t.Errorf("DefaultCode = %s, want US", cfg.Countries.DefaultCode)
	}
	if cfg.Countries.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0 (no timeout)", cfg.Countries.Timeout)
	}
	if cfg.Navigation.Destination != "Home" {
		t.Errorf("Destination = %s, want Home", cfg.Navigation.Destination)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearWallieEnv(t)
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Countries.Endpoint != urls.CountriesAll {
		t.Errorf("Endpoint = %s, want default", cfg.Countries.Endpoint)
	}
}

func TestLoadPartialFile(t *testing.T) {
	clearWallieEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\ncountries:\n  default_code: FR\n  timeout: 15s\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Countries.DefaultCode != "FR" {
		t.Errorf("DefaultCode = %s, want FR", cfg.Countries.DefaultCode)
	}
	if cfg.Countries.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.Countries.Timeout)
	}
	if cfg.Countries.Endpoint != urls.CountriesAll {
		t.Errorf("Endpoint = %s, want default filled in", cfg.Countries.Endpoint)
	}
	if cfg.Navigation.Destination != "Home" {
		t.Errorf("Destination = %s, want default filled in", cfg.Navigation.Destination)
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	clearWallieEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 7\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject version 7")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearWallieEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("countries: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearWallieEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\ncountries:\n  endpoint: https://file.test/all\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("WALLIE_COUNTRIES_ENDPOINT", "https://env.test/all")
	t.Setenv("WALLIE_FETCH_TIMEOUT", "3s")
	t.Setenv("WALLIE_DESTINATION", "Dashboard")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Countries.Endpoint != "https://env.test/all" {
		t.Errorf("Endpoint = %s, want env value", cfg.Countries.Endpoint)
	}
	if cfg.Countries.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Countries.Timeout)
	}
	if cfg.Navigation.Destination != "Dashboard" {
		t.Errorf("Destination = %s, want Dashboard", cfg.Navigation.Destination)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"ftp endpoint", func(c *Config) { c.Countries.Endpoint = "ftp://x/all" }, true},
		{"relative flag base", func(c *Config) { c.Countries.FlagBaseURL = "/flags" }, true},
		{"negative timeout", func(c *Config) { c.Countries.Timeout = -time.Second }, true},
		{"empty destination", func(c *Config) { c.Navigation.Destination = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	clearWallieEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Countries.DefaultCode = "DE"
	cfg.Countries.Timeout = 2 * time.Second
	cfg.Log.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Wallie Configuration File") {
		t.Error("saved file should start with header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after Save()")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Countries.DefaultCode != "DE" {
		t.Errorf("DefaultCode = %s, want DE", loaded.Countries.DefaultCode)
	}
	if loaded.Countries.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", loaded.Countries.Timeout)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("Log.Level = %s, want debug", loaded.Log.Level)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if err := WriteDefault(path, false); err == nil {
		t.Error("WriteDefault() should refuse to overwrite without force")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(force) error = %v", err)
	}
}
