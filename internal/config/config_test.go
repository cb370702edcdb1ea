package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pverrors "github.com/zhubert/postview/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvDebug, "")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.UserLimit != DefaultUserLimit {
		t.Errorf("UserLimit = %d, want %d", cfg.UserLimit, DefaultUserLimit)
	}
	if cfg.RequestTimeout != 0 {
		t.Errorf("RequestTimeout = %v, want no timeout", cfg.RequestTimeout)
	}
	if cfg.FlashDuration != 3*time.Second {
		t.Errorf("FlashDuration = %v, want 3s", cfg.FlashDuration)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api_url: http://localhost:3000/
user_limit: 5
request_timeout: 10s
log:
  level: debug
theme: nord
notifications_enabled: true
flash_duration: 1500ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "http://localhost:3000" {
		t.Errorf("APIURL = %q, trailing slash should be trimmed", cfg.APIURL)
	}
	if cfg.UserLimit != 5 {
		t.Errorf("UserLimit = %d, want 5", cfg.UserLimit)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.FlashDuration != 1500*time.Millisecond {
		t.Errorf("FlashDuration = %v, want 1.5s", cfg.FlashDuration)
	}
	if cfg.GetTheme() != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.GetTheme())
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("notifications should be enabled")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "api_url: http://from-file.test\n")
	t.Setenv(EnvAPIURL, "http://from-env.test")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "http://from-env.test" {
		t.Errorf("APIURL = %q, env should win", cfg.APIURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, %s should force debug", cfg.Log.Level, EnvDebug)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad scheme", "api_url: ftp://example.com\n", "http or https"},
		{"no host", "api_url: http://\n", "no host"},
		{"negative limit", "user_limit: -1\n", "user_limit"},
		{"bad timeout", "request_timeout: soon\n", "request_timeout"},
		{"negative timeout", "request_timeout: -1s\n", "request_timeout"},
		{"zero flash", "flash_duration: 0s\n", "flash_duration"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad yaml", "api_url: [\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !pverrors.Is(err, pverrors.KindConfig) {
				t.Errorf("expected config error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.SetTheme("light")
	cfg.SetNotificationsEnabled(true)
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.GetTheme() != "light" {
		t.Errorf("Theme = %q, want light", loaded.GetTheme())
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("notifications should persist")
	}
	if loaded.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want default", loaded.APIURL)
	}
}

func TestConfig_SaveWithoutPath(t *testing.T) {
	if err := Default().Save(); err == nil {
		t.Error("Save without a file path should fail")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte(EnvAPIURL+"=http://dotenv.test\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set.
	os.Unsetenv(EnvAPIURL)

	if err := LoadDotEnv(envPath); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv(EnvAPIURL); got != "http://dotenv.test" {
		t.Errorf("%s = %q, want value from .env", EnvAPIURL, got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
