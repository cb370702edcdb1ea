// Package config loads postview settings from ~/.postview/config.yaml,
// an optional .env file and POSTVIEW_* environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	pverrors "github.com/zhubert/postview/internal/errors"
)

const (
	// DefaultAPIURL serves the users/posts/comments resources.
	DefaultAPIURL = "https://jsonplaceholder.typicode.com"
	// DefaultUserLimit caps the bootstrap user list.
	DefaultUserLimit = 100
	// DefaultPath is where Load looks when no path is given.
	DefaultPath = "~/.postview/config.yaml"
	// DefaultLogFile is the rotating debug log.
	DefaultLogFile = "/tmp/postview-debug.log"

	defaultFlashDuration = "3s"
)

// Environment variables that override file settings.
const (
	EnvAPIURL  = "POSTVIEW_API_URL"
	EnvLogFile = "POSTVIEW_LOG_FILE"
	EnvDebug   = "POSTVIEW_DEBUG"
)

// Config holds the application configuration
type Config struct {
	APIURL               string    `yaml:"api_url"`
	UserLimit            int       `yaml:"user_limit"`
	RawRequestTimeout    string    `yaml:"request_timeout,omitempty"` // empty means no timeout
	LogFile              string    `yaml:"log_file"`
	Log                  LogConfig `yaml:"log"`
	Theme                string    `yaml:"theme,omitempty"`
	NotificationsEnabled bool      `yaml:"notifications_enabled,omitempty"`
	RawFlashDuration     string    `yaml:"flash_duration,omitempty"`

	RequestTimeout time.Duration `yaml:"-"`
	FlashDuration  time.Duration `yaml:"-"`

	mu       sync.RWMutex
	filePath string
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a config with every default applied and no backing file.
func Default() *Config {
	cfg := &Config{}
	// Defaults are always parseable.
	_ = cfg.setDefaults()
	return cfg
}

// LoadDotEnv loads KEY=value pairs from the given files (".env" when none)
// into the process environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads the config at path (DefaultPath when empty). A missing file
// yields the defaults. Environment overrides are applied before validation.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, pverrors.ConfigLoadFailed(path, err)
	}

	cfg := &Config{}
	data, err := os.ReadFile(expanded)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, pverrors.ConfigLoadFailed(expanded, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, pverrors.ConfigLoadFailed(expanded, fmt.Errorf("parse config: %w", err))
		}
	}
	cfg.filePath = expanded

	cfg.applyEnv()

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if on, err := strconv.ParseBool(v); err == nil && on {
			c.Log.Level = "debug"
		}
	}
}

func (c *Config) setDefaults() error {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.UserLimit == 0 {
		c.UserLimit = DefaultUserLimit
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if expanded, err := homedir.Expand(c.LogFile); err == nil {
		c.LogFile = expanded
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.RawRequestTimeout != "" {
		d, err := time.ParseDuration(c.RawRequestTimeout)
		if err != nil {
			return pverrors.ConfigInvalid(fmt.Sprintf("parse request_timeout %q: %v", c.RawRequestTimeout, err))
		}
		c.RequestTimeout = d
	}

	if c.RawFlashDuration == "" {
		c.RawFlashDuration = defaultFlashDuration
	}
	d, err := time.ParseDuration(c.RawFlashDuration)
	if err != nil {
		return pverrors.ConfigInvalid(fmt.Sprintf("parse flash_duration %q: %v", c.RawFlashDuration, err))
	}
	c.FlashDuration = d
	return nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return pverrors.ConfigInvalid(fmt.Sprintf("invalid api_url %q: %v", c.APIURL, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return pverrors.ConfigInvalid(fmt.Sprintf("api_url %q must use http or https", c.APIURL))
	}
	if u.Host == "" {
		return pverrors.ConfigInvalid(fmt.Sprintf("api_url %q has no host", c.APIURL))
	}
	if c.UserLimit < 0 {
		return pverrors.ConfigInvalid(fmt.Sprintf("user_limit must be positive, got %d", c.UserLimit))
	}
	if c.RequestTimeout < 0 {
		return pverrors.ConfigInvalid(fmt.Sprintf("request_timeout must not be negative, got %s", c.RawRequestTimeout))
	}
	if c.FlashDuration <= 0 {
		return pverrors.ConfigInvalid(fmt.Sprintf("flash_duration must be positive, got %s", c.RawFlashDuration))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return pverrors.ConfigInvalid(fmt.Sprintf("invalid log.level %q (debug|info|warn|error)", c.Log.Level))
	}
	return nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return pverrors.ConfigInvalid("config has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.filePath, data, 0644)
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme records the theme name; call Save to persist it
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled reports whether background failures raise
// desktop notifications
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled toggles desktop notifications
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
