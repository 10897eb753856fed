package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the origin of the remote admin API.
const DefaultBaseURL = "https://mernbackend-87en.onrender.com"

// Config holds everything the binary needs to wire its collaborators.
type Config struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutMs   int    `yaml:"timeout_ms"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	JournalPath string `yaml:"journal_path"`
	MetricsFile string `yaml:"metrics_file"`

	// QuietErrors hides operation failures from the operator. They are
	// still written to the log.
	QuietErrors bool `yaml:"quiet_errors"`
}

// HomeDir is the per-user state directory (~/.campusadmin).
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".campusadmin"
	}
	return filepath.Join(home, ".campusadmin")
}

// DefaultPath is where Load looks for a config file when none is given.
func DefaultPath() string {
	return filepath.Join(HomeDir(), "config.yaml")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dir := HomeDir()
	return Config{
		BaseURL:     DefaultBaseURL,
		TimeoutMs:   15000,
		LogLevel:    "info",
		LogFile:     filepath.Join(dir, "campusadmin.log"),
		JournalPath: filepath.Join(dir, "journal.db"),
	}
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Load builds the effective configuration. Later layers win:
// defaults, then .env in the working directory, then the YAML file at path
// (DefaultPath when empty; a missing file is not an error), then
// CAMPUSADMIN_* environment variables. The .env file is read as a layer of
// its own and never exported into the process environment.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	dotenv, err := godotenv.Read()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}
	applyEnv(&cfg, func(key string) string { return dotenv[key] })

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := loadFile(&cfg, path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays the CAMPUSADMIN_* keys that lookup returns non-empty.
func applyEnv(cfg *Config, lookup func(string) string) {
	if v := lookup("CAMPUSADMIN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := lookup("CAMPUSADMIN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := lookup("CAMPUSADMIN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := lookup("CAMPUSADMIN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := lookup("CAMPUSADMIN_JOURNAL"); v != "" {
		cfg.JournalPath = v
	}
	if v := lookup("CAMPUSADMIN_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	if v := lookup("CAMPUSADMIN_QUIET_ERRORS"); v != "" {
		cfg.QuietErrors, _ = strconv.ParseBool(v)
	}
}

// Validate checks the fields that would otherwise fail late and obscurely.
// The base URL is normalized to have no trailing slash.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q must be an absolute http(s) URL", c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url %q must use http or https", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.TimeoutMs <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %d", c.TimeoutMs)
	}
	return nil
}
