// Package config loads client configuration from a YAML file under the
// user config directory, with environment variables taking precedence.
// A .env file in the working directory is honored for development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultAPIURL  = "http://localhost:8080/api"
	DefaultTimeout = 10 * time.Second
)

// Config holds everything the client needs to reach the expense API.
type Config struct {
	// APIURL is the base URL all endpoint paths are relative to.
	APIURL string `yaml:"api_url"`
	// Timeout bounds each request. Zero means unbounded.
	Timeout time.Duration `yaml:"timeout"`
	// CredentialsPath locates the persisted session credential.
	CredentialsPath string `yaml:"credentials_path"`
	// ActivityLogPath locates the local mutation activity log.
	ActivityLogPath string `yaml:"activity_log_path"`
}

// Default returns a Config with standard paths under the user config dir.
func Default() *Config {
	return &Config{
		APIURL:          DefaultAPIURL,
		Timeout:         DefaultTimeout,
		CredentialsPath: filepath.Join(configDir(), "credentials.yaml"),
		ActivityLogPath: filepath.Join(configDir(), "activity.csv"),
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "trackwise")
	}
	return ".trackwise"
}

// Load reads the config file at path (missing file yields defaults), then
// applies environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.APIURL = getEnv("TRACKWISE_API_URL", cfg.APIURL)
	cfg.Timeout = getEnvDuration("TRACKWISE_TIMEOUT", cfg.Timeout)
	cfg.CredentialsPath = getEnv("TRACKWISE_CREDENTIALS", cfg.CredentialsPath)
	cfg.ActivityLogPath = getEnv("TRACKWISE_ACTIVITY_LOG", cfg.ActivityLogPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the configuration, collecting all problems.
func (c *Config) Validate() error {
	var errs []string

	u, err := url.Parse(c.APIURL)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid API URL %q: %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("invalid API URL scheme %q: must be http or https", u.Scheme))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("invalid timeout %v: must not be negative", c.Timeout))
	}
	if c.CredentialsPath == "" {
		errs = append(errs, "credentials path cannot be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
