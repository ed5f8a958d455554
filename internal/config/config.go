package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const (
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 300
	MinMaxRetries     = 1
	MaxMaxRetries     = 10
)

// domainPattern matches a bare Egnyte tenant subdomain ("acme", not a URL).
var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)

// Config represents the main application configuration
type Config struct {
	Domain         string `toml:"domain"`
	Token          string `toml:"token"`
	BaseURLRaw     string `toml:"base_url"`
	Loglevel       string `toml:"loglevel"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxRetries     int    `toml:"max_retries"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Loglevel:       "info",
		TimeoutSeconds: 30,
		MaxRetries:     3,
	}
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Use XDG config directory on Linux, Application Support on macOS
	configDir := filepath.Join(homeDir, ".config", "go-egnyte")

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads configuration from a TOML file
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("token is required")
	}
	if c.Domain == "" && c.BaseURLRaw == "" {
		return fmt.Errorf("either domain or base_url is required")
	}
	if c.Domain != "" && !domainPattern.MatchString(c.Domain) {
		return fmt.Errorf("domain must be the bare tenant subdomain, e.g. \"acme\" for acme.egnyte.com")
	}
	if c.BaseURLRaw != "" {
		if _, err := url.ParseRequestURI(c.BaseURLRaw); err != nil {
			return fmt.Errorf("base_url is invalid: %v", err)
		}
	}

	if _, err := logrus.ParseLevel(c.Loglevel); err != nil {
		return fmt.Errorf("loglevel must be one of: panic, fatal, error, warn, info, debug, trace")
	}

	if c.TimeoutSeconds < MinTimeoutSeconds || c.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("timeout_seconds must be between %d and %d", MinTimeoutSeconds, MaxTimeoutSeconds)
	}
	if c.MaxRetries < MinMaxRetries || c.MaxRetries > MaxMaxRetries {
		return fmt.Errorf("max_retries must be between %d and %d", MinMaxRetries, MaxMaxRetries)
	}

	return nil
}

// BaseURL returns the public API root for the configured tenant. An
// explicit base_url takes precedence over the domain-derived one.
func (c *Config) BaseURL() string {
	if c.BaseURLRaw != "" {
		return c.BaseURLRaw
	}
	return fmt.Sprintf("https://%s.egnyte.com/pubapi/v1", c.Domain)
}
