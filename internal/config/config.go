// Package config assembles the server configuration from an optional YAML
// file, environment variables, and built-in defaults. Environment
// variables override the file; defaults fill whatever remains empty.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults for the hosted services. Self-hosted deployments override
// these via the config file or TEABLE_API_URL / NTFY_URL.
const (
	DefaultTeableAPIURL = "https://app.teable.io/api"
	DefaultNtfyURL      = "https://ntfy.sh"
)

// Config holds the settings for both server modes. Only the section for
// the active mode is consulted at runtime.
type Config struct {
	Teable TeableConfig `yaml:"teable"`
	Ntfy   NtfyConfig   `yaml:"ntfy"`
}

// TeableConfig configures the Teable record-query tool.
type TeableConfig struct {
	// APIURL is the Teable API base URL.
	APIURL string `yaml:"api_url"`
	// Token is the bearer credential for the Teable API.
	Token string `yaml:"token"`
	// TableID is an optional default table. When set, the tool's tableId
	// argument becomes optional and falls back to it.
	TableID string `yaml:"table_id"`
}

// NtfyConfig configures the notification tool.
type NtfyConfig struct {
	// BaseURL is the ntfy server base URL.
	BaseURL string `yaml:"base_url"`
	// Token is an optional bearer credential for protected topics.
	Token string `yaml:"token"`
}

// Load reads the configuration. The path may be empty, in which case only
// environment variables and defaults apply. A path that cannot be read or
// parsed is a startup error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := firstEnv("TEABLE_API_URL"); v != "" {
		c.Teable.APIURL = v
	}
	if v := firstEnv("TEABLE_API_TOKEN", "TEABLE_TOKEN"); v != "" {
		c.Teable.Token = v
	}
	if v := firstEnv("TEABLE_TABLE_ID"); v != "" {
		c.Teable.TableID = v
	}
	if v := firstEnv("NTFY_URL"); v != "" {
		c.Ntfy.BaseURL = v
	}
	if v := firstEnv("NTFY_TOKEN", "NTFY_ACCESS_TOKEN"); v != "" {
		c.Ntfy.Token = v
	}
}

func (c *Config) applyDefaults() {
	if c.Teable.APIURL == "" {
		c.Teable.APIURL = DefaultTeableAPIURL
	}
	if c.Ntfy.BaseURL == "" {
		c.Ntfy.BaseURL = DefaultNtfyURL
	}
}

// firstEnv returns the value of the first environment variable in keys
// that is set to a non-blank value.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
