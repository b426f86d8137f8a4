// Package config loads the bridge configuration from an optional YAML file
// and the environment. Settings are read once at startup and passed down;
// nothing below this package touches the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the Spark endpoint used when nothing else is configured.
	DefaultBaseURL = "http://spark:9000"

	// DefaultTimeout bounds the single blocking chat-completions call.
	DefaultTimeout = 120 * time.Second

	// EnvEndpoint overrides the backend base URL.
	EnvEndpoint = "SCRAM_J_ENDPOINT"

	// EnvTimeout overrides the request timeout, in seconds.
	EnvTimeout = "SCRAM_J_TIMEOUT"
)

// Config holds the process-wide settings for one invocation.
type Config struct {
	// BaseURL is the SCRAM-J backend base URL. The chat-completions path
	// is appended to it when the request is sent.
	BaseURL string `yaml:"base-url"`

	// TimeoutSeconds bounds the blocking HTTP call. Values <= 0 fall back
	// to DefaultTimeout.
	TimeoutSeconds int `yaml:"timeout-seconds"`
}

// Load reads the optional YAML file at path, then applies environment
// overrides and defaults. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if v := os.Getenv(EnvEndpoint); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg, nil
}

// Timeout returns the effective request timeout.
func (c *Config) Timeout() time.Duration {
	if c == nil || c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
