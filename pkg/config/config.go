// Package config loads vfsh settings from an optional TOML file and
// VFSH_* environment variables. Environment values win over the file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"vfsh/pkg/logging"
)

// Config holds front-end and session settings.
type Config struct {
	Prompt     string         `toml:"prompt"`
	EchoPrefix string         `toml:"echo_prefix"`
	TailLines  int            `toml:"tail_lines"`
	Color      bool           `toml:"color"`
	Log        logging.Config `toml:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Prompt:     "$ ",
		EchoPrefix: "$ ",
		TailLines:  10,
		Color:      true,
		Log: logging.Config{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads the TOML file at path, if any, over the defaults and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Prompt = envOr("VFSH_PROMPT", cfg.Prompt)
	cfg.EchoPrefix = envOr("VFSH_ECHO_PREFIX", cfg.EchoPrefix)
	cfg.TailLines = envInt("VFSH_TAIL_LINES", cfg.TailLines)
	cfg.Color = envBool("VFSH_COLOR", cfg.Color)
	cfg.Log.Level = envOr("VFSH_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envOr("VFSH_LOG_FORMAT", cfg.Log.Format)
	cfg.Log.OutputPath = envOr("VFSH_LOG_OUTPUT", cfg.Log.OutputPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would break a session.
func (c *Config) Validate() error {
	if c.TailLines <= 0 {
		return fmt.Errorf("tail_lines must be positive, got %d", c.TailLines)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
