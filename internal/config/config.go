// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package config loads the interact CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompt backends.
const (
	BackendAuto   = "auto"
	BackendLine   = "line"
	BackendTUI    = "tui"
	BackendScript = "script"
)

// Environment variables read by the CLI.
const (
	EnvDataDir = "INTERACT_DATA"
	EnvVerbose = "INTERACT_VERBOSE"
	EnvBackend = "INTERACT_BACKEND"
)

// Config holds interact configuration settings
type Config struct {
	Verbose      bool   `yaml:"verbose" description:"Show value types in prompt help text" default:"false"`
	Backend      string `yaml:"backend" description:"Prompt backend (auto, line, tui, script)" default:"auto"`
	HistoryFile  string `yaml:"history_file" description:"Readline history file (relative to data dir, empty disables)" default:"history"`
	AnswerScript string `yaml:"answer_script" description:"JavaScript answer file for the script backend (relative to data dir)"`
	Color        bool   `yaml:"color" description:"Colorize line prompts when the terminal supports it" default:"true"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Backend:     BackendAuto,
		HistoryFile: "history",
		Color:       true,
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendLine, BackendTUI, BackendScript:
		return nil
	default:
		return fmt.Errorf("invalid backend '%s' (must be auto, line, tui, or script)", c.Backend)
	}
}

// GetDataDir returns the data directory.
// Resolution order: -d flag > INTERACT_DATA env var > ~/.interact
func GetDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envDir := os.Getenv(EnvDataDir); envDir != "" {
		return envDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "" // Can't determine default
	}
	return filepath.Join(home, ".interact")
}

// GetConfigPath returns the path to the config file in the data directory.
// Returns empty string if dataDir is empty.
func GetConfigPath(dataDir string) string {
	if dataDir == "" {
		return ""
	}
	return filepath.Join(dataDir, "config.yaml")
}

// Load loads config.yaml from dataDir, applies environment overrides and
// resolves relative paths against dataDir.
func Load(dataDir string) (Config, error) {
	cfg, err := LoadFromPath(GetConfigPath(dataDir))
	if err != nil {
		return cfg, err
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cfg.HistoryFile = ResolvePath(cfg.HistoryFile, dataDir)
	cfg.AnswerScript = ResolvePath(cfg.AnswerScript, dataDir)
	return cfg, nil
}

// LoadFromPath loads configuration from the specified path.
// If path is empty or the file doesn't exist, returns default config.
func LoadFromPath(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is derived from the user's data directory
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then overlay config file values
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendAuto
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvVerbose, v, err)
		}
		c.Verbose = b
	}
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = strings.ToLower(v)
	}
	return nil
}

// ResolvePath resolves a path relative to baseDir.
// Absolute and empty paths are returned unchanged; "~/" expands to the home directory.
func ResolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
