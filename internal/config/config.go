// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for challengely.
//
// Configuration lives at ~/.challengely/config.toml; missing files fall back
// to built-in defaults, and a handful of environment variables override load
// results for scripting.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/challengely-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete challengely configuration.
type Config struct {
	Version string `toml:"version"`

	// Chat configuration
	Chat ChatConfig `toml:"chat"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// ChatConfig tunes the turn pacing.
type ChatConfig struct {
	// ResponseDelayMs is the artificial processing delay before each reply,
	// in milliseconds. Clamped to 0-10000. Default: 2000.
	ResponseDelayMs int `toml:"response_delay_ms"`
	// StreamIntervalMs is the per-character reveal delay in milliseconds.
	// Clamped to 1-1000. Default: 50.
	StreamIntervalMs int `toml:"stream_interval_ms"`
}

// StorageConfig locates persisted state.
type StorageConfig struct {
	// DataDir is where the state database lives (empty = ~/.challengely)
	DataDir string `toml:"data_dir"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// AltScreen runs the TUI in the terminal's alternate screen buffer
	AltScreen bool `toml:"alt_screen"`
	// ShowTimestamps renders a timestamp next to each message block
	ShowTimestamps bool `toml:"show_timestamps"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Chat: ChatConfig{
			ResponseDelayMs:  2000,
			StreamIntervalMs: 50,
		},
		Storage: StorageConfig{
			DataDir: "",
		},
		UI: UIConfig{
			AltScreen:      true,
			ShowTimestamps: false,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the challengely configuration directory (~/.challengely).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".challengely"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// DataDir resolves the configured data directory, defaulting to the config
// directory itself.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	return ConfigDir()
}

// StatePath returns the path to the state database inside the data dir.
func (c *Config) StatePath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.db"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from ~/.challengely/config.toml, falling back to
// defaults when the file is absent. Environment overrides apply last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := loadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.Normalize()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := loadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnvOverrides()
	cfg.Normalize()
	return cfg, nil
}

func loadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to ~/.challengely/config.toml atomically.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to a specific file atomically.
func SaveToPath(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// =============================================================================
// OVERRIDES & NORMALIZATION
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported variables:
//   - CHALLENGELY_DATA_DIR: overrides storage.data_dir
//   - CHALLENGELY_RESPONSE_DELAY_MS: overrides chat.response_delay_ms
//   - CHALLENGELY_STREAM_INTERVAL_MS: overrides chat.stream_interval_ms
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CHALLENGELY_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("CHALLENGELY_RESPONSE_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.Chat.ResponseDelayMs = ms
		}
	}
	if v := os.Getenv("CHALLENGELY_STREAM_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.Chat.StreamIntervalMs = ms
		}
	}
}

// Normalize clamps out-of-range values to their valid bounds.
func (c *Config) Normalize() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Chat.ResponseDelayMs < 0 {
		c.Chat.ResponseDelayMs = 0
	}
	if c.Chat.ResponseDelayMs > 10000 {
		c.Chat.ResponseDelayMs = 10000
	}
	if c.Chat.StreamIntervalMs < 1 {
		c.Chat.StreamIntervalMs = 1
	}
	if c.Chat.StreamIntervalMs > 1000 {
		c.Chat.StreamIntervalMs = 1000
	}
}

// ResponseDelay returns the chat response delay as a duration.
func (c *Config) ResponseDelay() time.Duration {
	return time.Duration(c.Chat.ResponseDelayMs) * time.Millisecond
}

// StreamInterval returns the per-character stream delay as a duration.
func (c *Config) StreamInterval() time.Duration {
	return time.Duration(c.Chat.StreamIntervalMs) * time.Millisecond
}
