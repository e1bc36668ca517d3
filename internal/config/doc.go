// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for challengely.
//
// Supports TOML configuration with sensible defaults and environment
// variable overrides.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ChatConfig: Turn pacing (response delay, stream cadence)
//   - StorageConfig: State database location
//   - UIConfig: Terminal UI behavior
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (CHALLENGELY_*)
//   - ~/.challengely/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	delay := cfg.ResponseDelay()
//	dbPath, err := cfg.StatePath()
package config
