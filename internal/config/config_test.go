// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Chat.ResponseDelayMs != 2000 {
		t.Errorf("ResponseDelayMs = %d, want 2000", cfg.Chat.ResponseDelayMs)
	}
	if cfg.Chat.StreamIntervalMs != 50 {
		t.Errorf("StreamIntervalMs = %d, want 50", cfg.Chat.StreamIntervalMs)
	}
	if !cfg.UI.AltScreen {
		t.Error("AltScreen should default to true")
	}
	if cfg.ResponseDelay() != 2*time.Second {
		t.Errorf("ResponseDelay() = %v, want 2s", cfg.ResponseDelay())
	}
	if cfg.StreamInterval() != 50*time.Millisecond {
		t.Errorf("StreamInterval() = %v, want 50ms", cfg.StreamInterval())
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1.0"

[chat]
response_delay_ms = 500
stream_interval_ms = 25

[storage]
data_dir = "/tmp/challengely-test"

[ui]
alt_screen = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if cfg.Chat.ResponseDelayMs != 500 {
		t.Errorf("ResponseDelayMs = %d, want 500", cfg.Chat.ResponseDelayMs)
	}
	if cfg.Chat.StreamIntervalMs != 25 {
		t.Errorf("StreamIntervalMs = %d, want 25", cfg.Chat.StreamIntervalMs)
	}
	if cfg.Storage.DataDir != "/tmp/challengely-test" {
		t.Errorf("DataDir = %q", cfg.Storage.DataDir)
	}
	if cfg.UI.AltScreen {
		t.Error("AltScreen should be false")
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNormalizeClampsRanges(t *testing.T) {
	tests := []struct {
		name               string
		delayMs, wantDelay int
		intervalMs, wantIv int
	}{
		{"negative delay", -100, 0, 50, 50},
		{"excessive delay", 60000, 10000, 50, 50},
		{"zero interval", 2000, 2000, 0, 1},
		{"excessive interval", 2000, 2000, 5000, 1000},
		{"in range", 2000, 2000, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Chat.ResponseDelayMs = tt.delayMs
			cfg.Chat.StreamIntervalMs = tt.intervalMs
			cfg.Normalize()

			if cfg.Chat.ResponseDelayMs != tt.wantDelay {
				t.Errorf("ResponseDelayMs = %d, want %d", cfg.Chat.ResponseDelayMs, tt.wantDelay)
			}
			if cfg.Chat.StreamIntervalMs != tt.wantIv {
				t.Errorf("StreamIntervalMs = %d, want %d", cfg.Chat.StreamIntervalMs, tt.wantIv)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("CHALLENGELY_DATA_DIR", "/custom/data")
	t.Setenv("CHALLENGELY_RESPONSE_DELAY_MS", "750")
	t.Setenv("CHALLENGELY_STREAM_INTERVAL_MS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Storage.DataDir != "/custom/data" {
		t.Errorf("DataDir = %q, want /custom/data", cfg.Storage.DataDir)
	}
	if cfg.Chat.ResponseDelayMs != 750 {
		t.Errorf("ResponseDelayMs = %d, want 750", cfg.Chat.ResponseDelayMs)
	}
	// Unparseable values are ignored.
	if cfg.Chat.StreamIntervalMs != 50 {
		t.Errorf("StreamIntervalMs = %d, want 50", cfg.Chat.StreamIntervalMs)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Chat.ResponseDelayMs = 1234
	cfg.UI.ShowTimestamps = true

	if err := SaveToPath(cfg, path); err != nil {
		t.Fatalf("SaveToPath: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.Chat.ResponseDelayMs != 1234 {
		t.Errorf("ResponseDelayMs = %d, want 1234", loaded.Chat.ResponseDelayMs)
	}
	if !loaded.UI.ShowTimestamps {
		t.Error("ShowTimestamps should survive the round trip")
	}
}

func TestStatePath(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = "/data/challengely"

	path, err := cfg.StatePath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/data/challengely", "state.db") {
		t.Errorf("StatePath = %q", path)
	}
}
