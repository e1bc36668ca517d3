// challengely TUI - A terminal chat assistant for daily challenges.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/challengely-tui/internal/config"
	"github.com/jeranaias/challengely-tui/internal/engine"
	"github.com/jeranaias/challengely-tui/internal/kv"
	"github.com/jeranaias/challengely-tui/internal/model"
	"github.com/jeranaias/challengely-tui/internal/respond"
	"github.com/jeranaias/challengely-tui/internal/storage"
	"github.com/jeranaias/challengely-tui/internal/stream"
	"github.com/jeranaias/challengely-tui/internal/ui/chat"
	"github.com/jeranaias/challengely-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("challengely %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "--help", "-h":
			printHelp()
			return
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: challengely requires an interactive terminal")
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration at startup
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open the state database
	statePath, err := cfg.StatePath()
	if err != nil {
		return err
	}
	db, err := kv.Open(statePath)
	if err != nil {
		return fmt.Errorf("could not open state database: %w", err)
	}
	defer db.Close()

	// On the very first launch, record the marker and seed default
	// preferences so the rest of the app has something to read.
	prefs := storage.NewPreferencesStore(db)
	if prefs.IsFirstLaunch() {
		if err := prefs.MarkFirstLaunch(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not record first launch: %v\n", err)
		}
		if prefs.LoadUserPreferences() == nil {
			_ = prefs.SaveUserPreferences(model.UserPreferences{
				Difficulty: model.DifficultyMedium,
			})
		}
	}

	// Wire the chat pipeline
	store := storage.NewConversationStore(db, storage.SystemClock{})
	matcher := respond.NewMatcher()
	player := stream.NewPlayer(cfg.StreamInterval(), nil)

	eng := engine.New(engine.Config{
		Matcher:       matcher,
		Store:         store,
		Player:        player,
		ResponseDelay: cfg.ResponseDelay(),
	})
	defer eng.Close()

	// Build the TUI
	theme := styles.NewTheme()
	view := chat.New(eng, theme, cfg.UI)

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(view, opts...).Run(); err != nil {
		return fmt.Errorf("error running challengely: %w", err)
	}
	return nil
}

func printHelp() {
	fmt.Println(`challengely - terminal chat assistant for daily challenges

Usage:
  challengely            start the chat TUI
  challengely --version  print version information
  challengely --help     show this help

Configuration:
  ~/.challengely/config.toml  (see config docs for keys)

Environment:
  CHALLENGELY_DATA_DIR             override the state directory
  CHALLENGELY_RESPONSE_DELAY_MS    override the reply delay
  CHALLENGELY_STREAM_INTERVAL_MS   override the stream cadence`)
}
