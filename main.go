// satchel is a small exploration game: walk the cellar and the yard, pick
// things up and juggle them in a first-in first-out satchel.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"satchel/internal/audio"
	"satchel/internal/game"
	"satchel/internal/settings"

	"github.com/spf13/cobra"
)

var (
	settingsPath string
	logPath      string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "satchel",
	Short: "Explore, pick things up, and cycle through your satchel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog := openLogger()
		defer closeLog()
		return run(logger)
	},
}

func init() {
	rootCmd.Flags().StringVar(&settingsPath, "settings", settings.Path(), "Path to the settings file")
	rootCmd.Flags().StringVar(&logPath, "log", defaultLogPath(), "Log file (empty disables logging)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log at debug level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	prefs, err := settings.Load(settingsPath)
	if err != nil {
		logger.Warn("settings unreadable, using defaults", "path", settingsPath, "error", err)
	}

	player := audio.New(prefs.MasterVolume)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	defer player.Close()

	g, err := game.New(game.Options{
		Logger:       logger,
		Settings:     prefs,
		SettingsPath: settingsPath,
		Audio:        player,
		Player:       os.Getenv("USER"),
	})
	if err != nil {
		return err
	}
	return g.Run(context.Background())
}

// defaultLogPath returns $XDG_STATE_HOME/satchel/satchel.log, falling back
// to ~/.local/state. The terminal belongs to the game, so nothing is logged
// there.
func defaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "satchel", "satchel.log")
}

// openLogger writes to logPath, or discards when it is empty or cannot be
// opened.
func openLogger() (*slog.Logger, func()) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if logPath == "" {
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard, func() {}
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }
}
