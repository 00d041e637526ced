package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunLog records what happened during one play-through, from Play on the
// main menu until the player quits or returns to the menu.
type RunLog struct {
	ID       string    `json:"id"`
	Player   string    `json:"player,omitempty"`
	Started  time.Time `json:"started"`
	Ended    time.Time `json:"ended"`
	Scenes   []string  `json:"scenes"`
	PickedUp []string  `json:"picked_up"`
	Dropped  []string  `json:"dropped"`
	Cycles   int       `json:"cycles"`
	Carried  []string  `json:"carried"`
	Outcome  string    `json:"outcome"`
}

// Run outcomes.
const (
	OutcomeQuit = "quit"
	OutcomeMenu = "menu"
)

func newRunLog(player string) RunLog {
	return RunLog{
		ID:       uuid.NewString(),
		Player:   player,
		Started:  time.Now(),
		Scenes:   []string{},
		PickedUp: []string{},
		Dropped:  []string{},
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl
// in dir, or in runLogDir when dir is empty. Errors are logged but never
// stop the game.
func saveRunLog(dir string, rl RunLog, logger *slog.Logger) {
	if dir == "" {
		var err error
		if dir, err = runLogDir(); err != nil {
			logger.Warn("run log: cannot determine data dir", "error", err)
			return
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Warn("run log: write failed", "error", err)
		return
	}
	logger.Info("run saved", "run", rl.ID, "outcome", rl.Outcome, "picked_up", len(rl.PickedUp))
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/satchel,
// defaulting to ~/.local/share/satchel.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "satchel"), nil
}
