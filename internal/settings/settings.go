// Package settings loads and saves the player's preferences as TOML.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrOutOfRange is returned by the setters for a value outside its range.
var ErrOutOfRange = errors.New("setting out of range")

// QualityNames labels each quality level, lowest first.
var QualityNames = []string{"Very Low", "Low", "Medium", "High", "Very High", "Ultra"}

// viewRadii is the sight radius in tiles for each quality level.
var viewRadii = []int{4, 5, 6, 7, 8, 10}

// Settings are the persisted player preferences.
type Settings struct {
	MasterVolume float64 `toml:"master_volume"`
	Quality      int     `toml:"quality_level"`
	Fullscreen   bool    `toml:"fullscreen"`
}

// Default returns the settings used when nothing has been saved.
func Default() Settings {
	return Settings{MasterVolume: 1.0, Quality: 2, Fullscreen: true}
}

// Dir returns the directory holding the settings file.
// It follows $XDG_CONFIG_HOME on Linux.
func Dir() string {
	if override := os.Getenv("SATCHEL_CONFIG_DIR"); override != "" {
		return override
	}
	if runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "satchel")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".satchel"
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "satchel")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "satchel")
	default:
		return filepath.Join(home, ".config", "satchel")
	}
}

// Path returns the default settings file location.
func Path() string {
	return filepath.Join(Dir(), "settings.toml")
}

// Load reads settings from path. A missing file yields Default. Keys absent
// from the file keep their default values; values out of range are reset to
// their default.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("decode settings %s: %w", path, err)
	}
	def := Default()
	if s.SetMasterVolume(s.MasterVolume) != nil {
		s.MasterVolume = def.MasterVolume
	}
	if s.SetQuality(s.Quality) != nil {
		s.Quality = def.Quality
	}
	return s, nil
}

// Save writes s to path, creating the parent directory.
func (s Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// SetMasterVolume sets the volume, 0 (mute) to 1 (full).
func (s *Settings) SetMasterVolume(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("master volume %v: %w", v, ErrOutOfRange)
	}
	s.MasterVolume = v
	return nil
}

// SetQuality selects a quality level, an index into QualityNames.
func (s *Settings) SetQuality(level int) error {
	if level < 0 || level >= len(QualityNames) {
		return fmt.Errorf("quality level %d: %w", level, ErrOutOfRange)
	}
	s.Quality = level
	return nil
}

// SetFullscreen toggles drawing the map across the whole terminal instead
// of inside a framed window.
func (s *Settings) SetFullscreen(on bool) { s.Fullscreen = on }

// QualityName returns the label of the current quality level.
func (s Settings) QualityName() string {
	if s.Quality < 0 || s.Quality >= len(QualityNames) {
		return "?"
	}
	return QualityNames[s.Quality]
}

// ViewRadius returns the sight radius for the current quality level.
func (s Settings) ViewRadius() int {
	q := min(max(s.Quality, 0), len(viewRadii)-1)
	return viewRadii[q]
}
