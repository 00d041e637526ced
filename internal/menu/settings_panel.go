package menu

import (
	"fmt"
	"math"

	"satchel/internal/settings"
)

// Settings panel rows.
const (
	RowVolume = iota
	RowQuality
	RowFullscreen
	RowBack
)

const volumeStep = 0.1

// SettingsPanel edits a Settings value row by row. Left and right change
// the highlighted value.
type SettingsPanel struct {
	rows list
}

func newSettingsPanel() SettingsPanel {
	return SettingsPanel{rows: list{items: []string{"Master volume", "Quality", "Fullscreen", "Back"}}}
}

func (sp *SettingsPanel) reset() { sp.rows.cursor = 0 }

// Up moves to the previous row.
func (sp *SettingsPanel) Up() { sp.rows.up() }

// Down moves to the next row.
func (sp *SettingsPanel) Down() { sp.rows.down() }

// Cursor returns the highlighted row.
func (sp *SettingsPanel) Cursor() int { return sp.rows.cursor }

// OnBack reports whether the Back row is highlighted.
func (sp *SettingsPanel) OnBack() bool { return sp.rows.cursor == RowBack }

// Rows returns each row's label with its current value from s.
func (sp *SettingsPanel) Rows(s settings.Settings) []string {
	onOff := "off"
	if s.Fullscreen {
		onOff = "on"
	}
	return []string{
		fmt.Sprintf("%s  < %3.0f%% >", sp.rows.items[RowVolume], s.MasterVolume*100),
		fmt.Sprintf("%s  < %s >", sp.rows.items[RowQuality], s.QualityName()),
		fmt.Sprintf("%s  < %s >", sp.rows.items[RowFullscreen], onOff),
		sp.rows.items[RowBack],
	}
}

// Adjust moves the highlighted value one step in the direction of delta
// and reports whether s changed. Values stop at the ends of their range.
func (sp *SettingsPanel) Adjust(s *settings.Settings, delta int) bool {
	switch sp.rows.cursor {
	case RowVolume:
		v := math.Round((s.MasterVolume+float64(delta)*volumeStep)*10) / 10
		before := s.MasterVolume
		if s.SetMasterVolume(min(max(v, 0), 1)) != nil {
			return false
		}
		return s.MasterVolume != before
	case RowQuality:
		return s.SetQuality(s.Quality+delta) == nil
	case RowFullscreen:
		s.SetFullscreen(!s.Fullscreen)
		return true
	}
	return false
}
