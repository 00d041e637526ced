package menu

import (
	"testing"

	"satchel/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenuPlay(t *testing.T) {
	m := NewMain()
	assert.Equal(t, ItemPlay, m.Items()[m.Cursor()])
	assert.Equal(t, ActionPlay, m.Select())
}

func TestMainMenuCursorWraps(t *testing.T) {
	m := NewMain()
	m.Up()
	assert.Equal(t, ItemExit, m.Items()[m.Cursor()])
	m.Down()
	assert.Equal(t, ItemPlay, m.Items()[m.Cursor()])
}

func TestMainMenuExit(t *testing.T) {
	m := NewMain()
	m.Up()
	assert.Equal(t, ActionQuit, m.Select())
}

func TestMainMenuCreditsAndBack(t *testing.T) {
	m := NewMain()
	m.Down()
	m.Down()
	require.Equal(t, ActionNone, m.Select())
	assert.Equal(t, PanelCredits, m.Panel())

	assert.True(t, m.Back())
	assert.Equal(t, PanelButtons, m.Panel())
	assert.False(t, m.Back())

	m.Select()
	require.Equal(t, PanelCredits, m.Panel())
	m.Select()
	assert.Equal(t, PanelButtons, m.Panel(), "selecting on credits returns to the buttons")
}

func TestMainMenuSettingsPanel(t *testing.T) {
	m := NewMain()
	m.Down()
	m.Select()
	require.Equal(t, PanelSettings, m.Panel())

	m.Down()
	assert.Equal(t, RowQuality, m.Settings.Cursor(), "Up/Down drive the settings rows")
	assert.Equal(t, ActionNone, m.Select())
	assert.Equal(t, PanelSettings, m.Panel(), "selecting a value row stays on the panel")

	m.Down()
	m.Down()
	require.True(t, m.Settings.OnBack())
	m.Select()
	assert.Equal(t, PanelButtons, m.Panel())
}

func TestPauseToggle(t *testing.T) {
	p := NewPause()
	assert.False(t, p.Open())
	assert.True(t, p.Toggle())
	assert.Equal(t, PanelButtons, p.Panel())
	assert.False(t, p.Toggle())
}

func TestPauseToggleFromSettingsResumes(t *testing.T) {
	p := NewPause()
	p.Toggle()
	p.Down()
	p.Select()
	require.Equal(t, PanelSettings, p.Panel())

	assert.False(t, p.Toggle())
	assert.True(t, p.Toggle())
	assert.Equal(t, PanelButtons, p.Panel(), "reopening starts on the buttons")
}

func TestPauseSelect(t *testing.T) {
	tests := []struct {
		downs    int
		want     Action
		stayOpen bool
	}{
		{0, ActionResume, false},
		{1, ActionNone, true},
		{2, ActionBackToMenu, false},
		{3, ActionQuit, true},
	}
	for _, tt := range tests {
		p := NewPause()
		p.Toggle()
		for range tt.downs {
			p.Down()
		}
		assert.Equal(t, tt.want, p.Select(), "item %d", tt.downs)
		assert.Equal(t, tt.stayOpen, p.Open(), "item %d", tt.downs)
	}
}

func TestPauseSelectWhileClosed(t *testing.T) {
	assert.Equal(t, ActionNone, NewPause().Select())
}

func TestPauseBack(t *testing.T) {
	p := NewPause()
	p.Toggle()
	p.Down()
	p.Select()

	assert.Equal(t, ActionNone, p.Back())
	assert.Equal(t, PanelButtons, p.Panel())
	assert.True(t, p.Open())

	assert.Equal(t, ActionResume, p.Back())
	assert.False(t, p.Open())
}

func TestSettingsPanelAdjust(t *testing.T) {
	sp := newSettingsPanel()
	s := settings.Default()

	assert.False(t, sp.Adjust(&s, +1), "volume already at max")
	assert.True(t, sp.Adjust(&s, -1))
	assert.InDelta(t, 0.9, s.MasterVolume, 1e-9)
	for range 20 {
		sp.Adjust(&s, -1)
	}
	assert.Equal(t, 0.0, s.MasterVolume)

	sp.Down()
	assert.True(t, sp.Adjust(&s, +1))
	assert.Equal(t, 3, s.Quality)
	s.Quality = len(settings.QualityNames) - 1
	assert.False(t, sp.Adjust(&s, +1))

	sp.Down()
	assert.True(t, sp.Adjust(&s, +1))
	assert.False(t, s.Fullscreen)

	sp.Down()
	assert.True(t, sp.OnBack())
	assert.False(t, sp.Adjust(&s, +1))
}

func TestSettingsPanelRows(t *testing.T) {
	sp := newSettingsPanel()
	rows := sp.Rows(settings.Default())
	require.Len(t, rows, 4)
	assert.Contains(t, rows[RowVolume], "100%")
	assert.Contains(t, rows[RowQuality], "Medium")
	assert.Contains(t, rows[RowFullscreen], "on")
	assert.Equal(t, "Back", rows[RowBack])
}
