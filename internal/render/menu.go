package render

import (
	"satchel/internal/menu"
	"satchel/internal/settings"
)

// DrawMainMenu renders the title screen for its current panel.
func (r *Renderer) DrawMainMenu(m *menu.Main, s settings.Settings, credits []string) {
	r.screen.Clear()
	_, h := r.screen.Size()
	y := max(h/2-6, 0)

	r.drawCentered(y, "🎒 SATCHEL 🎒", styleTitle)
	y += 2
	switch m.Panel() {
	case menu.PanelCredits:
		for i, line := range credits {
			r.drawCentered(y+i, line, styleText)
		}
		r.drawCentered(y+len(credits)+1, "[ Back ]", styleSelected)
	case menu.PanelSettings:
		r.drawSettings(y, &m.Settings, s)
	default:
		r.drawList(y, m.Items(), m.Cursor())
	}
}

// DrawPause renders the pause menu over the current frame.
func (r *Renderer) DrawPause(p *menu.Pause, s settings.Settings) {
	w, h := r.screen.Size()
	y := max(h/2-4, 0)
	for row := y - 1; row < y+7 && row < h; row++ {
		for x := range w {
			r.screen.SetContent(x, row, ' ', nil, styleBase)
		}
	}
	r.drawCentered(y, "Paused", styleTitle)
	if p.Panel() == menu.PanelSettings {
		r.drawSettings(y+2, &p.Settings, s)
		return
	}
	r.drawList(y+2, p.Items(), p.Cursor())
}

func (r *Renderer) drawList(y int, items []string, cursor int) {
	for i, it := range items {
		style := styleText
		label := "  " + it + "  "
		if i == cursor {
			style = styleSelected
			label = "> " + it + " <"
		}
		r.drawCentered(y+i, label, style)
	}
}

func (r *Renderer) drawSettings(y int, sp *menu.SettingsPanel, s settings.Settings) {
	for i, row := range sp.Rows(s) {
		style := styleText
		if i == sp.Cursor() {
			style = styleSelected
		}
		r.drawCentered(y+i, row, style)
	}
}
