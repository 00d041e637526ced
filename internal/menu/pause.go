package menu

// Pause is the in-game menu. While it is open the game does not advance.
type Pause struct {
	open     bool
	panel    Panel
	buttons  list
	Settings SettingsPanel
}

// NewPause returns a closed pause menu.
func NewPause() *Pause {
	return &Pause{
		buttons:  list{items: []string{ItemResume, ItemSettings, ItemBackToMenu, ItemExit}},
		Settings: newSettingsPanel(),
	}
}

// Open reports whether the game is paused.
func (p *Pause) Open() bool { return p.open }

// Panel returns the page being shown.
func (p *Pause) Panel() Panel { return p.panel }

// Items returns the button labels.
func (p *Pause) Items() []string { return p.buttons.items }

// Cursor returns the index of the highlighted button.
func (p *Pause) Cursor() int { return p.buttons.cursor }

// Toggle opens a closed menu on its buttons, or closes an open one.
// It reports whether the menu is now open.
func (p *Pause) Toggle() bool {
	if p.open {
		p.Close()
	} else {
		p.open = true
		p.panel = PanelButtons
		p.buttons.cursor = 0
	}
	return p.open
}

// Close resumes the game.
func (p *Pause) Close() {
	p.open = false
	p.panel = PanelButtons
}

// Up moves the highlight on the current panel.
func (p *Pause) Up() {
	if p.panel == PanelSettings {
		p.Settings.Up()
		return
	}
	p.buttons.up()
}

// Down moves the highlight on the current panel.
func (p *Pause) Down() {
	if p.panel == PanelSettings {
		p.Settings.Down()
		return
	}
	p.buttons.down()
}

// Select activates the highlighted entry.
func (p *Pause) Select() Action {
	if !p.open {
		return ActionNone
	}
	if p.panel == PanelSettings {
		if p.Settings.OnBack() {
			p.panel = PanelButtons
		}
		return ActionNone
	}
	switch p.buttons.selected() {
	case ItemResume:
		p.Close()
		return ActionResume
	case ItemSettings:
		p.panel = PanelSettings
		p.Settings.reset()
	case ItemBackToMenu:
		p.Close()
		return ActionBackToMenu
	case ItemExit:
		return ActionQuit
	}
	return ActionNone
}

// Back leaves the settings panel, or resumes from the buttons.
func (p *Pause) Back() Action {
	if p.panel == PanelSettings {
		p.panel = PanelButtons
		return ActionNone
	}
	p.Close()
	return ActionResume
}
