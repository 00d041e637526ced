package menu

// Main menu entries.
const (
	ItemPlay       = "Play"
	ItemSettings   = "Settings"
	ItemCredits    = "Credits"
	ItemExit       = "Exit"
	ItemResume     = "Resume"
	ItemBackToMenu = "Back to menu"
)

// Main is the title screen menu: Play, Settings, Credits and Exit, with
// the credits and settings shown as their own panels.
type Main struct {
	panel    Panel
	buttons  list
	Settings SettingsPanel
}

// NewMain returns the main menu showing its buttons.
func NewMain() *Main {
	return &Main{
		buttons:  list{items: []string{ItemPlay, ItemSettings, ItemCredits, ItemExit}},
		Settings: newSettingsPanel(),
	}
}

// Panel returns the page being shown.
func (m *Main) Panel() Panel { return m.panel }

// Items returns the button labels.
func (m *Main) Items() []string { return m.buttons.items }

// Cursor returns the index of the highlighted button.
func (m *Main) Cursor() int { return m.buttons.cursor }

// Up moves the highlight on the current panel.
func (m *Main) Up() {
	switch m.panel {
	case PanelButtons:
		m.buttons.up()
	case PanelSettings:
		m.Settings.Up()
	}
}

// Down moves the highlight on the current panel.
func (m *Main) Down() {
	switch m.panel {
	case PanelButtons:
		m.buttons.down()
	case PanelSettings:
		m.Settings.Down()
	}
}

// Select activates the highlighted entry.
func (m *Main) Select() Action {
	switch m.panel {
	case PanelCredits:
		m.panel = PanelButtons
		return ActionNone
	case PanelSettings:
		if m.Settings.OnBack() {
			m.panel = PanelButtons
		}
		return ActionNone
	}
	switch m.buttons.selected() {
	case ItemPlay:
		return ActionPlay
	case ItemSettings:
		m.panel = PanelSettings
		m.Settings.reset()
	case ItemCredits:
		m.panel = PanelCredits
	case ItemExit:
		return ActionQuit
	}
	return ActionNone
}

// Back leaves a sub panel. It reports false when already on the buttons.
func (m *Main) Back() bool {
	if m.panel == PanelButtons {
		return false
	}
	m.panel = PanelButtons
	return true
}
