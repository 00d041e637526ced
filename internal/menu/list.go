// Package menu holds the main menu and pause menu state machines. They know
// nothing about drawing; render reads their state and game feeds them keys.
package menu

// Action is what a menu asks the game to do after a selection.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionResume
	ActionBackToMenu
	ActionQuit
)

// Panel is the page a menu is showing.
type Panel int

const (
	PanelButtons Panel = iota
	PanelSettings
	PanelCredits
)

// list is a vertical list of labels with a wrapping cursor.
type list struct {
	items  []string
	cursor int
}

func (l *list) up() {
	l.cursor = (l.cursor + len(l.items) - 1) % len(l.items)
}

func (l *list) down() {
	l.cursor = (l.cursor + 1) % len(l.items)
}

func (l *list) selected() string { return l.items[l.cursor] }
