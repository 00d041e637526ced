package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionTurnLeft
	ActionTurnRight
	ActionCrouch
	ActionInteract
	ActionCycle
	ActionDrop
	ActionMenu
	ActionQuit
)

// keyToAction maps a key event during play to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyTab:
		return ActionCycle
	case tcell.KeyEscape:
		return ActionMenu
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return ActionMoveN
	case 's', 'S', 'j', 'J':
		return ActionMoveS
	case 'd', 'D', 'l', 'L':
		return ActionMoveE
	case 'a', 'A', 'h', 'H':
		return ActionMoveW
	case '[':
		return ActionTurnLeft
	case ']':
		return ActionTurnRight
	case 'c', 'C':
		return ActionCrouch
	case 'e', 'E', ',':
		return ActionInteract
	case 'q', 'Q':
		return ActionCycle
	case 'g', 'G':
		return ActionDrop
	case 'p', 'P':
		return ActionMenu
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}

// menuKey is a key event translated for menu navigation.
type menuKey uint8

const (
	menuNone menuKey = iota
	menuUp
	menuDown
	menuLeft
	menuRight
	menuSelect
	menuBack
	menuQuit
)

func keyToMenu(ev *tcell.EventKey) menuKey {
	switch ev.Key() {
	case tcell.KeyUp:
		return menuUp
	case tcell.KeyDown:
		return menuDown
	case tcell.KeyLeft:
		return menuLeft
	case tcell.KeyRight:
		return menuRight
	case tcell.KeyEnter:
		return menuSelect
	case tcell.KeyEscape:
		return menuBack
	case tcell.KeyCtrlC:
		return menuQuit
	case tcell.KeyRune:
	default:
		return menuNone
	}
	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return menuUp
	case 's', 'S', 'j', 'J':
		return menuDown
	case 'a', 'A', 'h', 'H':
		return menuLeft
	case 'd', 'D', 'l', 'L':
		return menuRight
	case ' ', 'e', 'E':
		return menuSelect
	case 'p', 'P':
		return menuBack
	}
	return menuNone
}
