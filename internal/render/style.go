package render

import "github.com/gdamore/tcell/v2"

// Styles shared by the HUD and menus.
var (
	styleBase     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleFrame    = styleBase.Foreground(tcell.ColorGray)
	styleTitle    = styleBase.Foreground(tcell.ColorGold).Bold(true)
	styleText     = styleBase.Foreground(tcell.ColorWhite)
	styleDim      = styleBase.Foreground(tcell.ColorDarkGray)
	styleHint     = styleBase.Foreground(tcell.ColorLightGreen)
	styleMessage  = styleBase.Foreground(tcell.ColorLightYellow)
	styleSelected = styleBase.Foreground(tcell.ColorBlack).Background(tcell.ColorGold)
)
