package component

import "github.com/gdamore/tcell/v2"

// Renderable is how an entity is drawn on the map.
type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int // lower is drawn first
}
