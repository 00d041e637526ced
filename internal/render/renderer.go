package render

import (
	"slices"

	"satchel/assets"
	"satchel/internal/component"
	"satchel/internal/ecs"
	"satchel/internal/gamemap"
	"satchel/internal/level"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows reserved under the map.
const HUDHeight = 5

// Renderer draws scenes, the HUD and menus onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	framed bool
	// origin of the map viewport on screen
	ox, oy int
}

// NewRenderer creates a Renderer for the given screen. A framed renderer
// draws the map inside a border instead of edge to edge.
func NewRenderer(screen tcell.Screen, framed bool) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0, 0, 0), framed: framed}
	r.Resize()
	return r
}

// Screen returns the screen being drawn on.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// SetFramed switches between edge-to-edge and framed map drawing.
func (r *Renderer) SetFramed(framed bool) {
	r.framed = framed
	r.Resize()
}

// Resize recomputes the map viewport from the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	viewH := h - HUDHeight
	r.ox, r.oy = 0, 0
	if r.framed {
		r.ox, r.oy = 2, 1
		w -= 4
		viewH -= 2
	}
	r.camera.Resize(w, viewH)
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx, sy, visible = r.camera.WorldToScreen(wx, wy)
	return sx + r.ox, sy + r.oy, visible
}

// DrawScene clears the screen and renders the scene's tiles and entities
// around the player.
func (r *Renderer) DrawScene(s *level.Scene) {
	r.screen.Clear()
	pos := s.PlayerPosition()
	r.CenterOn(pos.X, pos.Y)
	if r.framed {
		r.drawFrame()
	}
	r.drawMap(s.Map, s.Theme)
	r.drawEntities(s)
}

func (r *Renderer) drawFrame() {
	w, h := r.screen.Size()
	bottom := h - HUDHeight - 1
	if bottom <= 0 || w < 2 {
		return
	}
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, '─', nil, styleFrame)
		r.screen.SetContent(x, bottom, '─', nil, styleFrame)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleFrame)
		r.screen.SetContent(w-1, y, '│', nil, styleFrame)
	}
	r.screen.SetContent(0, 0, '┌', nil, styleFrame)
	r.screen.SetContent(w-1, 0, '┐', nil, styleFrame)
	r.screen.SetContent(0, bottom, '└', nil, styleFrame)
	r.screen.SetContent(w-1, bottom, '┘', nil, styleFrame)
}

// drawMap renders seen tiles. Tiles that are explored but out of sight use
// the theme's dim glyphs.
func (r *Renderer) drawMap(gmap *gamemap.GameMap, theme assets.TileTheme) {
	for y := range gmap.Height {
		for x := range gmap.Width {
			tile := gmap.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, tileGlyph(tile, theme), styleBase)
		}
	}
}

func tileGlyph(tile *gamemap.Tile, theme assets.TileTheme) string {
	switch {
	case tile.Kind == gamemap.TileDoor:
		return assets.GlyphDoor
	case tile.Kind == gamemap.TileWall && tile.Visible:
		return theme.Wall
	case tile.Kind == gamemap.TileWall:
		return theme.DimWall
	case tile.Visible:
		return theme.Floor
	}
	return theme.DimFloor
}

type drawable struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders entities standing on visible tiles, lowest
// RenderOrder first.
func (r *Renderer) drawEntities(s *level.Scene) {
	var list []drawable
	s.Renderables.Each(func(id ecs.EntityID, rend component.Renderable) bool {
		pos, ok := s.Positions.Get(id)
		if !ok {
			return true
		}
		if s.Map.InBounds(pos.X, pos.Y) && !s.Map.At(pos.X, pos.Y).Visible {
			return true
		}
		list = append(list, drawable{pos: pos, rend: rend})
		return true
	})
	slices.SortStableFunc(list, func(a, b drawable) int {
		return a.rend.RenderOrder - b.rend.RenderOrder
	})

	for _, d := range list {
		sx, sy, onScreen := r.WorldToScreen(d.pos.X, d.pos.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, d.rend.Glyph, styleBase.Foreground(d.rend.FGColor))
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
// Wide runes advance two columns; zero-width runes are dropped.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > w {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += cw
	}
	return col
}

// drawCentered writes text centred horizontally on row y.
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText(max((w-runewidth.StringWidth(text))/2, 0), y, text, style)
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := range w {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }
