package gamemap

import "fmt"

// GameMap holds the tile grid for one scene.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// Parse builds a map from layout rows: '#' wall, '+' door, anything else is
// floor. Rows shorter than the widest one are padded with wall. The caller
// interprets the non-terrain runes (spawn points, items) itself.
func Parse(rows []string) (*GameMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse map: no rows")
	}
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	if width == 0 {
		return nil, fmt.Errorf("parse map: empty rows")
	}
	m := New(width, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			switch r {
			case '#', ' ':
				m.Set(x, y, MakeWall())
			case '+':
				m.Set(x, y, MakeDoor())
			default:
				m.Set(x, y, MakeFloor())
			}
		}
	}
	return m, nil
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}

// ClearVisible marks every tile as not currently visible. Explored flags
// are kept.
func (m *GameMap) ClearVisible() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
		}
	}
}
