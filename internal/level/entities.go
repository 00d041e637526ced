package level

import (
	"satchel/assets"
	"satchel/internal/component"
	"satchel/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity at (x, y), standing and facing north.
func NewPlayer(s *Scene, x, y int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Positions.Set(id, component.Position{X: x, Y: y})
	s.Renderables.Set(id, component.Renderable{
		Glyph:       assets.GlyphPlayer,
		FGColor:     tcell.ColorYellow,
		RenderOrder: 10,
	})
	s.Facings.Set(id, component.FacingNorth)
	s.Stances.Set(id, component.StanceStanding)
	s.Players.Set(id, component.TagPlayer{})
	s.Blocking.Set(id, component.TagBlocking{})
	return id
}

// NewPickable places an item on the floor at (x, y).
func NewPickable(s *Scene, p component.Pickable, x, y int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Positions.Set(id, component.Position{X: x, Y: y})
	color := tcell.ColorGreen
	if p.Model.Tint != "" {
		if c := tcell.GetColor(p.Model.Tint); c != tcell.ColorDefault {
			color = c
		}
	}
	s.Renderables.Set(id, component.Renderable{
		Glyph:       p.Model.Glyph,
		FGColor:     color,
		RenderOrder: 2,
	})
	s.Pickables.Set(id, p)
	return id
}

// NewExit creates a doorway entity at (x, y).
func NewExit(s *Scene, x, y int, exit component.Exit) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Positions.Set(id, component.Position{X: x, Y: y})
	s.Renderables.Set(id, component.Renderable{
		Glyph:       assets.GlyphDoor,
		FGColor:     tcell.ColorWhite,
		RenderOrder: 1,
	})
	s.Exits.Set(id, exit)
	return id
}
