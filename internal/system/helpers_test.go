package system

import (
	"satchel/internal/component"
	"satchel/internal/ecs"
	"satchel/internal/gamemap"
	"satchel/internal/level"
)

// openScene creates a scene whose map is floor everywhere except a wall
// border, with a player standing at (px, py) facing north.
func openScene(width, height, px, py int) (*level.Scene, ecs.EntityID) {
	gmap := gamemap.New(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	s := level.NewScene("test", gmap)
	s.PlayerID = level.NewPlayer(s, px, py)
	return s, s.PlayerID
}

func placeItem(s *level.Scene, name string, x, y int) ecs.EntityID {
	return level.NewPickable(s, component.Pickable{Item: itemNamed(name)}, x, y)
}
