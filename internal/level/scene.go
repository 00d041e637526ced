// Package level builds playable scenes from the hand-authored layouts in
// assets and tracks which scene is loaded.
package level

import (
	"errors"
	"fmt"

	"satchel/assets"
	"satchel/internal/component"
	"satchel/internal/ecs"
	"satchel/internal/gamemap"
)

// SceneID names a scene.
type SceneID string

const (
	SceneMenu     SceneID = "menu"
	SceneTutorial SceneID = "tutorial"
	SceneYard     SceneID = "yard"
)

// FirstScene is the scene a new game starts in.
const FirstScene = SceneTutorial

// ErrUnknownScene is returned when a scene has no playable layout.
var ErrUnknownScene = errors.New("unknown scene")

// Scene is one loaded, playable scene: its map and the entities in it.
type Scene struct {
	ID    SceneID
	Title string
	Theme assets.TileTheme
	Map   *gamemap.GameMap
	World *ecs.World

	Positions   *ecs.Store[component.Position]
	Renderables *ecs.Store[component.Renderable]
	Pickables   *ecs.Store[component.Pickable]
	Exits       *ecs.Store[component.Exit]
	Facings     *ecs.Store[component.Facing]
	Stances     *ecs.Store[component.Stance]
	Blocking    *ecs.Store[component.TagBlocking]
	Players     *ecs.Store[component.TagPlayer]

	PlayerID ecs.EntityID
	Spawn    component.Position
}

// NewScene returns an empty scene around gmap with all component stores
// attached. Load uses it; tests use it to build scenes by hand.
func NewScene(id SceneID, gmap *gamemap.GameMap) *Scene {
	w := ecs.NewWorld()
	return &Scene{
		ID:          id,
		Map:         gmap,
		World:       w,
		Positions:   ecs.NewStore[component.Position](w),
		Renderables: ecs.NewStore[component.Renderable](w),
		Pickables:   ecs.NewStore[component.Pickable](w),
		Exits:       ecs.NewStore[component.Exit](w),
		Facings:     ecs.NewStore[component.Facing](w),
		Stances:     ecs.NewStore[component.Stance](w),
		Blocking:    ecs.NewStore[component.TagBlocking](w),
		Players:     ecs.NewStore[component.TagPlayer](w),
	}
}

// Load builds the scene id. The player is placed at the layout's '@'.
func Load(id SceneID) (*Scene, error) {
	def, ok := assets.Scenes[string(id)]
	if !ok {
		return nil, fmt.Errorf("load scene %q: %w", id, ErrUnknownScene)
	}
	gmap, err := gamemap.Parse(def.Rows)
	if err != nil {
		return nil, fmt.Errorf("load scene %q: %w", id, err)
	}
	s := NewScene(id, gmap)
	s.Title = def.Title
	s.Theme = def.Theme

	spawnSet := false
	for y, row := range def.Rows {
		for x, r := range []rune(row) {
			switch {
			case r == '@':
				s.Spawn = component.Position{X: x, Y: y}
				spawnSet = true
			case r >= '0' && r <= '9':
				exit, ok := def.Exits[r]
				if !ok {
					return nil, fmt.Errorf("load scene %q: door %q at (%d,%d) has no destination", id, r, x, y)
				}
				gmap.Set(x, y, gamemap.MakeDoor())
				NewExit(s, x, y, component.Exit{
					Target: exit.Target,
					Spawn:  component.Position{X: exit.SpawnX, Y: exit.SpawnY},
				})
			default:
				if item, ok := assets.ItemForRune(r); ok {
					NewPickable(s, component.Pickable{Item: item}, x, y)
				}
			}
		}
	}
	if !spawnSet {
		return nil, fmt.Errorf("load scene %q: layout has no spawn point", id)
	}
	s.PlayerID = NewPlayer(s, s.Spawn.X, s.Spawn.Y)
	return s, nil
}

// MovePlayer places the player at pos, for arriving through a doorway.
func (s *Scene) MovePlayer(pos component.Position) {
	if !s.Map.IsWalkable(pos.X, pos.Y) {
		return
	}
	s.Positions.Set(s.PlayerID, pos)
}

// PlayerPosition returns the player's tile.
func (s *Scene) PlayerPosition() component.Position {
	pos, _ := s.Positions.Get(s.PlayerID)
	return pos
}

// PlayerFacing returns the direction the player looks.
func (s *Scene) PlayerFacing() component.Facing {
	f, _ := s.Facings.Get(s.PlayerID)
	return f
}

// PlayerStance returns the player's posture.
func (s *Scene) PlayerStance() component.Stance {
	st, _ := s.Stances.Get(s.PlayerID)
	return st
}
