package system

import (
	"errors"
	"fmt"

	"satchel/internal/component"
	"satchel/internal/ecs"
	"satchel/internal/inventory"
	"satchel/internal/level"
)

// ErrNoRoom is returned by DropActive when something already lies on the
// player's tile.
var ErrNoRoom = errors.New("no room to drop here")

// PickableInReach returns the pickable the entity could take: one on its own
// tile first, otherwise one on the tile it faces.
func PickableInReach(s *level.Scene, id ecs.EntityID) (ecs.EntityID, bool) {
	pos, ok := s.Positions.Get(id)
	if !ok {
		return ecs.NilEntity, false
	}
	if p := entityAt(s, s.Pickables, pos); p != ecs.NilEntity {
		return p, true
	}
	f, _ := s.Facings.Get(id)
	dx, dy := f.Delta()
	if p := entityAt(s, s.Pickables, pos.Add(dx, dy)); p != ecs.NilEntity {
		return p, true
	}
	return ecs.NilEntity, false
}

// PickUp moves the pickable into inv and removes it from the scene.
func PickUp(s *level.Scene, inv *inventory.Inventory, pickable ecs.EntityID) (inventory.Item, bool) {
	p, ok := s.Pickables.Get(pickable)
	if !ok {
		return inventory.Item{}, false
	}
	s.World.DestroyEntity(pickable)
	inv.AddItem(p.Item)
	return p.Item, true
}

// DropActive takes the active item out of inv and lays it on the entity's
// tile. It passes queue.ErrEmptyQueue through when the satchel is empty and
// returns ErrNoRoom, leaving the satchel untouched, when the tile is taken
// by another item or a doorway.
func DropActive(s *level.Scene, inv *inventory.Inventory, id ecs.EntityID) (inventory.Item, error) {
	pos, ok := s.Positions.Get(id)
	if !ok {
		return inventory.Item{}, fmt.Errorf("drop: entity %d has no position", id)
	}
	occupied := entityAt(s, s.Pickables, pos) != ecs.NilEntity || entityAt(s, s.Exits, pos) != ecs.NilEntity
	if occupied && inv.Len() > 0 {
		return inventory.Item{}, ErrNoRoom
	}
	item, err := inv.Dequeue()
	if err != nil {
		return inventory.Item{}, fmt.Errorf("drop: %w", err)
	}
	level.NewPickable(s, component.Pickable{Item: item}, pos.X, pos.Y)
	return item, nil
}
