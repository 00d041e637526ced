package system

import (
	"satchel/internal/component"
	"satchel/internal/ecs"
	"satchel/internal/level"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, out-of-bounds or a blocking entity
	MoveExit                      // stepped onto a doorway
)

// TryMove turns entity id toward (dx, dy) and walks one tile that way.
// The facing changes even when the step is blocked. On MoveExit the second
// result is the exit entity the mover now stands on.
func TryMove(s *level.Scene, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	pos, ok := s.Positions.Get(id)
	if !ok {
		return MoveBlocked, ecs.NilEntity
	}
	if f, ok := component.FacingFor(dx, dy); ok && s.Facings.Has(id) {
		s.Facings.Set(id, f)
	}
	dest := pos.Add(dx, dy)

	if other := entityAt(s, s.Blocking, dest); other != ecs.NilEntity && other != id {
		return MoveBlocked, ecs.NilEntity
	}
	if !s.Map.IsWalkable(dest.X, dest.Y) {
		return MoveBlocked, ecs.NilEntity
	}

	s.Positions.Set(id, dest)
	if exit := entityAt(s, s.Exits, dest); exit != ecs.NilEntity {
		return MoveExit, exit
	}
	return MoveOK, ecs.NilEntity
}

// entityAt returns the lowest-ID entity in store standing on pos.
func entityAt[C any](s *level.Scene, store *ecs.Store[C], pos component.Position) ecs.EntityID {
	found := ecs.NilEntity
	store.Each(func(id ecs.EntityID, _ C) bool {
		if p, ok := s.Positions.Get(id); ok && p == pos {
			found = id
			return false
		}
		return true
	})
	return found
}
