package system

import (
	"satchel/assets"
	"satchel/internal/component"
	"satchel/internal/ecs"
	"satchel/internal/level"
)

// CrouchPenalty is how many tiles crouching takes off the view radius.
const CrouchPenalty = 2

// MinViewRadius is the smallest radius UpdateView is ever run with.
const MinViewRadius = 2

// TurnLeft rotates the entity a quarter turn counter-clockwise.
func TurnLeft(s *level.Scene, id ecs.EntityID) component.Facing {
	f, _ := s.Facings.Get(id)
	f = f.Left()
	s.Facings.Set(id, f)
	return f
}

// TurnRight rotates the entity a quarter turn clockwise.
func TurnRight(s *level.Scene, id ecs.EntityID) component.Facing {
	f, _ := s.Facings.Get(id)
	f = f.Right()
	s.Facings.Set(id, f)
	return f
}

// ToggleCrouch switches the entity between standing and crouching and
// swaps its glyph to match. It returns the new stance.
func ToggleCrouch(s *level.Scene, id ecs.EntityID) component.Stance {
	st, _ := s.Stances.Get(id)
	glyph := assets.GlyphPlayer
	if st == component.StanceStanding {
		st = component.StanceCrouching
		glyph = assets.GlyphCrouching
	} else {
		st = component.StanceStanding
	}
	s.Stances.Set(id, st)
	if r, ok := s.Renderables.Get(id); ok {
		r.Glyph = glyph
		s.Renderables.Set(id, r)
	}
	return st
}

// ViewRadius returns the sight radius for a stance given the base radius
// from the quality setting.
func ViewRadius(base int, st component.Stance) int {
	r := base
	if st == component.StanceCrouching {
		r -= CrouchPenalty
	}
	return max(r, MinViewRadius)
}
