package ecs

import "slices"

// EntityID names an entity within one World. IDs are never reused.
type EntityID uint64

// NilEntity is returned where no entity applies.
const NilEntity EntityID = 0

// remover is implemented by every Store so the World can strip a destroyed
// entity from all of them.
type remover interface {
	Remove(id EntityID)
}

// World mints entity IDs for one scene and tracks which are alive.
// Component data lives in typed Stores attached to the World.
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	stores []remover
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity marks the entity dead and removes it from every store.
func (w *World) DestroyEntity(id EntityID) {
	if _, ok := w.alive[id]; !ok {
		return
	}
	delete(w.alive, id)
	for _, s := range w.stores {
		s.Remove(id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.alive) }

// Store holds one component type for the entities of a World.
type Store[C any] struct {
	w    *World
	data map[EntityID]C
}

// NewStore creates a Store attached to w.
func NewStore[C any](w *World) *Store[C] {
	s := &Store[C]{w: w, data: make(map[EntityID]C)}
	w.stores = append(w.stores, s)
	return s
}

// Set attaches or replaces the component for a live entity.
// Setting a component on a dead entity is ignored.
func (s *Store[C]) Set(id EntityID, c C) {
	if !s.w.Alive(id) {
		return
	}
	s.data[id] = c
}

// Get returns the component for id.
func (s *Store[C]) Get(id EntityID) (C, bool) {
	c, ok := s.data[id]
	return c, ok
}

// Has reports whether id has this component.
func (s *Store[C]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

// Remove detaches the component from id. Removing a missing one is a no-op.
func (s *Store[C]) Remove(id EntityID) {
	delete(s.data, id)
}

// Len returns the number of entities holding this component.
func (s *Store[C]) Len() int { return len(s.data) }

// IDs returns the entities holding this component in ascending order.
func (s *Store[C]) IDs() []EntityID {
	ids := make([]EntityID, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Each calls fn for every entity holding this component, in ascending ID
// order, stopping early when fn returns false.
func (s *Store[C]) Each(fn func(id EntityID, c C) bool) {
	for _, id := range s.IDs() {
		if !fn(id, s.data[id]) {
			return
		}
	}
}
