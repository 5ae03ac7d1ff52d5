package ecs

import "github.com/milk9111/glitchknight/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, their component stores and the system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s := w.stores[id]
	if s == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity drops every component of e and retires its handle. It
// returns false for a handle that is not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities lists every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then drops undrained events.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
