package ecs

import (
	"fmt"

	"github.com/milk9111/glitchknight/ecs/component"
)

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("ecs: add %s to %s: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// Get returns e's value of the given kind.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	return v, ok
}

// Has reports whether e carries the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return IsAlive(w, e) && w.store(kind.ID(), false).Has(e)
}

// Remove detaches the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

// First returns the first live owner of kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	for _, e := range w.store(kind.ID(), false).Entities() {
		if v, ok := Get(w, e, kind); ok {
			return e, v, true
		}
	}
	return 0, nil, false
}

// snapshot copies the owner list so callbacks may add, remove or destroy.
func snapshot(ents []Entity) []Entity {
	return append([]Entity(nil), ents...)
}

// ForEach calls fn for every live owner of kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if fn == nil {
		return
	}
	for _, e := range snapshot(w.store(kind.ID(), false).Entities()) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every live entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if fn == nil || w == nil {
		return
	}
	for _, e := range IntersectEntities(w.store(ka.ID(), false), w.store(kb.ID(), false)) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 calls fn for every live entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if fn == nil || w == nil {
		return
	}
	for _, e := range IntersectEntities(w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false)) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// ForEach4 calls fn for every live entity carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if fn == nil || w == nil {
		return
	}
	for _, e := range IntersectEntities(w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false), w.store(kd.ID(), false)) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}
