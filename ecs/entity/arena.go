package entity

import (
	"fmt"

	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
	"github.com/milk9111/glitchknight/obj"
	"github.com/milk9111/glitchknight/prefabs"
)

// NewArena parses the layout, attaches a physics world built from it and
// creates the arena entity that carries the hazard tuning.
func NewArena(w *ecs.World, spec prefabs.ArenaSpec) (ecs.Entity, *obj.Arena, error) {
	layout, err := obj.ParseArena(spec.Layout)
	if err != nil {
		return 0, nil, fmt.Errorf("arena %s: %w", spec.Name, err)
	}
	gravity := spec.Gravity
	if gravity == 0 {
		gravity = ecs.DefaultGravity
	}
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(layout, gravity))

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ArenaComponent.Kind(), &component.Arena{Layout: layout}); err != nil {
		return 0, nil, fmt.Errorf("arena: add layout: %w", err)
	}
	hazard := &component.Hazard{Damage: spec.Hazard.Damage, Knockback: spec.Hazard.Knockback}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), hazard); err != nil {
		return 0, nil, fmt.Errorf("arena: add hazard: %w", err)
	}
	return e, layout, nil
}
