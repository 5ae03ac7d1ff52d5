package entity

import (
	"fmt"

	"github.com/milk9111/glitchknight/common"
	combat "github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
	"github.com/milk9111/glitchknight/obj"
	"github.com/milk9111/glitchknight/prefabs"
)

// NewEnemyAt builds a training opponent at pos.
func NewEnemyAt(w *ecs.World, spec prefabs.EnemySpec, clock combat.Clock, pos common.Vec2) (ecs.Entity, *obj.Enemy, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, nil, fmt.Errorf("enemy: no physics world")
	}
	cfg, err := EnemyConfig(spec)
	if err != nil {
		return 0, nil, err
	}
	if cfg.Size.X <= 0 || cfg.Size.Y <= 0 {
		cfg.Size = common.Vec2{X: 1, Y: 1}
	}

	e := ecs.CreateEntity(w)
	body := pw.AddBody(e, pos, cfg.Size, combat.FactionEnemy)
	enemy := obj.NewEnemy(cfg, clock, body)
	body.Target = enemy

	adds := []error{
		ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Facing: -1}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Size: cfg.Size, Faction: combat.FactionEnemy}),
		ecs.Add(w, e, component.EnemyRefComponent.Kind(), &component.EnemyRef{Enemy: enemy}),
	}
	for _, err := range adds {
		if err != nil {
			return 0, nil, fmt.Errorf("enemy: %w", err)
		}
	}
	return e, enemy, nil
}
