package system

import (
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
)

// EnemySystem runs every opponent's swing cycle and points it at the
// player.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, ctrl, hasPlayer := ecs.First(w, component.ControllerComponent.Kind())
	ecs.ForEach(w, component.EnemyRefComponent.Kind(), func(e ecs.Entity, ref *component.EnemyRef) {
		enemy := ref.Enemy
		if enemy == nil {
			return
		}
		if hasPlayer && ctrl.Switcher != nil {
			enemy.Target = ctrl.Switcher
		}
		enemy.Update()
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Facing = enemy.Facing()
		}
	})
}
