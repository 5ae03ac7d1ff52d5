package system

import (
	"log"

	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
)

// CleanupSystem destroys opponents whose death delay has elapsed and
// releases their bodies.
type CleanupSystem struct {
	OnRemove func(e ecs.Entity)
}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (s *CleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.EnemyRefComponent.Kind(), func(e ecs.Entity, ref *component.EnemyRef) {
		if ref.Enemy == nil || !ref.Enemy.Removed() {
			return
		}
		w.PhysicsWorld().RemoveBody(e)
		ecs.DestroyEntity(w, e)
		log.Printf("cleanup: removed enemy %s", e)
		if s != nil && s.OnRemove != nil {
			s.OnRemove(e)
		}
	})
}
