package system

import (
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
	"github.com/milk9111/glitchknight/obj"
)

// PlayerSystem advances the active form of every controller using the
// contacts sampled after the previous physics step.
type PlayerSystem struct {
	modes map[ecs.Entity]obj.Mode
}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{modes: make(map[ecs.Entity]obj.Mode)}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.ControllerComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller) {
		sw := ctrl.Switcher
		if sw == nil {
			return
		}
		sw.Update()
		if mode := sw.Mode(); mode != s.modes[e] {
			s.modes[e] = mode
			w.Events().Push(ecs.Event{Type: ecs.EventModeSwitch, Data: mode})
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Facing = sw.Active().Facing()
		}
	})
}
