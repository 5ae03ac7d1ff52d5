package system

import (
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
)

// InputSystem forwards buffered intents to each controller in arrival order.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.InputComponent.Kind(), component.ControllerComponent.Kind(), func(e ecs.Entity, in *component.Input, ctrl *component.Controller) {
		if ctrl.Switcher == nil {
			return
		}
		for _, intent := range in.Queue.Drain() {
			ctrl.Switcher.Handle(intent)
		}
	})
}
