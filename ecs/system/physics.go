package system

import (
	"time"

	"github.com/milk9111/glitchknight/common"
	combat "github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
)

// maxSubstep bounds one Chipmunk step so fast bodies do not tunnel through
// thin geometry after a long frame.
const maxSubstep = time.Second / 120

// PhysicsSystem creates bodies for new colliders, steps the space by the
// scaled time elapsed since its last pass and copies positions back into
// transforms.
type PhysicsSystem struct {
	Clock combat.Clock
	last  time.Duration
	begun bool
}

func NewPhysicsSystem(clock combat.Clock) *PhysicsSystem {
	return &PhysicsSystem{Clock: clock}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	pw.Events = w.Events()

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Collider, t *component.Transform) {
		if pw.Body(e) == nil {
			pw.AddBody(e, vec(t), c.Size, c.Faction)
		}
	})

	now := time.Duration(0)
	if ps.Clock != nil {
		now = ps.Clock.Now()
	}
	if !ps.begun {
		ps.begun = true
		ps.last = now
	}
	elapsed := now - ps.last
	ps.last = now
	for elapsed > 0 {
		step := min(elapsed, maxSubstep)
		pw.Step(step.Seconds())
		elapsed -= step
	}

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Collider, t *component.Transform) {
		if b := pw.Body(e); b != nil {
			p := b.Position()
			t.X, t.Y = p.X, p.Y
		}
	})
}

func vec(t *component.Transform) common.Vec2 {
	return common.Vec2{X: t.X, Y: t.Y}
}
