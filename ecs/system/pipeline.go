package system

import (
	combat "github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
)

// Pipeline is the fixed tick order: input, player, enemy, physics, combat,
// cleanup, then event dispatch.
type Pipeline struct {
	Input   *InputSystem
	Player  *PlayerSystem
	Enemy   *EnemySystem
	Physics *PhysicsSystem
	Combat  *CombatSystem
	Cleanup *CleanupSystem
	Events  *EventSystem
}

// Install adds the pipeline to w.
func Install(w *ecs.World, clock combat.Clock) *Pipeline {
	p := &Pipeline{
		Input:   NewInputSystem(),
		Player:  NewPlayerSystem(),
		Enemy:   NewEnemySystem(),
		Physics: NewPhysicsSystem(clock),
		Combat:  NewCombatSystem(),
		Cleanup: NewCleanupSystem(),
		Events:  NewEventSystem(),
	}
	w.AddSystem(p.Input)
	w.AddSystem(p.Player)
	w.AddSystem(p.Enemy)
	w.AddSystem(p.Physics)
	w.AddSystem(p.Combat)
	w.AddSystem(p.Cleanup)
	w.AddSystem(p.Events)
	return p
}
