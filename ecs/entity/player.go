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

// NewPlayerAt builds both player forms from spec on one physics body at
// pos. The arena must already be attached.
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, clock *combat.SimClock, pos common.Vec2) (ecs.Entity, *obj.ModeSwitcher, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, nil, fmt.Errorf("player: no physics world")
	}
	normalForm, err := spec.NormalForm()
	if err != nil {
		return 0, nil, err
	}
	glitchForm, err := spec.GlitchForm()
	if err != nil {
		return 0, nil, err
	}
	normalCfg, err := PlayerConfig(normalForm)
	if err != nil {
		return 0, nil, fmt.Errorf("player: normal: %w", err)
	}
	glitchCfg, err := PlayerConfig(glitchForm)
	if err != nil {
		return 0, nil, fmt.Errorf("player: glitch: %w", err)
	}

	size := common.Vec2{X: spec.Size.X, Y: spec.Size.Y}
	if size.X <= 0 || size.Y <= 0 {
		size = common.Vec2{X: 0.8, Y: 1.6}
	}

	e := ecs.CreateEntity(w)
	body := pw.AddBody(e, pos, size, combat.FactionPlayer)

	normal := obj.NewPlayer(normalCfg, clock, body, body)
	normal.Hits = pw
	normal.TimeScale = clock
	if spec.Hearts > 0 {
		normal.Hearts.SetMax(spec.Hearts)
	}
	normal.Mana = combat.NewResourcePool(spec.Mana.Slots, spec.Mana.CellsPerSlot, spec.Mana.CellSize)
	if spec.DamageUp.Duration > 0 {
		normal.Buffs.Register(&combat.Buff{
			Type:        combat.BuffDamageUp,
			Duration:    spec.DamageUp.Duration.Duration(),
			Multipliers: spec.DamageUp.Multipliers,
		})
	}
	glitch := obj.NewPlayer(glitchCfg, clock, body, body)

	sw := obj.NewModeSwitcher(normal, glitch, clock)
	if spec.SwitchCooldown > 0 {
		sw.Cooldown = spec.SwitchCooldown.Duration()
	}
	body.Target = sw

	forward := func(evt combat.CombatEvent) {
		w.Events().Push(ecs.Event{Type: ecs.EventCombat, Data: evt})
	}
	normal.Resolver.Emitter = &combat.CombatEventEmitter{}
	normal.Resolver.Emitter.Subscribe(forward)
	glitch.Resolver.Emitter = &combat.CombatEventEmitter{}
	glitch.Resolver.Emitter.Subscribe(forward)

	adds := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Facing: 1}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Size: size, Faction: combat.FactionPlayer}),
		ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{Switcher: sw}),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Queue: obj.NewInput()}),
	}
	for _, err := range adds {
		if err != nil {
			return 0, nil, fmt.Errorf("player: %w", err)
		}
	}
	return e, sw, nil
}
