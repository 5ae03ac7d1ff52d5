package system

import (
	"log"

	"github.com/milk9111/glitchknight/common"
	combat "github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
	"github.com/milk9111/glitchknight/obj"
)

// hazardSource keys hazard strikes in the resolver.
type hazardSource struct {
	arena ecs.Entity
}

// CombatSystem resolves opponent strikes against the player after physics.
// Player attacks resolve inside the player's own update through its hit
// query; this pass handles the defender side: enemy swings, body contact
// and arena hazards. Each strike activation lands at most once.
type CombatSystem struct {
	Resolver *combat.CombatResolver
	Debug    bool

	hazards    map[ecs.Entity]uint64
	hazardKeys map[ecs.Entity]*hazardSource
}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{
		Resolver:   combat.NewCombatResolver(),
		hazards:    make(map[ecs.Entity]uint64),
		hazardKeys: make(map[ecs.Entity]*hazardSource),
	}
}

// defense is the player's state captured at the start of a pass. Every
// strike of the pass is resolved against this guard and invincibility.
type defense struct {
	entity     ecs.Entity
	switcher   *obj.ModeSwitcher
	bounds     common.Rect
	invincible bool
	phase      obj.ParryPhase

	caught any
	dead   bool
}

func (d *defense) player() *obj.Player {
	return d.switcher.Active()
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if s.Resolver == nil {
		s.Resolver = combat.NewCombatResolver()
	}
	if s.hazards == nil {
		s.hazards = make(map[ecs.Entity]uint64)
		s.hazardKeys = make(map[ecs.Entity]*hazardSource)
	}
	pe, ctrl, ok := ecs.First(w, component.ControllerComponent.Kind())
	if !ok || ctrl.Switcher == nil || !ctrl.Switcher.IsAlive() {
		s.drainHazards(w, nil)
		s.Resolver.Tick()
		return
	}
	d := &defense{
		entity:     pe,
		switcher:   ctrl.Switcher,
		invincible: ctrl.Switcher.Active().Invincible(),
		phase:      ctrl.Switcher.Active().ParryPhase(),
	}
	d.bounds = s.playerBounds(w, d)

	ecs.ForEach(w, component.EnemyRefComponent.Kind(), func(e ecs.Entity, ref *component.EnemyRef) {
		enemy := ref.Enemy
		if enemy == nil || !enemy.IsAlive() {
			if enemy != nil {
				enemy.Touch(false)
			}
			return
		}
		if strike, ok := enemy.ActiveStrike(); ok && strike.Region.Overlaps(d.bounds) {
			if s.Resolver.Claim(enemy, strike.Activation, d.switcher) {
				s.resolve(w, d, enemy, enemy, strike)
			}
		}
		bounds := enemy.Bounds()
		if strike, begun := enemy.Touch(bounds.Intersects(&d.bounds)); begun {
			if s.Resolver.Claim(enemy.ContactSource(), strike.Activation, d.switcher) {
				s.resolve(w, d, enemy, enemy.ContactSource(), strike)
			}
		}
	})
	if d.caught != nil {
		d.player().FinishGuard()
		s.reportDeath(w, d, d.caught)
	}

	s.drainHazards(w, d)
	s.Resolver.Tick()
}

func (s *CombatSystem) playerBounds(w *ecs.World, d *defense) common.Rect {
	size := common.Vec2{X: 1, Y: 1}
	if c, ok := ecs.Get(w, d.entity, component.ColliderComponent.Kind()); ok {
		size = c.Size
	}
	return common.RectAround(d.switcher.Position(), size.X, size.Y)
}

// resolve runs one strike through the guard. Only an unblocked strike
// deals damage and knockback; invincibility at the start of the pass or
// granted earlier in it suppresses the knockback too.
func (s *CombatSystem) resolve(w *ecs.World, d *defense, enemy *obj.Enemy, key any, strike obj.Strike) {
	p := d.player()
	outcome := p.ResolveIncoming(d.phase, enemy)
	evt := combat.CombatEvent{
		Attacker:   enemy,
		Target:     d.switcher,
		Activation: strike.Activation,
		Pos:        p.Position(),
	}
	switch outcome {
	case obj.OutcomePerfectParry:
		evt.Type = combat.EventParry
		d.caught = enemy
	case obj.OutcomeGuardBlock:
		evt.Type = combat.EventGuardBlock
		d.caught = enemy
	default:
		evt.Type = combat.EventUnblocked
		evt.Damage = strike.Damage
		evt.Knockback = strike.Knockback
		if !d.invincible && !p.Invincible() {
			p.ApplyKnockback(enemy.Position(), strike.Knockback)
			p.TakeDamage(strike.Damage, enemy)
		} else {
			evt.Damage = 0
		}
	}
	s.emit(w, evt)
	if s.Debug {
		log.Printf("combat: strike %d at %v -> %s", strike.Activation, enemy.Position(), outcome)
	}
	s.reportDeath(w, d, enemy)
}

// reportDeath emits the death event once per pass.
func (s *CombatSystem) reportDeath(w *ecs.World, d *defense, attacker any) {
	p := d.player()
	if d.dead || p.IsAlive() {
		return
	}
	d.dead = true
	s.emit(w, combat.CombatEvent{Type: combat.EventDeath, Attacker: attacker, Target: d.switcher, Pos: p.Position()})
}

// drainHazards applies arena hazard damage on entry, pushing the player
// away from the hazard it touched. Hazards ignore the guard. Events for
// other entities are put back.
func (s *CombatSystem) drainHazards(w *ecs.World, d *defense) {
	events := w.Events().Drain()
	ae, hazard, hasHazard := ecs.First(w, component.HazardComponent.Kind())
	for _, evt := range events {
		ce, ok := evt.Data.(ecs.CollisionEvent)
		if evt.Type != ecs.EventCollision || !ok || ce.Kind != ecs.CollisionEventHazardEnter || d == nil || ce.Entity != d.entity || !hasHazard {
			w.Events().Push(evt)
			continue
		}
		s.hazards[ae]++
		key := s.hazardKeys[ae]
		if key == nil {
			key = &hazardSource{arena: ae}
			s.hazardKeys[ae] = key
		}
		if !s.Resolver.Claim(key, s.hazards[ae], d.switcher) {
			continue
		}
		p := d.player()
		pos := p.Position()
		hit := combat.CombatEvent{
			Type:       combat.EventUnblocked,
			Attacker:   key,
			Target:     d.switcher,
			Activation: s.hazards[ae],
			Pos:        pos,
		}
		if !d.invincible && !p.Invincible() {
			p.ApplyKnockback(ce.Source, hazard.Knockback)
			p.TakeDamage(hazard.Damage, key)
			hit.Damage = hazard.Damage
			hit.Knockback = hazard.Knockback
		}
		s.emit(w, hit)
		s.reportDeath(w, d, key)
	}
}

func (s *CombatSystem) emit(w *ecs.World, evt combat.CombatEvent) {
	s.Resolver.Emitter.Emit(evt)
	w.Events().Push(ecs.Event{Type: ecs.EventCombat, Data: evt})
}
