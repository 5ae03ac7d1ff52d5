package component

import "github.com/milk9111/glitchknight/common"

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
	FactionEnvironment
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	case FactionEnvironment:
		return "environment"
	default:
		return "neutral"
	}
}

// CanHit reports whether an attack from f may land on target.
func (f Faction) CanHit(target Faction) bool {
	if f == FactionNeutral || target == FactionNeutral {
		return true
	}
	return f != target
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit        CombatEventType = "hit"
	EventParry      CombatEventType = "parry"
	EventGuardBlock CombatEventType = "guard_block"
	EventUnblocked  CombatEventType = "unblocked"
	EventDeath      CombatEventType = "death"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type       CombatEventType
	Attacker   any
	Target     any
	Damage     int
	Activation uint64
	Pos        common.Vec2
	Knockback  float64
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter allows components to emit combat events.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe registers a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// Damage describes one strike.
type Damage struct {
	Amount    int
	Knockback float64
	Faction   Faction
}
