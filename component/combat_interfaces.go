package component

import "github.com/milk9111/glitchknight/common"

// Positioned exposes a world position.
type Positioned interface {
	Position() common.Vec2
}

// Damageable is anything an attack may damage. attacker is the striking
// object and may be nil.
type Damageable interface {
	TakeDamage(amount int, attacker any)
}

// Knockbackable accepts a horizontal shove away from source.
type Knockbackable interface {
	ApplyKnockback(source common.Vec2, force float64)
}

// AttackSource reports whether its attack region is currently live.
type AttackSource interface {
	AttackHitboxActive() bool
}

// Target is an opponent a player attack can land on.
type Target interface {
	Positioned
	Damageable
	IsAlive() bool
}

// HUD receives resource and health updates for display.
type HUD interface {
	OnHealthChanged(count int)
	OnManaChanged(current int)
	OnBreakMarkersChanged(slots []int)
}
