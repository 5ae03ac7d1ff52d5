package obj

import (
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

// EnemyConfig tunes the training opponent.
type EnemyConfig struct {
	Health     int
	HitDelay   time.Duration
	DeathDelay time.Duration

	ContactDamage    int
	ContactKnockback float64
	Size             common.Vec2

	// AttackInterval of zero disables the timed swing.
	AttackInterval time.Duration
	AttackActive   time.Duration
	AttackDamage   int
	AttackRegion   HitRegion

	KnockbackDuration time.Duration
}

// DefaultEnemyConfig returns the stock dummy.
func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Health:            3,
		HitDelay:          500 * time.Millisecond,
		DeathDelay:        800 * time.Millisecond,
		ContactDamage:     1,
		ContactKnockback:  5,
		Size:              common.Vec2{X: 1, Y: 1},
		AttackInterval:    2 * time.Second,
		AttackActive:      200 * time.Millisecond,
		AttackDamage:      1,
		AttackRegion:      HitRegion{Shape: common.RegionBox, Offset: common.Vec2{X: 0.9, Y: 0}, Size: common.Vec2{X: 1, Y: 0.8}},
		KnockbackDuration: 200 * time.Millisecond,
	}
}

// Strike is one live attack of an enemy against the player.
type Strike struct {
	Region     common.Region
	Activation uint64
	Damage     int
	Knockback  float64
}

// contactSource keys contact strikes apart from swings in a resolver.
type contactSource struct {
	enemy *Enemy
}

// Enemy is a metronome training opponent: it swings on a fixed interval and
// hurts on contact. After a hit it ignores further hits for HitDelay; once
// dead it waits DeathDelay before asking for removal.
type Enemy struct {
	Config EnemyConfig
	Clock  component.Clock
	Body   Body
	// Target, when set, is faced before each swing.
	Target component.Positioned

	health    int
	facing    float64
	hitDelay  component.Gate
	dying     bool
	removal   component.Timer
	removed   bool
	knockback Knockback

	nextSwing  component.Gate
	swing      component.Timer
	activation uint64

	touching bool
	contact  contactSource
	contacts uint64

	OnHit   func(e *Enemy, amount int)
	OnDeath func(e *Enemy)
}

// NewEnemy creates an enemy with full health facing left.
func NewEnemy(cfg EnemyConfig, clock component.Clock, body Body) *Enemy {
	e := &Enemy{
		Config: cfg,
		Clock:  clock,
		Body:   body,
		health: cfg.Health,
		facing: -1,
	}
	e.contact.enemy = e
	e.nextSwing.Arm(e.now(), cfg.AttackInterval)
	return e
}

func (e *Enemy) now() time.Duration {
	if e.Clock == nil {
		return 0
	}
	return e.Clock.Now()
}

func (e *Enemy) Health() int {
	if e == nil {
		return 0
	}
	return e.health
}

func (e *Enemy) Position() common.Vec2 {
	if e == nil || e.Body == nil {
		return common.Vec2{}
	}
	return e.Body.Position()
}

func (e *Enemy) Facing() float64 {
	if e == nil {
		return -1
	}
	return e.facing
}

// IsAlive is false from the killing hit on.
func (e *Enemy) IsAlive() bool {
	return e != nil && !e.dying
}

// Removed reports that the death delay elapsed and the enemy can be
// destroyed.
func (e *Enemy) Removed() bool {
	return e != nil && e.removed
}

// TakeDamage reduces health unless a previous hit is still being processed.
func (e *Enemy) TakeDamage(amount int, attacker any) {
	if e == nil || e.dying || amount <= 0 {
		return
	}
	now := e.now()
	if !e.hitDelay.Ready(now) {
		return
	}
	e.health -= amount
	if e.OnHit != nil {
		e.OnHit(e, amount)
	}
	if e.health <= 0 {
		e.dying = true
		e.swing.Stop()
		e.removal.Start(now, e.Config.DeathDelay)
		if e.OnDeath != nil {
			e.OnDeath(e)
		}
		return
	}
	e.hitDelay.Arm(now, e.Config.HitDelay)
}

// ApplyKnockback shoves the enemy away from source.
func (e *Enemy) ApplyKnockback(source common.Vec2, force float64) {
	if e == nil || e.Body == nil {
		return
	}
	dir := common.Sign(e.Position().X - source.X)
	v := e.Body.Velocity()
	e.Body.SetVelocity(common.Vec2{X: dir * force, Y: v.Y})
	e.knockback.Start(e.now(), e.Config.KnockbackDuration)
}

// Update advances the swing cycle and the removal delay.
func (e *Enemy) Update() {
	if e == nil || e.removed {
		return
	}
	now := e.now()
	if e.dying {
		if e.removal.Expired(now) {
			e.removed = true
		}
		return
	}
	e.knockback.Update(now)
	if e.Body != nil && !e.knockback.Active(now) {
		v := e.Body.Velocity()
		e.Body.SetVelocity(common.Vec2{X: 0, Y: v.Y})
	}
	e.swing.Expired(now)
	if e.Config.AttackInterval > 0 && e.nextSwing.Ready(now) {
		if e.Target != nil {
			e.facing = common.Sign(e.Target.Position().X - e.Position().X)
		}
		e.activation++
		e.swing.Start(now, e.Config.AttackActive)
		e.nextSwing.Arm(now, e.Config.AttackInterval)
	}
}

// AttackHitboxActive reports whether the swing region is live.
func (e *Enemy) AttackHitboxActive() bool {
	return e != nil && !e.dying && e.swing.Active() && !e.swing.Ready(e.now())
}

// AttackRegion returns the swing region in world space.
func (e *Enemy) AttackRegion() common.Region {
	return e.Config.AttackRegion.At(e.Position(), e.facing)
}

// Bounds returns the body box.
func (e *Enemy) Bounds() common.Rect {
	return common.RectAround(e.Position(), e.Config.Size.X, e.Config.Size.Y)
}

// ActiveStrike returns the live swing, if any. Its source key is the enemy.
func (e *Enemy) ActiveStrike() (Strike, bool) {
	if !e.AttackHitboxActive() {
		return Strike{}, false
	}
	return Strike{
		Region:     e.AttackRegion(),
		Activation: e.activation,
		Damage:     e.Config.AttackDamage,
		Knockback:  e.Config.ContactKnockback,
	}, true
}

// Touch reports body contact with the player for this pass. A new strike is
// returned when contact begins.
func (e *Enemy) Touch(touching bool) (Strike, bool) {
	if e == nil {
		return Strike{}, false
	}
	begun := touching && !e.touching && !e.dying
	e.touching = touching
	if !begun {
		return Strike{}, false
	}
	e.contacts++
	return Strike{
		Region:     common.Region{Shape: common.RegionBox, Center: e.Position(), Size: e.Config.Size},
		Activation: e.contacts,
		Damage:     e.Config.ContactDamage,
		Knockback:  e.Config.ContactKnockback,
	}, true
}

// ContactSource is the resolver key of contact strikes.
func (e *Enemy) ContactSource() any {
	if e == nil {
		return nil
	}
	return &e.contact
}

// NextSwing returns the time left before the next swing starts.
func (e *Enemy) NextSwing() time.Duration {
	if e == nil || e.dying || e.Config.AttackInterval <= 0 {
		return 0
	}
	return e.nextSwing.Remaining(e.now())
}
