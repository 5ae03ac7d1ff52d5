package obj

import (
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

const moveDeadZone = 0.01

// Player is one playable form. It admits actions through its ActionMachine
// and advances every multi-tick behavior from Update using deadline gates
// read from Clock.
type Player struct {
	Config  PlayerConfig
	Faction component.Faction

	Clock     component.Clock
	TimeScale component.TimeScaler
	Body      Body
	Sensors   Sensors
	Hits      HitQuery

	Hearts   *component.HeartModel
	Mana     *component.ResourcePool
	Buffs    *component.BuffSet
	Cues     *component.CueEmitter
	Resolver *component.CombatResolver

	machine   ActionMachine
	combo     ComboCursor
	knockback Knockback
	parry     ParryWindow

	facing   float64
	move     common.Vec2
	jumpHeld bool

	grounded      bool
	canDoubleJump bool
	landing       component.Gate

	wallSliding    bool
	lastWallDir    float64
	wallJumpBuffer component.Gate
	wallJumping    component.Timer
	wallExit       component.Timer

	dashing      component.Timer
	dashCooldown component.Gate
	dashDir      float64

	attackDelay      component.Gate
	attackHit        component.Timer
	attackEnd        component.Timer
	attackVariant    AttackVariant
	attackActivation uint64

	skillHit        component.Timer
	skillEnd        component.Timer
	skillActivation uint64

	healing      component.Timer
	healCooldown component.Gate

	invincible  component.Gate
	hitStun     component.Timer
	guardRegion bool
}

// NewPlayer creates a player form with its own hearts, mana and buffs.
// Collaborators may be replaced before the first Update.
func NewPlayer(cfg PlayerConfig, clock component.Clock, body Body, sensors Sensors) *Player {
	p := &Player{
		Config:   cfg,
		Faction:  component.FactionPlayer,
		Clock:    clock,
		Body:     body,
		Sensors:  sensors,
		Hearts:   component.NewHeartModel(5),
		Mana:     component.NewResourcePool(1, component.DefaultManaCellsPerSlot, component.DefaultManaCellSize),
		Buffs:    component.NewDefaultBuffSet(),
		Cues:     &component.CueEmitter{},
		Resolver: component.NewCombatResolver(),
		facing:   1,
	}
	p.Buffs.Cues = p.Cues
	p.Hearts.OnSlotChanged = p.heartChanged
	if body != nil {
		body.SetGravityScale(cfg.GravityScale)
	}
	p.machine.ForceReset(ActionIdle)
	return p
}

// SetDebug toggles state change logging.
func (p *Player) SetDebug(on bool) {
	if p == nil {
		return
	}
	p.machine.Debug = on
}

func (p *Player) now() time.Duration {
	if p.Clock == nil {
		return 0
	}
	return p.Clock.Now()
}

func (p *Player) unscaled() time.Duration {
	if p.Clock == nil {
		return 0
	}
	return p.Clock.Unscaled()
}

func (p *Player) emit(name component.CueName) {
	p.Cues.EmitName(name)
}

// heartChanged reports one slot of the heart row. It reads p.Cues at call
// time so forms that share this model also share the emitter.
func (p *Player) heartChanged(slot int, state component.HeartState, t component.HeartTransition) {
	p.Cues.Emit(component.Cue{Name: component.CueHeart, Index: slot, Heart: state, Transition: t})
}

// Handle applies one input intent. Intents are ignored after death.
func (p *Player) Handle(in Intent) {
	if p == nil || p.machine.Dead() {
		return
	}
	switch in.Kind {
	case IntentMove:
		p.move = common.Vec2{X: common.Clamp(in.X, -1, 1), Y: common.Clamp(in.Y, -1, 1)}
	case IntentJumpStart:
		p.Jump()
	case IntentJumpCancel:
		p.jumpHeld = false
	case IntentAttack:
		p.Attack()
	case IntentSkill:
		p.Skill()
	case IntentDash:
		p.Dash()
	case IntentHealStart:
		p.StartHeal()
	case IntentHealCancel:
		p.CancelHeal()
	case IntentGuardStart:
		p.StartGuard()
	case IntentGuardCancel:
		p.ReleaseGuard()
	}
}

// Update advances every timed behavior and recomputes locomotion. It does
// nothing once the player is dead.
func (p *Player) Update() {
	if p == nil || p.machine.Dead() {
		return
	}
	now := p.now()
	p.parry.blocked = false
	p.Buffs.Update(now)
	p.parry.Update(p.unscaled())
	p.knockback.Update(now)
	if p.hitStun.Expired(now) && p.machine.Current() == ActionHit {
		p.machine.ForceReset(ActionIdle)
	}
	p.updateDash(now)
	p.updateAttack(now)
	p.updateSkill(now)
	p.updateWallJump(now)
	p.updateLocomotion(now)
	p.updateHeal(now)
}

// preempt ends every in-flight action other than keep. Callers have already
// moved the machine, so no completion path resets the state.
func (p *Player) preempt(keep ActionState) {
	if keep != ActionHeal {
		p.stopHeal()
	}
	if keep != ActionAttack {
		p.cancelAttack()
	}
	if keep != ActionSkill {
		p.cancelSkill()
	}
	if keep != ActionDash {
		p.stopDash()
	}
	if keep != ActionGuard && p.parry.Active() {
		p.closeGuard()
	}
}

func (p *Player) State() ActionState {
	if p == nil {
		return ActionNone
	}
	return p.machine.Current()
}

// Machine exposes the action machine.
func (p *Player) Machine() *ActionMachine {
	if p == nil {
		return nil
	}
	return &p.machine
}

func (p *Player) Position() common.Vec2 {
	if p == nil || p.Body == nil {
		return common.Vec2{}
	}
	return p.Body.Position()
}

// Facing is 1 when facing right and -1 when facing left.
func (p *Player) Facing() float64 {
	if p == nil {
		return 1
	}
	return p.facing
}

func (p *Player) IsAlive() bool {
	return p != nil && !p.machine.Dead() && p.Hearts.IsAlive()
}

func (p *Player) Grounded() bool    { return p != nil && p.grounded }
func (p *Player) WallSliding() bool { return p != nil && p.wallSliding }
func (p *Player) Dashing() bool     { return p != nil && p.dashing.Active() }
func (p *Player) Healing() bool     { return p != nil && p.healing.Active() }
func (p *Player) UsingSkill() bool  { return p != nil && p.skillEnd.Active() }
func (p *Player) Attacking() bool   { return p != nil && p.attackEnd.Active() }
func (p *Player) GuardActive() bool { return p != nil && p.guardRegion }

// Invincible reports whether damage is currently ignored.
func (p *Player) Invincible() bool {
	return p != nil && !p.invincible.Ready(p.now())
}

// KnockedBack reports whether a knockback is steering the body.
func (p *Player) KnockedBack() bool {
	return p != nil && p.knockback.Active(p.now())
}

// Combo returns the step the next forward attack will use.
func (p *Player) Combo() int {
	if p == nil {
		return 1
	}
	return p.combo.Peek(p.now(), p.Config.ComboReset)
}
