package obj

import (
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

// Mode selects the active player form.
type Mode int

const (
	ModeNormal Mode = iota
	ModeGlitch
)

func (m Mode) String() string {
	if m == ModeGlitch {
		return "glitch"
	}
	return "normal"
}

// DefaultSwitchCooldown is the wait between form switches.
const DefaultSwitchCooldown = 3 * time.Second

// ModeSwitcher owns the two forms of the player and the economy they share:
// hearts, mana, buffs and cues. Both forms drive the same body, so position
// and velocity carry over on a switch.
type ModeSwitcher struct {
	Clock    component.Clock
	Cooldown time.Duration

	forms [2]*Player
	mode  Mode
	gate  component.Gate
}

// NewModeSwitcher links glitch to the economy of normal and activates normal.
func NewModeSwitcher(normal, glitch *Player, clock component.Clock) *ModeSwitcher {
	if glitch != nil && normal != nil {
		glitch.Hearts = normal.Hearts
		glitch.Mana = normal.Mana
		glitch.Buffs = normal.Buffs
		glitch.Cues = normal.Cues
		glitch.Body = normal.Body
		glitch.Sensors = normal.Sensors
		glitch.Hits = normal.Hits
		glitch.TimeScale = normal.TimeScale
	}
	return &ModeSwitcher{
		Clock:    clock,
		Cooldown: DefaultSwitchCooldown,
		forms:    [2]*Player{normal, glitch},
	}
}

// Active returns the form receiving input.
func (m *ModeSwitcher) Active() *Player {
	if m == nil {
		return nil
	}
	return m.forms[m.mode]
}

// Form returns the player of the given mode.
func (m *ModeSwitcher) Form(mode Mode) *Player {
	if m == nil || mode < ModeNormal || mode > ModeGlitch {
		return nil
	}
	return m.forms[mode]
}

func (m *ModeSwitcher) Mode() Mode {
	if m == nil {
		return ModeNormal
	}
	return m.mode
}

// Mana returns the shared pool.
func (m *ModeSwitcher) Mana() *component.ResourcePool {
	return m.Active().Mana
}

// Hearts returns the shared heart model.
func (m *ModeSwitcher) Hearts() *component.HeartModel {
	return m.Active().Hearts
}

// CooldownRemaining returns the time left before the next switch.
func (m *ModeSwitcher) CooldownRemaining() time.Duration {
	if m == nil {
		return 0
	}
	return m.gate.Remaining(m.now())
}

func (m *ModeSwitcher) now() time.Duration {
	if m.Clock == nil {
		return 0
	}
	return m.Clock.Now()
}

// Handle routes an intent to the active form, or switches on IntentModeSwitch.
func (m *ModeSwitcher) Handle(in Intent) {
	if m == nil {
		return
	}
	if in.Kind == IntentModeSwitch {
		m.Switch()
		return
	}
	m.Active().Handle(in)
}

// Update advances the active form.
func (m *ModeSwitcher) Update() {
	m.Active().Update()
}

// Switch activates the other form. It is refused during the cooldown, while
// the active form is dead, locked in an action or healing.
func (m *ModeSwitcher) Switch() bool {
	if m == nil {
		return false
	}
	cur := m.Active()
	next := m.forms[1-m.mode]
	now := m.now()
	if cur == nil || next == nil || !m.gate.Ready(now) {
		return false
	}
	if cur.machine.Dead() || cur.machine.IsLocked() || cur.healing.Active() {
		return false
	}
	next.adopt(cur)
	m.mode = 1 - m.mode
	m.gate.Arm(now, m.Cooldown)
	next.Cues.Emit(component.Cue{Name: component.CueModeSwitch, Index: int(m.mode)})
	return true
}

// adopt copies the transient locomotion state of the outgoing form.
func (p *Player) adopt(from *Player) {
	p.facing = from.facing
	p.move = from.move
	p.jumpHeld = from.jumpHeld
	p.grounded = from.grounded
	p.canDoubleJump = from.canDoubleJump
	p.wallSliding = from.wallSliding
	p.lastWallDir = from.lastWallDir
	p.wallJumpBuffer = from.wallJumpBuffer
	p.invincible = from.invincible
	p.knockback = from.knockback
	from.wallSliding = false
	from.parry.Close()
	from.guardRegion = false

	state := from.machine.Current()
	if !state.Locomotion() {
		state = ActionIdle
	}
	p.machine.ForceReset(state)
	if p.Body != nil {
		p.Body.SetGravityScale(p.Config.GravityScale)
	}
}

// BindHUD forwards the shared economy's notifications to h.
func (m *ModeSwitcher) BindHUD(h component.HUD) {
	p := m.Active()
	if p == nil || h == nil {
		return
	}
	p.Hearts.OnHealthChanged = h.OnHealthChanged
	p.Hearts.OnBreakMarkersChanged = h.OnBreakMarkersChanged
	p.Mana.OnChange = h.OnManaChanged
}

// Position returns the shared body position.
func (m *ModeSwitcher) Position() common.Vec2 {
	return m.Active().Position()
}

// TakeDamage routes damage to the active form.
func (m *ModeSwitcher) TakeDamage(amount int, attacker any) {
	m.Active().TakeDamage(amount, attacker)
}

// ApplyKnockback routes knockback to the active form.
func (m *ModeSwitcher) ApplyKnockback(source common.Vec2, force float64) {
	m.Active().ApplyKnockback(source, force)
}

func (m *ModeSwitcher) IsAlive() bool {
	return m.Active().IsAlive()
}
