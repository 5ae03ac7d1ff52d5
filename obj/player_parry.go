package obj

import (
	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

// Outcome is the result of an incoming attack against the guard.
type Outcome int

const (
	OutcomeUnblocked Outcome = iota
	OutcomePerfectParry
	OutcomeGuardBlock
)

func (o Outcome) String() string {
	switch o {
	case OutcomePerfectParry:
		return "perfect_parry"
	case OutcomeGuardBlock:
		return "guard_block"
	default:
		return "unblocked"
	}
}

// StartGuard raises the guard, opening the perfect parry window.
func (p *Player) StartGuard() bool {
	if p == nil || !p.grounded || p.parry.Active() || p.healing.Active() ||
		p.dashing.Active() || p.skillEnd.Active() || p.Invincible() {
		return false
	}
	if !p.machine.TryTransition(ActionGuard) {
		return false
	}
	p.preempt(ActionGuard)
	p.parry.Open(p.unscaled(), p.Config.PerfectWindow)
	p.guardRegion = true
	if p.Body != nil {
		v := p.Body.Velocity()
		p.Body.SetVelocity(common.Vec2{X: 0, Y: v.Y})
	}
	p.emit(component.CueGuardStart)
	return true
}

// ReleaseGuard closes the guard on input release.
func (p *Player) ReleaseGuard() {
	if p == nil || !p.parry.Active() {
		return
	}
	p.closeGuard()
}

func (p *Player) closeGuard() {
	p.parry.Close()
	p.guardRegion = false
	p.emit(component.CueGuardEnd)
	if p.machine.Current() == ActionGuard {
		p.machine.ForceReset(ActionIdle)
	}
}

// ParryPhase returns the guard phase at the current unscaled time.
func (p *Player) ParryPhase() ParryPhase {
	if p == nil {
		return ParryClosed
	}
	return p.parry.Phase(p.unscaled())
}

// Blocked reports whether an attack was guard-blocked since the last Update.
func (p *Player) Blocked() bool {
	return p != nil && p.parry.Blocked()
}

// OnIncomingAttack resolves an opponent strike against the guard as it
// stands now and closes the guard when it caught the strike. Callers apply
// damage and knockback only for OutcomeUnblocked.
func (p *Player) OnIncomingAttack(source component.Positioned) Outcome {
	outcome := p.ResolveIncoming(p.ParryPhase(), source)
	if outcome != OutcomeUnblocked {
		p.FinishGuard()
	}
	return outcome
}

// ResolveIncoming resolves one strike against a guard phase sampled
// earlier, so every strike of a combat pass sees the same guard. The window
// stays open until FinishGuard.
func (p *Player) ResolveIncoming(phase ParryPhase, source component.Positioned) Outcome {
	if p == nil || p.machine.Dead() {
		return OutcomeUnblocked
	}
	switch phase {
	case ParryPerfect:
		p.perfectParry()
		return OutcomePerfectParry
	case ParryGuard:
		p.guardBlock(source)
		return OutcomeGuardBlock
	default:
		p.parry.blocked = false
		return OutcomeUnblocked
	}
}

// FinishGuard closes the guard after it caught one or more strikes. A
// block on the last point kills here.
func (p *Player) FinishGuard() {
	if p == nil || p.machine.Dead() {
		return
	}
	if p.parry.Active() {
		p.closeGuard()
	}
	if !p.Hearts.IsAlive() {
		p.die()
	}
}

func (p *Player) perfectParry() {
	now := p.now()
	p.invincible.Arm(now, p.Config.InvincibilityDuration)
	p.Mana.Gain(p.Config.ParryManaReward)
	p.Hearts.OnParrySuccess()
	p.Buffs.Activate(component.BuffDamageUp, now)
	if p.TimeScale != nil {
		p.TimeScale.SlowMotion(p.Config.ParrySlowScale, p.Config.ParrySlowDuration)
	}
	p.emit(component.CueParrySuccess)
}

func (p *Player) guardBlock(source component.Positioned) {
	now := p.now()
	p.invincible.Arm(now, p.Config.InvincibilityDuration)
	if source != nil {
		p.ApplyKnockback(source.Position(), p.Config.GuardKnockbackForce)
	}
	p.parry.blocked = true
	p.Hearts.BlockDamage()
	if p.TimeScale != nil {
		p.TimeScale.SlowMotion(p.Config.GuardSlowScale, p.Config.GuardSlowDuration)
	}
	p.emit(component.CueGuardBlock)
}
