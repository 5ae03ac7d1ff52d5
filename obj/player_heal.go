package obj

import (
	"time"

	"github.com/milk9111/glitchknight/component"
)

// StartHeal begins channeling a heal. The player must stand still on the
// ground with enough mana for the full cost.
func (p *Player) StartHeal() bool {
	if p == nil {
		return false
	}
	now := p.now()
	if p.healing.Active() || !p.grounded || p.move.LengthSq() > moveDeadZone ||
		!p.healCooldown.Ready(now) || p.parry.Active() || p.Mana.Current() < p.Config.HealCost {
		return false
	}
	if !p.machine.TryTransition(ActionHeal) {
		return false
	}
	p.preempt(ActionHeal)
	p.healing.Start(now, p.Config.HealDuration)
	p.emit(component.CueHeal)
	return true
}

// CancelHeal aborts an active channel.
func (p *Player) CancelHeal() {
	if p == nil {
		return
	}
	p.stopHeal()
}

func (p *Player) updateHeal(now time.Duration) {
	if !p.healing.Active() {
		return
	}
	if !p.grounded || p.move.LengthSq() > moveDeadZone {
		p.stopHeal()
		return
	}
	if p.healing.Expired(now) {
		if p.Mana.Spend(p.Config.HealCost) {
			p.Hearts.HealLatestNormal()
		}
		p.endHeal(now)
	}
}

func (p *Player) stopHeal() {
	if !p.healing.Active() {
		return
	}
	p.healing.Stop()
	p.endHeal(p.now())
}

// endHeal runs on every way out of a channel.
func (p *Player) endHeal(now time.Duration) {
	p.healCooldown.Arm(now, p.Config.HealCooldown)
	if p.machine.Current() == ActionHeal {
		p.machine.ForceReset(ActionIdle)
	}
	p.emit(component.CueHealStop)
}
