package obj

import (
	"time"

	"github.com/milk9111/glitchknight/component"
)

// Skill starts the single-flight skill strike.
func (p *Player) Skill() bool {
	if p == nil || p.skillEnd.Active() || p.parry.Active() {
		return false
	}
	if !p.machine.TryTransition(ActionSkill) {
		return false
	}
	p.preempt(ActionSkill)
	now := p.now()
	p.skillActivation = p.Resolver.Begin(p)
	p.skillHit.Start(now, p.Config.SkillHitDelay)
	p.skillEnd.Start(now, p.Config.SkillDuration)
	p.emit(component.CueSkill)
	return true
}

func (p *Player) updateSkill(now time.Duration) {
	if p.skillHit.Expired(now) {
		p.strike(p.Config.SkillRegion, p.Config.SkillDamage, p.skillActivation)
	}
	if p.skillEnd.Expired(now) {
		if p.machine.Current() == ActionSkill {
			p.machine.ForceReset(ActionIdle)
		}
		p.emit(component.CueSkillEnd)
	}
}

func (p *Player) cancelSkill() {
	if !p.skillEnd.Active() {
		return
	}
	p.skillHit.Stop()
	p.skillEnd.Stop()
	p.emit(component.CueSkillEnd)
}
