package obj

import (
	"log"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

// TakeDamage applies an unblocked hit. It is ignored while invincible or
// dead. Any heal, guard, dash or pending swing is interrupted.
func (p *Player) TakeDamage(amount int, attacker any) {
	if p == nil || p.machine.Dead() || amount <= 0 || p.Invincible() {
		return
	}
	now := p.now()
	p.stopHeal()
	if p.parry.Active() {
		p.closeGuard()
	}
	p.cancelAttack()
	p.cancelSkill()
	p.stopDash()
	p.invincible.Arm(now, p.Config.InvincibilityDuration)
	p.Hearts.ApplyDamage(amount)

	if !p.Hearts.IsAlive() {
		p.die()
		return
	}
	p.emit(component.CueHit)
	if p.machine.TryTransition(ActionHit) {
		p.hitStun.Start(now, p.Config.HitStunDuration)
	}
}

// ApplyKnockback shoves the player horizontally away from source. Equal
// positions push toward negative x.
func (p *Player) ApplyKnockback(source common.Vec2, force float64) {
	if p == nil || p.machine.Dead() || p.Body == nil {
		return
	}
	dir := common.Sign(p.Position().X - source.X)
	v := p.Body.Velocity()
	p.Body.SetVelocity(common.Vec2{X: dir * force, Y: v.Y})
	p.knockback.Start(p.now(), p.Config.KnockbackDuration)
}

func (p *Player) die() {
	p.stopHeal()
	p.cancelAttack()
	p.cancelSkill()
	p.stopDash()
	p.hitStun.Stop()
	p.wallJumping.Stop()
	p.wallSliding = false
	p.guardRegion = false
	p.parry.Close()
	p.machine.ForceReset(ActionDeath)
	if p.Body != nil {
		v := p.Body.Velocity()
		p.Body.SetVelocity(common.Vec2{X: 0, Y: v.Y})
	}
	p.emit(component.CueDeath)
	if p.machine.Debug {
		log.Printf("player: died after %d parries", p.Hearts.Parries())
	}
}
