package obj

import (
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

// Dash starts a fixed-speed horizontal dash with gravity suspended.
func (p *Player) Dash() bool {
	if p == nil || p.Body == nil {
		return false
	}
	now := p.now()
	if !p.dashCooldown.Ready(now) || p.dashing.Active() || p.wallSliding || p.parry.Active() || p.knockback.Active(now) {
		return false
	}
	if !p.machine.TryTransition(ActionDash) {
		return false
	}
	p.preempt(ActionDash)

	dir := p.facing
	if common.Abs(p.move.X) > moveDeadZone {
		dir = common.Sign(p.move.X)
	}
	p.dashDir = dir
	p.facing = dir
	p.Body.SetGravityScale(0)
	p.Body.SetVelocity(common.Vec2{X: dir * p.Config.DashSpeed, Y: 0})
	p.dashing.Start(now, p.Config.DashDuration)
	p.emit(component.CueDash)
	return true
}

func (p *Player) updateDash(now time.Duration) {
	if p.dashing.Expired(now) {
		p.finishDash(now)
	}
}

// stopDash ends a dash early, for example when it is interrupted by a hit.
func (p *Player) stopDash() {
	if !p.dashing.Active() {
		return
	}
	p.dashing.Stop()
	p.finishDash(p.now())
}

func (p *Player) finishDash(now time.Duration) {
	if p.Body != nil {
		v := p.Body.Velocity()
		p.Body.SetVelocity(common.Vec2{X: 0, Y: v.Y})
		p.Body.SetGravityScale(p.Config.GravityScale)
	}
	p.dashCooldown.Arm(now, p.Config.DashCooldown)
	if p.machine.Current() == ActionDash {
		p.machine.ForceReset(ActionIdle)
	}
	p.emit(component.CueDashEnd)
}
