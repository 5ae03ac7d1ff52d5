package obj

import (
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

// groundedRise is the vertical speed above which ground contact is ignored,
// so the tick of a jump impulse does not count as grounded.
const groundedRise = 0.01

func (p *Player) updateLocomotion(now time.Duration) {
	if p.Body == nil {
		return
	}
	v := p.Body.Velocity()
	wasGrounded := p.grounded
	p.grounded = p.Sensors != nil && p.Sensors.Grounded() && v.Y <= groundedRise
	if p.grounded && !wasGrounded {
		p.land(now)
	}

	p.updateFacing()
	p.updateWallSlide(now, v)

	switch {
	case p.dashing.Active():
		v = common.Vec2{X: p.dashDir * p.Config.DashSpeed, Y: 0}
	case p.knockback.Active(now), p.wallJumping.Active():
	case p.machine.Current() == ActionGuard, p.healing.Active():
		v.X = 0
	default:
		v.X = p.move.X * p.Config.MoveSpeed
	}

	if !p.dashing.Active() {
		if v.Y > 0 && p.Sensors != nil && p.Sensors.TouchingCeiling() {
			v.Y = 0
		}
		if !p.grounded && !p.wallJumping.Active() && !p.jumpHeld && v.Y > 0 {
			v.Y = 0
		}
		if p.wallSliding && v.Y < -p.Config.WallSlideSpeed {
			v.Y = -p.Config.WallSlideSpeed
		}
		if v.Y < -p.Config.MaxFallSpeed {
			v.Y = -p.Config.MaxFallSpeed
		}
	}
	p.Body.SetVelocity(v)
	p.updateLocomotionState(now, v)
}

func (p *Player) land(now time.Duration) {
	p.canDoubleJump = true
	p.emit(component.CueLand)
	if p.machine.Current().Locomotion() {
		p.landing.Arm(now, p.Config.LandDuration)
	}
}

func (p *Player) updateFacing() {
	if p.machine.IsLocked() || p.wallJumping.Active() {
		return
	}
	switch {
	case p.move.X > moveDeadZone:
		p.facing = 1
	case p.move.X < -moveDeadZone:
		p.facing = -1
	}
}

func (p *Player) updateWallSlide(now time.Duration, v common.Vec2) {
	dir := p.facing
	slide := !p.grounded &&
		v.Y < -p.Config.WallSlideMinFall &&
		p.Sensors != nil && p.Sensors.TouchingWall(dir) &&
		p.move.X*dir > moveDeadZone &&
		p.move.Y >= -0.1 &&
		!p.wallJumping.Active() &&
		!p.wallExit.Active() &&
		!p.dashing.Active()
	if slide {
		if !p.wallSliding {
			p.canDoubleJump = true
			p.emit(component.CueWallSlide)
		}
		p.wallSliding = true
		p.lastWallDir = dir
		p.wallJumpBuffer.Arm(now, p.Config.WallJumpBuffer)
		return
	}
	if p.wallSliding {
		p.wallSliding = false
		p.emit(component.CueWallSlideEnd)
	}
}

// updateLocomotionState recomputes the locomotion-owned state. Actions
// outside that set are left alone.
func (p *Player) updateLocomotionState(now time.Duration, v common.Vec2) {
	cur := p.machine.Current()
	if !cur.Locomotion() {
		return
	}
	var next ActionState
	switch {
	case p.grounded && !p.landing.Ready(now):
		next = ActionLand
	case p.grounded && common.Abs(p.move.X) > moveDeadZone:
		next = ActionRun
	case p.grounded:
		next = ActionIdle
	case p.wallSliding:
		next = ActionWallSlide
	case v.Y > 0 && cur == ActionDoubleJump:
		next = ActionDoubleJump
	case v.Y > 0:
		next = ActionJump
	default:
		next = ActionFall
	}
	if next == cur {
		return
	}
	p.machine.ForceReset(next)
	switch next {
	case ActionRun:
		p.emit(component.CueRunning)
	case ActionFall:
		p.emit(component.CueFalling)
	}
}

// refreshAirborneCue re-announces the airborne phase after an action that
// hid it.
func (p *Player) refreshAirborneCue() {
	if p.grounded || p.Body == nil {
		return
	}
	if p.Body.Velocity().Y > 0 {
		p.emit(component.CueJumping)
	} else {
		p.emit(component.CueFalling)
	}
}

// Jump starts a wall jump, ground jump or double jump, in that order of
// preference. It also marks jump as held for variable jump height.
func (p *Player) Jump() bool {
	if p == nil || p.machine.Dead() {
		return false
	}
	p.jumpHeld = true
	if p.machine.IsLocked() || p.Body == nil {
		return false
	}
	now := p.now()
	if p.wallSliding || !p.wallJumpBuffer.Ready(now) {
		return p.wallJump(now)
	}
	v := p.Body.Velocity()
	if p.grounded {
		if !p.machine.TryTransition(ActionJump) {
			return false
		}
		p.preempt(ActionJump)
		p.Body.SetVelocity(common.Vec2{X: v.X, Y: p.Config.JumpForce})
		p.emit(component.CueJump)
		return true
	}
	if !p.canDoubleJump || !p.machine.TryTransition(ActionDoubleJump) {
		return false
	}
	p.preempt(ActionDoubleJump)
	p.canDoubleJump = false
	p.Body.SetVelocity(common.Vec2{X: v.X, Y: p.Config.JumpForce * p.Config.DoubleJumpFactor})
	p.emit(component.CueDoubleJump)
	return true
}

func (p *Player) wallJump(now time.Duration) bool {
	if !p.machine.TryTransition(ActionWallJump) {
		return false
	}
	p.preempt(ActionWallJump)
	dir := p.lastWallDir
	if dir == 0 {
		dir = p.facing
	}
	f := p.Config.WallJumpForce
	p.Body.SetVelocity(common.Vec2{X: -dir * 0.3 * f, Y: 0.8 * f})
	p.facing = -dir
	if p.wallSliding {
		p.wallSliding = false
		p.emit(component.CueWallSlideEnd)
	}
	p.wallJumpBuffer.Clear()
	p.wallJumping.Start(now, p.Config.WallJumpDuration)
	p.emit(component.CueWallJump)
	return true
}

func (p *Player) updateWallJump(now time.Duration) {
	if p.wallJumping.Expired(now) {
		if p.machine.Current() == ActionWallJump {
			p.machine.ForceReset(ActionIdle)
		}
		p.wallExit.Start(now, p.Config.WallExitGrace)
	}
	p.wallExit.Expired(now)
}
