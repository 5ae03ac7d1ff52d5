package obj

import (
	"testing"
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

func TestJumpAndDoubleJump(t *testing.T) {
	r := newTestRig()
	if !r.p.Jump() {
		t.Fatalf("grounded jump refused")
	}
	if r.body.vel.Y != 15 {
		t.Fatalf("jump vy = %v, want 15", r.body.vel.Y)
	}
	r.sensors.ground = false
	r.advance(frame)
	if r.p.State() != ActionJump {
		t.Fatalf("state = %s, want jump", r.p.State())
	}

	if !r.p.Jump() {
		t.Fatalf("double jump refused")
	}
	if !approx(r.body.vel.Y, 10) {
		t.Fatalf("double jump vy = %v, want 10", r.body.vel.Y)
	}
	if r.p.Jump() {
		t.Fatalf("second double jump should be refused")
	}

	r.body.vel.Y = 0
	r.sensors.ground = true
	r.advance(frame)
	if r.cues.Count(component.CueLand) != 1 {
		t.Fatalf("land cues = %d, want 1", r.cues.Count(component.CueLand))
	}
	r.sensors.ground = false
	r.advance(frame)
	if !r.p.Jump() {
		t.Fatalf("landing should recharge the double jump")
	}
}

func TestJumpCutOnRelease(t *testing.T) {
	r := newTestRig()
	r.p.Jump()
	r.sensors.ground = false
	r.advance(frame)
	if r.body.vel.Y <= 0 {
		t.Fatalf("held jump should keep rising")
	}
	r.p.Handle(Intent{Kind: IntentJumpCancel})
	r.advance(frame)
	if r.body.vel.Y != 0 {
		t.Fatalf("released jump vy = %v, want 0", r.body.vel.Y)
	}
}

func TestCeilingBumpStopsRise(t *testing.T) {
	r := newTestRig()
	r.p.Jump()
	r.sensors.ground = false
	r.sensors.ceiling = true
	r.advance(frame)
	if r.body.vel.Y != 0 {
		t.Fatalf("vy = %v after ceiling contact, want 0", r.body.vel.Y)
	}
}

func TestMaxFallSpeed(t *testing.T) {
	r := newTestRig()
	r.sensors.ground = false
	r.body.vel.Y = -40
	r.advance(frame)
	if r.body.vel.Y != -12 {
		t.Fatalf("vy = %v, want -12", r.body.vel.Y)
	}
}

func wallSlidingRig(t *testing.T) *testRig {
	t.Helper()
	r := newTestRig()
	r.sensors.ground = false
	r.sensors.wallRight = true
	r.body.vel = common.Vec2{X: 0, Y: -2}
	r.p.Handle(Move(1, 0))
	r.advance(frame)
	if !r.p.WallSliding() || r.p.State() != ActionWallSlide {
		t.Fatalf("expected wall slide, state = %s", r.p.State())
	}
	return r
}

func TestWallSlideClampsFall(t *testing.T) {
	r := wallSlidingRig(t)
	if r.body.vel.Y != -1 {
		t.Fatalf("slide vy = %v, want -1", r.body.vel.Y)
	}
	r.p.Handle(Move(1, -1))
	r.advance(frame)
	if r.p.WallSliding() {
		t.Fatalf("pressing down should leave the wall")
	}
	if r.cues.Count(component.CueWallSlideEnd) != 1 {
		t.Fatalf("missing wall slide end cue")
	}
}

func TestWallJumpUsesLastWallSide(t *testing.T) {
	r := wallSlidingRig(t)
	if !r.p.Jump() {
		t.Fatalf("wall jump refused")
	}
	if !approx(r.body.vel.X, -5.4) || !approx(r.body.vel.Y, 14.4) {
		t.Fatalf("wall jump velocity = %+v", r.body.vel)
	}
	if r.p.Facing() != -1 {
		t.Fatalf("facing = %v, want -1", r.p.Facing())
	}

	// Input toward the wall does not overwrite the push-off.
	r.advance(100 * time.Millisecond)
	if !approx(r.body.vel.X, -5.4) {
		t.Fatalf("vx overwritten during wall jump: %v", r.body.vel.X)
	}
	r.advance(200 * time.Millisecond)
	if r.p.State() == ActionWallJump {
		t.Fatalf("wall jump should have completed")
	}
}

func TestWallJumpBufferAfterLeavingWall(t *testing.T) {
	r := wallSlidingRig(t)
	r.sensors.wallRight = false
	r.advance(frame)
	if r.p.WallSliding() {
		t.Fatalf("should have left the wall")
	}
	if !r.p.Jump() || r.p.State() != ActionWallJump {
		t.Fatalf("buffered jump should become a wall jump, state = %s", r.p.State())
	}
}

func TestWallJumpBufferSurvivesLanding(t *testing.T) {
	r := wallSlidingRig(t)
	r.sensors.wallRight = false
	r.sensors.ground = true
	r.advance(frame)
	if !r.p.Grounded() || r.p.WallSliding() {
		t.Fatalf("should have landed off the wall")
	}
	if !r.p.Jump() || r.p.State() != ActionWallJump {
		t.Fatalf("a jump inside the buffer should be a wall jump, state = %s", r.p.State())
	}
	if r.body.vel.X >= 0 {
		t.Fatalf("wall jump should push away from the wall, vx = %v", r.body.vel.X)
	}

	r.advance(time.Second)
	r.body.vel = common.Vec2{}
	r.advance(frame)
	if !r.p.Jump() || r.p.State() != ActionJump {
		t.Fatalf("an expired buffer should leave a ground jump, state = %s", r.p.State())
	}
}

func TestDash(t *testing.T) {
	r := newTestRig()
	if !r.p.Dash() {
		t.Fatalf("dash refused")
	}
	if r.body.vel != (common.Vec2{X: 20, Y: 0}) || r.body.gravity != 0 {
		t.Fatalf("dash vel=%+v gravity=%v", r.body.vel, r.body.gravity)
	}
	r.advance(200 * time.Millisecond)
	if r.p.Dashing() || r.body.vel.X != 0 || r.body.gravity != 3 {
		t.Fatalf("dash not finished: dashing=%v vel=%+v gravity=%v", r.p.Dashing(), r.body.vel, r.body.gravity)
	}
	if r.p.Dash() {
		t.Fatalf("dash should be on cooldown")
	}
	r.advance(500 * time.Millisecond)
	r.p.Handle(Move(-1, 0))
	if !r.p.Dash() || r.body.vel.X != -20 {
		t.Fatalf("dash should follow input, vel=%+v", r.body.vel)
	}
}

func TestDashRefusedDuringKnockback(t *testing.T) {
	r := newTestRig()
	r.p.ApplyKnockback(common.Vec2{X: 1}, 3)
	if r.p.Dash() {
		t.Fatalf("dash admitted while knocked back")
	}
}

func TestKnockbackDirection(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		source float64
		want   float64
	}{
		{"right_of_source", 2, 1, 4},
		{"left_of_source", 0, 1, -4},
		{"tie_breaks_negative", 1, 1, -4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newTestRig()
			r.body.pos.X = c.x
			r.body.vel.Y = -3
			r.p.ApplyKnockback(common.Vec2{X: c.source}, 4)
			if r.body.vel.X != c.want || r.body.vel.Y != -3 {
				t.Fatalf("vel = %+v, want vx %v and vy -3", r.body.vel, c.want)
			}
		})
	}
}

func TestKnockbackOwnsHorizontalVelocity(t *testing.T) {
	r := newTestRig()
	r.body.pos.X = 2
	r.p.ApplyKnockback(common.Vec2{X: 1}, 4)
	r.p.Handle(Move(-1, 0))
	r.advance(100 * time.Millisecond)
	if r.body.vel.X != 4 {
		t.Fatalf("vx = %v during knockback, want 4", r.body.vel.X)
	}
	r.advance(100 * time.Millisecond)
	if r.p.KnockedBack() || r.body.vel.X != -5 {
		t.Fatalf("knockback should expire, vx = %v", r.body.vel.X)
	}
}

func TestHealRestoresLatestLoss(t *testing.T) {
	r := newTestRig()
	r.p.Mana.Set(30)
	r.p.Hearts.ApplyDamage(1)
	if !r.p.StartHeal() {
		t.Fatalf("heal refused")
	}
	r.advance(2 * time.Second)
	if r.p.Healing() {
		t.Fatalf("heal still channeling")
	}
	if r.p.Hearts.Health() != 5 || r.p.Mana.Current() != 0 {
		t.Fatalf("health=%d mana=%d, want 5 and 0", r.p.Hearts.Health(), r.p.Mana.Current())
	}
	if r.p.State() != ActionIdle {
		t.Fatalf("state = %s, want idle", r.p.State())
	}
}

func TestHealAbortsOnMove(t *testing.T) {
	r := newTestRig()
	r.p.Mana.Set(30)
	r.p.Hearts.ApplyDamage(1)
	r.p.StartHeal()
	r.p.Handle(Move(1, 0))
	r.advance(frame)
	if r.p.Healing() {
		t.Fatalf("moving should abort the heal")
	}
	if r.p.Mana.Current() != 30 || r.p.Hearts.Health() != 4 {
		t.Fatalf("aborted heal changed mana=%d health=%d", r.p.Mana.Current(), r.p.Hearts.Health())
	}
	r.p.Handle(Move(0, 0))
	r.advance(frame)
	if r.p.StartHeal() {
		t.Fatalf("heal cooldown should be armed on abort")
	}
}

func TestHealGuards(t *testing.T) {
	cases := []struct {
		name  string
		setup func(r *testRig)
	}{
		{"no_mana", func(r *testRig) { r.p.Mana.Set(20) }},
		{"airborne", func(r *testRig) {
			r.sensors.ground = false
			r.advance(frame)
		}},
		{"moving", func(r *testRig) { r.p.Handle(Move(0.5, 0)) }},
		{"guarding", func(r *testRig) { r.p.StartGuard() }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newTestRig()
			r.p.Mana.Set(30)
			c.setup(r)
			if r.p.StartHeal() {
				t.Fatalf("heal admitted")
			}
		})
	}
}

func TestTakeDamage(t *testing.T) {
	r := newTestRig()
	r.p.TakeDamage(1, nil)
	if r.p.Hearts.Health() != 4 || r.p.State() != ActionHit || !r.p.Invincible() {
		t.Fatalf("health=%d state=%s invincible=%v", r.p.Hearts.Health(), r.p.State(), r.p.Invincible())
	}
	if r.cues.Count(component.CueHit) != 1 {
		t.Fatalf("missing hit cue")
	}
	r.p.TakeDamage(1, nil)
	if r.p.Hearts.Health() != 4 {
		t.Fatalf("damage applied while invincible")
	}
	r.advance(300 * time.Millisecond)
	if r.p.State() != ActionIdle {
		t.Fatalf("state = %s after hit stun, want idle", r.p.State())
	}
	r.advance(200 * time.Millisecond)
	r.p.TakeDamage(1, nil)
	if r.p.Hearts.Health() != 3 {
		t.Fatalf("invincibility should have expired")
	}
}

func TestTakeDamageCancelsHeal(t *testing.T) {
	r := newTestRig()
	r.p.Mana.Set(30)
	r.p.Hearts.ApplyDamage(1)
	r.p.StartHeal()
	r.p.TakeDamage(1, nil)
	if r.p.Healing() || r.p.Mana.Current() != 30 {
		t.Fatalf("heal should be cancelled without charge")
	}
}

func TestLastPointDeath(t *testing.T) {
	r := newTestRig()
	r.p.Hearts.SetMax(1)
	r.p.TakeDamage(1, nil)
	if r.p.Hearts.Health() != 0 || r.p.State() != ActionDeath {
		t.Fatalf("health=%d state=%s", r.p.Hearts.Health(), r.p.State())
	}
	if r.p.Machine().TryTransition(ActionHit) {
		t.Fatalf("transition admitted after death")
	}
	r.p.Handle(Intent{Kind: IntentAttack})
	r.p.Handle(Intent{Kind: IntentJumpStart})
	r.advance(time.Second)
	if r.p.State() != ActionDeath || r.p.Attacking() {
		t.Fatalf("dead player acted: state=%s", r.p.State())
	}
	if r.cues.Count(component.CueDeath) != 1 || r.cues.Count(component.CueHit) != 0 {
		t.Fatalf("cues = %v", r.cues.Names())
	}
}

func heartCues(r *testRig) []component.Cue {
	var out []component.Cue
	for _, c := range r.cues.Cues {
		if c.Name == component.CueHeart {
			out = append(out, c)
		}
	}
	return out
}

func TestHeartCuesFollowTheRow(t *testing.T) {
	r := newTestRig()
	r.p.TakeDamage(1, nil)

	cues := heartCues(r)
	if len(cues) != 1 {
		t.Fatalf("heart cues = %+v, want one", cues)
	}
	if c := cues[0]; c.Index != 4 || c.Heart != component.HeartNone || c.Transition != component.TransitionReduce {
		t.Fatalf("heart cue = %+v, want slot 4 reduced", c)
	}

	r.cues.Reset()
	r.p.Hearts.AddBreak()
	cues = heartCues(r)
	if len(cues) != 1 || cues[0].Index != 3 || cues[0].Heart != component.HeartBreakIdle || cues[0].Transition != component.TransitionBreak {
		t.Fatalf("break cue = %+v, want slot 3 marked", cues)
	}
}

func TestHeartCuesSharedAcrossForms(t *testing.T) {
	m, r := newTestSwitcher()
	m.Handle(Intent{Kind: IntentModeSwitch})
	if m.Mode() != ModeGlitch {
		t.Fatalf("switch refused")
	}
	r.cues.Reset()

	m.Active().Hearts.ApplyDamage(1)
	cues := heartCues(r)
	if len(cues) != 1 || cues[0].Index != 4 {
		t.Fatalf("heart cues from the glitch form = %+v", cues)
	}
}
