package obj

import (
	"testing"
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

func TestParryTiming(t *testing.T) {
	attacker := source{pos: common.Vec2{X: 1}}
	cases := []struct {
		name  string
		guard bool
		wait  time.Duration
		want  Outcome
	}{
		{"perfect_early", true, 0, OutcomePerfectParry},
		{"perfect_late", true, 190 * time.Millisecond, OutcomePerfectParry},
		{"guard_at_boundary", true, 200 * time.Millisecond, OutcomeGuardBlock},
		{"guard_held_long", true, 2 * time.Second, OutcomeGuardBlock},
		{"no_guard", false, 0, OutcomeUnblocked},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newTestRig()
			if c.guard && !r.p.StartGuard() {
				t.Fatalf("guard refused")
			}
			r.advance(c.wait)
			if got := r.p.OnIncomingAttack(attacker); got != c.want {
				t.Fatalf("outcome = %s, want %s", got, c.want)
			}
			if r.p.ParryPhase() != ParryClosed || r.p.GuardActive() {
				t.Fatalf("window should be closed after the event")
			}
			if r.p.State() != ActionIdle {
				t.Fatalf("state = %s, want idle", r.p.State())
			}
		})
	}
}

func TestGlitchFormSharesPerfectWindow(t *testing.T) {
	r := newTestRig()
	r.p.Config = GlitchPlayerConfig()
	if !r.p.StartGuard() {
		t.Fatalf("guard refused")
	}
	r.advance(170 * time.Millisecond)
	if got := r.p.OnIncomingAttack(source{}); got != OutcomePerfectParry {
		t.Fatalf("outcome = %s at 170ms in glitch form, want perfect_parry", got)
	}
}

func TestPerfectParryRewards(t *testing.T) {
	r := newTestRig()
	r.p.StartGuard()
	r.p.OnIncomingAttack(source{})
	if !r.p.Invincible() {
		t.Fatalf("perfect parry should grant invincibility")
	}
	if r.p.Mana.Current() != 10 {
		t.Fatalf("mana = %d, want 10", r.p.Mana.Current())
	}
	if r.p.Hearts.Parries() != 1 || r.p.Hearts.Health() != 5 {
		t.Fatalf("parries=%d health=%d", r.p.Hearts.Parries(), r.p.Hearts.Health())
	}
	if r.p.Buffs.Get(component.BuffDamageUp).Level() != 1 {
		t.Fatalf("damage buff not raised")
	}
	if r.clock.Scale() != r.p.Config.ParrySlowScale {
		t.Fatalf("scale = %v, want parry slow motion", r.clock.Scale())
	}
	names := r.cues.Names()
	if r.cues.Count(component.CueParrySuccess) != 1 || names[len(names)-1] != component.CueGuardEnd {
		t.Fatalf("cues = %v", names)
	}
}

func TestGuardBlockChipsBreakLayer(t *testing.T) {
	r := newTestRig()
	r.p.StartGuard()
	r.advance(250 * time.Millisecond)
	got := r.p.OnIncomingAttack(source{pos: common.Vec2{X: 1}})
	if got != OutcomeGuardBlock {
		t.Fatalf("outcome = %s", got)
	}
	if r.p.Hearts.BreakCount() != 1 || r.p.Hearts.Health() != 5 {
		t.Fatalf("breaks=%d health=%d", r.p.Hearts.BreakCount(), r.p.Hearts.Health())
	}
	if r.body.vel.X != -r.p.Config.GuardKnockbackForce {
		t.Fatalf("vx = %v, want push away from attacker", r.body.vel.X)
	}
	if !r.p.Blocked() {
		t.Fatalf("blocked latch should be set for this frame")
	}
	r.advance(frame)
	if r.p.Blocked() {
		t.Fatalf("blocked latch should clear on the next update")
	}
}

func TestPerfectWindowIgnoresSlowMotion(t *testing.T) {
	r := newTestRig()
	r.clock.SlowMotion(0.1, 5*time.Second)
	r.p.StartGuard()
	r.advance(150 * time.Millisecond)
	if r.p.ParryPhase() != ParryPerfect {
		t.Fatalf("phase = %s at 150ms unscaled", r.p.ParryPhase())
	}
	r.advance(60 * time.Millisecond)
	if r.p.ParryPhase() != ParryGuard {
		t.Fatalf("phase = %s at 210ms unscaled", r.p.ParryPhase())
	}
}

func TestGuardReleaseReturnsToIdle(t *testing.T) {
	r := newTestRig()
	r.p.Handle(Intent{Kind: IntentGuardStart})
	if r.p.State() != ActionGuard || !r.p.GuardActive() {
		t.Fatalf("guard not raised")
	}
	r.p.Handle(Intent{Kind: IntentGuardCancel})
	if r.p.State() != ActionIdle || r.p.GuardActive() {
		t.Fatalf("guard not released, state = %s", r.p.State())
	}
	if r.p.OnIncomingAttack(source{}) != OutcomeUnblocked {
		t.Fatalf("released guard should not block")
	}
}

func TestGuardEntryGuards(t *testing.T) {
	cases := []struct {
		name  string
		setup func(r *testRig)
	}{
		{"airborne", func(r *testRig) {
			r.sensors.ground = false
			r.advance(frame)
		}},
		{"invincible", func(r *testRig) { r.p.TakeDamage(1, nil) }},
		{"dashing", func(r *testRig) { r.p.Dash() }},
		{"already_guarding", func(r *testRig) { r.p.StartGuard() }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newTestRig()
			c.setup(r)
			if r.p.StartGuard() {
				t.Fatalf("guard admitted")
			}
		})
	}
}

func TestAttackRefusedWhileGuarding(t *testing.T) {
	r := newTestRig()
	r.p.StartGuard()
	if r.p.Attack() {
		t.Fatalf("attack admitted while parrying")
	}
}

func TestGuardBlockOnLastShieldedPointKills(t *testing.T) {
	r := newTestRig()
	r.p.Hearts.SetMax(1)
	r.p.Hearts.AddBreak()
	if !r.p.Hearts.IsBreakFull() {
		t.Fatalf("single shielded point should be full")
	}
	r.p.StartGuard()
	r.advance(250 * time.Millisecond)
	if got := r.p.OnIncomingAttack(source{}); got != OutcomeGuardBlock {
		t.Fatalf("outcome = %s", got)
	}
	if r.p.Hearts.Health() != 0 || r.p.State() != ActionDeath {
		t.Fatalf("health=%d state=%s", r.p.Hearts.Health(), r.p.State())
	}
	if r.p.Hearts.BreakCount() != 0 {
		t.Fatalf("lost slot should drop its marker, count = %d", r.p.Hearts.BreakCount())
	}
}
