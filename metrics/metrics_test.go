package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/obj"
)

func TestRecorderCountsEvents(t *testing.T) {
	r := NewRecorder()
	events := []ecs.Event{
		{Type: ecs.EventCombat, Data: component.CombatEvent{Type: component.EventParry}},
		{Type: ecs.EventCombat, Data: component.CombatEvent{Type: component.EventParry}},
		{Type: ecs.EventCombat, Data: component.CombatEvent{Type: component.EventGuardBlock}},
		{Type: ecs.EventCombat, Data: component.CombatEvent{Type: component.EventUnblocked, Damage: 2}},
		{Type: ecs.EventCombat, Data: component.CombatEvent{Type: component.EventHit, Damage: 3}},
		{Type: ecs.EventModeSwitch, Data: obj.ModeGlitch},
		{Type: ecs.EventCollision, Data: ecs.CollisionEvent{Kind: ecs.CollisionEventHazardEnter}},
		{Type: ecs.EventCollision, Data: ecs.CollisionEvent{Kind: ecs.CollisionEventHazardExit}},
		{Type: ecs.EventCombat, Data: "not an event"},
	}
	for _, evt := range events {
		r.HandleEvent(evt)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"parry", testutil.ToFloat64(r.combat.WithLabelValues("parry")), 2},
		{"guard_block", testutil.ToFloat64(r.combat.WithLabelValues("guard_block")), 1},
		{"damage", testutil.ToFloat64(r.damage), 5},
		{"switch", testutil.ToFloat64(r.switches.WithLabelValues(obj.ModeGlitch.String())), 1},
		{"hazard", testutil.ToFloat64(r.hazards), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestRecorderTicksAndCues(t *testing.T) {
	r := NewRecorder()
	r.RecordTick(time.Millisecond)
	r.RecordTick(2 * time.Millisecond)
	r.HandleCue(component.Cue{Name: component.CueJump})

	if got := testutil.ToFloat64(r.ticks); got != 2 {
		t.Fatalf("expected 2 ticks, got %v", got)
	}
	if got := testutil.ToFloat64(r.cues.WithLabelValues("jump")); got != 1 {
		t.Fatalf("expected 1 jump cue, got %v", got)
	}
}

func TestHandlerServesRegistry(t *testing.T) {
	r := NewRecorder()
	r.HandleCue(component.Cue{Name: component.CueDash})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `combat_cues_total{cue="dash"} 1`) {
		t.Fatalf("expected dash cue in output, got:\n%s", body)
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.RecordTick(time.Millisecond)
	r.HandleEvent(ecs.Event{Type: ecs.EventCombat})
	r.HandleCue(component.Cue{Name: component.CueHit})
}
