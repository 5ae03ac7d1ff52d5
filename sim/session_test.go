package sim

import (
	"errors"
	"testing"

	combat "github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/obj"
	"github.com/milk9111/glitchknight/prefabs"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(prefabs.ArenaFile)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestStepAdvancesClock(t *testing.T) {
	s := newSession(t)
	for i := 0; i < 30; i++ {
		s.Step()
	}
	if s.Tick != 30 {
		t.Fatalf("expected tick 30, got %d", s.Tick)
	}
	if got := s.Clock.Now(); got != 30*FrameTime {
		t.Fatalf("expected clock at %v, got %v", 30*FrameTime, got)
	}
	if s.Over() {
		t.Fatalf("a fresh arena should not be over")
	}
}

func TestPushReachesPlayer(t *testing.T) {
	s := newSession(t)
	var cues []combat.CueName
	s.OnCue(func(c combat.Cue) { cues = append(cues, c.Name) })
	var switches int
	s.OnEvent(func(evt ecs.Event) {
		if evt.Type == ecs.EventModeSwitch {
			switches++
		}
	})

	s.Step()
	s.Push(obj.Intent{Kind: obj.IntentModeSwitch})
	s.Step()

	if s.Scene.Switcher.Mode() != obj.ModeGlitch {
		t.Fatalf("expected glitch mode after the intent")
	}
	if switches != 1 {
		t.Fatalf("expected one mode switch event, got %d", switches)
	}
	found := false
	for _, c := range cues {
		if c == combat.CueModeSwitch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a mode switch cue, got %v", cues)
	}
}

func TestReloadKeepsHandlers(t *testing.T) {
	s := newSession(t)
	events := 0
	s.OnEvent(func(ecs.Event) { events++ })
	for i := 0; i < 10; i++ {
		s.Step()
	}
	world := s.World

	if err := s.Reload(prefabs.PlayerFile); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if s.World == world {
		t.Fatalf("reload should rebuild the world")
	}
	if s.Tick != 0 {
		t.Fatalf("reload should reset the tick, got %d", s.Tick)
	}

	s.Step()
	s.Push(obj.Intent{Kind: obj.IntentModeSwitch})
	s.Step()
	if events == 0 {
		t.Fatalf("handlers should survive a reload")
	}
}

func TestReloadRejectsUnknownFile(t *testing.T) {
	s := newSession(t)
	world := s.World
	err := s.Reload("notes.txt")
	if !errors.Is(err, prefabs.ErrUnknownSpec) {
		t.Fatalf("expected ErrUnknownSpec, got %v", err)
	}
	if s.World != world {
		t.Fatalf("a rejected reload must keep the running world")
	}
}

func TestMissingArena(t *testing.T) {
	if _, err := NewSession("missing_arena.yaml"); err == nil {
		t.Fatalf("expected an error for a missing arena")
	}
}

func TestOverWhenPlayerDies(t *testing.T) {
	s := newSession(t)
	s.Step()
	hearts := s.Scene.Switcher.Hearts()
	hearts.ApplyDamage(hearts.Max())
	if !s.Over() {
		t.Fatalf("session should be over once the player is dead")
	}

	var nilSession *Session
	if !nilSession.Over() {
		t.Fatalf("nil session reports over")
	}
	nilSession.Step()
	nilSession.Push(obj.Intent{})
}
