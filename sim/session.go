package sim

import (
	"fmt"
	"log"
	"time"

	combat "github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
	"github.com/milk9111/glitchknight/ecs/entity"
	"github.com/milk9111/glitchknight/ecs/system"
	"github.com/milk9111/glitchknight/obj"
	"github.com/milk9111/glitchknight/prefabs"
)

// FrameTime is the fixed tick length.
const FrameTime = time.Second / 60

// Session owns one running arena: its world, clock and tick pipeline.
type Session struct {
	ArenaFile string
	Debug     bool

	World    *ecs.World
	Clock    *combat.SimClock
	Pipeline *system.Pipeline
	Scene    *entity.Scene

	Tick int

	handlers []func(ecs.Event)
	cues     []combat.CueHandler
}

// NewSession builds the arena described by arenaFile.
func NewSession(arenaFile string) (*Session, error) {
	s := &Session{ArenaFile: arenaFile}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build() error {
	w := ecs.NewWorld()
	clock := combat.NewSimClock()
	pipeline := system.Install(w, clock)
	scene, err := entity.BuildScene(w, s.ArenaFile, clock)
	if err != nil {
		return fmt.Errorf("sim: build %s: %w", s.ArenaFile, err)
	}
	s.World, s.Clock, s.Pipeline, s.Scene = w, clock, pipeline, scene
	s.Tick = 0
	for _, h := range s.handlers {
		pipeline.Events.Subscribe(h)
	}
	for _, h := range s.cues {
		scene.Switcher.Active().Cues.Subscribe(h)
	}
	s.SetDebug(s.Debug)
	return nil
}

// SetDebug toggles state and combat logging.
func (s *Session) SetDebug(on bool) {
	s.Debug = on
	s.Pipeline.Combat.Debug = on
	for _, mode := range []obj.Mode{obj.ModeNormal, obj.ModeGlitch} {
		s.Scene.Switcher.Form(mode).SetDebug(on)
	}
}

// OnEvent registers a handler for world events. It survives Reload.
func (s *Session) OnEvent(h func(ecs.Event)) {
	if s == nil || h == nil {
		return
	}
	s.handlers = append(s.handlers, h)
	s.Pipeline.Events.Subscribe(h)
}

// OnCue registers a handler for player cues. It survives Reload.
func (s *Session) OnCue(h combat.CueHandler) {
	if s == nil || h == nil {
		return
	}
	s.cues = append(s.cues, h)
	s.Scene.Switcher.Active().Cues.Subscribe(h)
}

// Push queues an intent for the next tick.
func (s *Session) Push(in obj.Intent) {
	if s == nil {
		return
	}
	if q, ok := ecs.Get(s.World, s.Scene.Player, component.InputComponent.Kind()); ok {
		q.Queue.Push(in)
	}
}

// Step runs the pipeline once and then advances the clock by one frame.
func (s *Session) Step() {
	if s == nil {
		return
	}
	s.World.Update()
	s.Clock.Advance(FrameTime)
	s.Tick++
}

// Over reports that the player died or every enemy is gone.
func (s *Session) Over() bool {
	if s == nil || !s.Scene.Switcher.IsAlive() {
		return true
	}
	for _, e := range s.Scene.Enemies {
		if !e.Removed() {
			return false
		}
	}
	return true
}

// Reload rebuilds the arena after a spec change. A spec that fails to load
// leaves the running session untouched.
func (s *Session) Reload(changed string) error {
	if _, err := prefabs.KindOf(changed); err != nil {
		return err
	}
	old := *s
	if err := s.build(); err != nil {
		*s = old
		return err
	}
	log.Printf("sim: reloaded %s after %s changed", s.ArenaFile, changed)
	return nil
}
