package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/metrics"
	"github.com/milk9111/glitchknight/prefabs"
	"github.com/milk9111/glitchknight/script"
	"github.com/milk9111/glitchknight/sim"
)

type Options struct {
	ArenaFile   string
	Script      string
	Ticks       int
	Realtime    bool
	MetricsAddr string
	Watch       bool
	Debug       bool
}

// Runner drives one session from a script.
type Runner struct {
	opts     Options
	session  *sim.Session
	timeline *script.Timeline
	recorder *metrics.Recorder
	limiter  *rate.Limiter
	watcher  *prefabs.Watcher
	server   *http.Server
	summary  *Summary
}

func NewRunner(opts Options) (*Runner, error) {
	s, err := sim.NewSession(opts.ArenaFile)
	if err != nil {
		return nil, err
	}
	s.SetDebug(opts.Debug)
	tl, err := script.Load(opts.Script)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		opts:     opts,
		session:  s,
		timeline: tl,
		recorder: metrics.NewRecorder(),
		summary:  newSummary(),
	}
	s.OnEvent(r.recorder.HandleEvent)
	s.OnEvent(r.summary.HandleEvent)
	s.OnCue(r.recorder.HandleCue)
	s.OnCue(r.summary.HandleCue)

	if opts.Realtime {
		r.limiter = rate.NewLimiter(rate.Every(sim.FrameTime), 1)
	}
	if opts.MetricsAddr != "" {
		r.server = r.recorder.Serve(opts.MetricsAddr)
	}
	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.WatchDirs()...)
		if err != nil {
			log.Printf("combatsim: watch disabled: %v", err)
		} else {
			r.watcher = w
		}
	}
	return r, nil
}

// Run steps the session until the tick limit, the end of the fight or ctx
// is done.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	s := r.session
	for r.opts.Ticks <= 0 || s.Tick < r.opts.Ticks {
		if err := ctx.Err(); err != nil {
			return r.summary, err
		}
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return r.summary, err
			}
		}
		r.reload()
		if s.Over() {
			break
		}

		obs := script.Observe(s.Tick, s.Clock.Now(), s.Scene.Switcher, s.Scene.NearestEnemy())
		intents, err := r.timeline.Step(obs)
		if err != nil {
			return r.summary, fmt.Errorf("combatsim: tick %d: %w", s.Tick, err)
		}
		for _, in := range intents {
			s.Push(in)
		}

		start := time.Now()
		s.Step()
		r.recorder.RecordTick(time.Since(start))
	}
	r.summary.finish(s)
	return r.summary, nil
}

func (r *Runner) reload() {
	if r.watcher == nil {
		return
	}
	for _, path := range r.watcher.Poll() {
		if filepath.Ext(path) == ".tengo" {
			if filepath.Base(path) != filepath.Base(r.opts.Script) {
				continue
			}
			tl, err := script.Load(r.opts.Script)
			if err != nil {
				log.Printf("combatsim: keep old script: %v", err)
				continue
			}
			r.timeline = tl
			log.Printf("combatsim: reloaded script %s", r.opts.Script)
			continue
		}
		if err := r.session.Reload(path); err != nil {
			log.Printf("combatsim: reload %s: %v", path, err)
		}
	}
}

func (r *Runner) Close() {
	if r.watcher != nil {
		_ = r.watcher.Close()
	}
	if r.server != nil {
		_ = r.server.Close()
	}
}

// Summary tallies a run.
type Summary struct {
	Ticks       int
	PlayerAlive bool
	Health      int
	Breaks      int
	Combat      map[component.CombatEventType]int
	Cues        map[component.CueName]int
	Switches    int
}

func newSummary() *Summary {
	return &Summary{
		Combat: make(map[component.CombatEventType]int),
		Cues:   make(map[component.CueName]int),
	}
}

func (s *Summary) HandleEvent(evt ecs.Event) {
	switch evt.Type {
	case ecs.EventCombat:
		if ce, ok := evt.Data.(component.CombatEvent); ok {
			s.Combat[ce.Type]++
		}
	case ecs.EventModeSwitch:
		s.Switches++
	}
}

func (s *Summary) HandleCue(c component.Cue) {
	s.Cues[c.Name]++
}

func (s *Summary) finish(session *sim.Session) {
	s.Ticks = session.Tick
	sw := session.Scene.Switcher
	s.PlayerAlive = sw.IsAlive()
	s.Health = sw.Hearts().Health()
	s.Breaks = sw.Hearts().BreakCount()
}

func (s *Summary) Log() {
	if s == nil {
		return
	}
	log.Printf("combatsim: %d ticks, player alive=%v health=%d breaks=%d switches=%d",
		s.Ticks, s.PlayerAlive, s.Health, s.Breaks, s.Switches)
	types := make([]string, 0, len(s.Combat))
	for t := range s.Combat {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		log.Printf("combatsim:   combat %-12s %d", t, s.Combat[component.CombatEventType(t)])
	}
	names := make([]string, 0, len(s.Cues))
	for n := range s.Cues {
		names = append(names, string(n))
	}
	sort.Strings(names)
	for _, n := range names {
		log.Printf("combatsim:   cue %-15s %d", n, s.Cues[component.CueName(n)])
	}
}
