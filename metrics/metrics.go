// Package metrics exposes simulation counters to Prometheus. Label values
// are bounded: combat event types, cue names and modes only.
package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/obj"
)

// Recorder owns one registry so several sessions can run in a process.
type Recorder struct {
	registry *prometheus.Registry

	tickDuration prometheus.Histogram
	ticks        prometheus.Counter
	combat       *prometheus.CounterVec
	damage       prometheus.Counter
	cues         *prometheus.CounterVec
	switches     *prometheus.CounterVec
	hazards      prometheus.Counter
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		registry: reg,
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "combat_tick_duration_seconds",
			Help:    "Time spent in one simulation tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "combat_ticks_total",
			Help: "Simulation ticks run",
		}),
		combat: f.NewCounterVec(prometheus.CounterOpts{
			Name: "combat_events_total",
			Help: "Resolved combat events by type",
		}, []string{"type"}),
		damage: f.NewCounter(prometheus.CounterOpts{
			Name: "combat_damage_total",
			Help: "Damage carried by hit and unblocked events",
		}),
		cues: f.NewCounterVec(prometheus.CounterOpts{
			Name: "combat_cues_total",
			Help: "Presentation cues emitted by the player",
		}, []string{"cue"}),
		switches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "combat_mode_switches_total",
			Help: "Mode switches by the mode switched into",
		}, []string{"mode"}),
		hazards: f.NewCounter(prometheus.CounterOpts{
			Name: "combat_hazard_contacts_total",
			Help: "Times a body entered a hazard",
		}),
	}
}

// RecordTick records one tick and its wall time.
func (r *Recorder) RecordTick(d time.Duration) {
	if r == nil {
		return
	}
	r.ticks.Inc()
	r.tickDuration.Observe(d.Seconds())
}

// HandleEvent counts a world event. It fits system.EventSystem handlers.
func (r *Recorder) HandleEvent(evt ecs.Event) {
	if r == nil {
		return
	}
	switch evt.Type {
	case ecs.EventCombat:
		ce, ok := evt.Data.(component.CombatEvent)
		if !ok {
			return
		}
		r.combat.WithLabelValues(string(ce.Type)).Inc()
		if ce.Type == component.EventHit || ce.Type == component.EventUnblocked {
			r.damage.Add(float64(ce.Damage))
		}
	case ecs.EventModeSwitch:
		if mode, ok := evt.Data.(obj.Mode); ok {
			r.switches.WithLabelValues(mode.String()).Inc()
		}
	case ecs.EventCollision:
		if ce, ok := evt.Data.(ecs.CollisionEvent); ok && ce.Kind == ecs.CollisionEventHazardEnter {
			r.hazards.Inc()
		}
	}
}

// HandleCue counts a player cue. It fits component.CueHandler.
func (r *Recorder) HandleCue(c component.Cue) {
	if r == nil {
		return
	}
	r.cues.WithLabelValues(string(c.Name)).Inc()
}

// Gatherer exposes the registry, mostly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve starts a /metrics endpoint on addr in the background.
func (r *Recorder) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Printf("metrics: serving on http://%s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics: server error: %v", err)
		}
	}()
	return srv
}
