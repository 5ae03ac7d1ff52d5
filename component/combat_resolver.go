package component

import "github.com/milk9111/glitchknight/common"

type hitKey struct {
	Source     any
	Activation uint64
	Target     any
}

// CombatResolver guarantees that an attack activation lands on each target
// at most once. Sources and targets are compared by identity, so they must
// be pointers.
type CombatResolver struct {
	Emitter *CombatEventEmitter

	next   uint64
	latest map[any]uint64
	hits   map[hitKey]struct{}

	// Recent hits recorded during Strike, for debug highlighting.
	Recent []HitRecord
}

// HitRecord stores a recent hit position for debug highlighting.
type HitRecord struct {
	Pos        common.Vec2
	FramesLeft int
}

// NewCombatResolver creates a resolver instance.
func NewCombatResolver() *CombatResolver {
	return &CombatResolver{
		latest: make(map[any]uint64),
		hits:   make(map[hitKey]struct{}),
	}
}

// Begin opens a new activation for source and returns its id. Hits recorded
// for the source's previous activations are forgotten.
func (r *CombatResolver) Begin(source any) uint64 {
	if r == nil {
		return 0
	}
	r.next++
	r.advance(source, r.next)
	return r.next
}

// Claim records a hit of target by the given activation of source. It
// returns false when that pair was already claimed.
func (r *CombatResolver) Claim(source any, activation uint64, target any) bool {
	if r == nil || target == nil {
		return false
	}
	if r.hits == nil {
		r.hits = make(map[hitKey]struct{})
	}
	r.advance(source, activation)
	key := hitKey{Source: source, Activation: activation, Target: target}
	if _, ok := r.hits[key]; ok {
		return false
	}
	r.hits[key] = struct{}{}
	return true
}

func (r *CombatResolver) advance(source any, activation uint64) {
	if r.latest == nil {
		r.latest = make(map[any]uint64)
	}
	if last, ok := r.latest[source]; ok && last == activation {
		return
	}
	r.latest[source] = activation
	for k := range r.hits {
		if k.Source == source && k.Activation != activation {
			delete(r.hits, k)
		}
	}
}

// Strike applies d to every target not yet hit by this activation and
// shoves knockbackable targets away from origin. It returns how many targets
// were hit.
func (r *CombatResolver) Strike(source any, activation uint64, targets []Target, d Damage, origin common.Vec2) int {
	if r == nil || len(targets) == 0 {
		return 0
	}
	hit := 0
	for _, t := range targets {
		if t == nil || !t.IsAlive() {
			continue
		}
		if !r.Claim(source, activation, t) {
			continue
		}
		t.TakeDamage(d.Amount, source)
		if kb, ok := t.(Knockbackable); ok && d.Knockback > 0 {
			kb.ApplyKnockback(origin, d.Knockback)
		}
		hit++
		pos := t.Position()
		r.Recent = append(r.Recent, HitRecord{Pos: pos, FramesLeft: 6})
		evt := CombatEvent{
			Type:       EventHit,
			Attacker:   source,
			Target:     t,
			Damage:     d.Amount,
			Activation: activation,
			Pos:        pos,
			Knockback:  d.Knockback,
		}
		r.Emitter.Emit(evt)
		if !t.IsAlive() {
			evt.Type = EventDeath
			r.Emitter.Emit(evt)
		}
	}
	return hit
}

// Tick ages the recent hit records. Call once per frame.
func (r *CombatResolver) Tick() {
	if r == nil || len(r.Recent) == 0 {
		return
	}
	out := r.Recent[:0]
	for _, rec := range r.Recent {
		rec.FramesLeft--
		if rec.FramesLeft > 0 {
			out = append(out, rec)
		}
	}
	r.Recent = out
}
