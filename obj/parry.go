package obj

import "time"

// ParryPhase is the phase of a guard window.
type ParryPhase int

const (
	ParryClosed ParryPhase = iota
	ParryPerfect
	ParryGuard
)

func (p ParryPhase) String() string {
	switch p {
	case ParryPerfect:
		return "perfect"
	case ParryGuard:
		return "guard"
	default:
		return "closed"
	}
}

// ParryWindow tracks a guard from entry to close. The perfect phase is
// measured in unscaled time so slow motion never stretches it.
type ParryWindow struct {
	phase   ParryPhase
	start   time.Duration
	perfect time.Duration
	blocked bool
}

// Open starts the perfect phase at the unscaled time now.
func (w *ParryWindow) Open(now, perfect time.Duration) {
	if w == nil {
		return
	}
	w.phase = ParryPerfect
	w.start = now
	w.perfect = perfect
	w.blocked = false
}

// Phase derives the phase at the unscaled time now.
func (w *ParryWindow) Phase(now time.Duration) ParryPhase {
	if w == nil || w.phase == ParryClosed {
		return ParryClosed
	}
	if w.phase == ParryPerfect && now-w.start >= w.perfect {
		return ParryGuard
	}
	return w.phase
}

// Update commits the perfect to guard demotion.
func (w *ParryWindow) Update(now time.Duration) {
	if w == nil {
		return
	}
	w.phase = w.Phase(now)
}

// Close ends the window.
func (w *ParryWindow) Close() {
	if w == nil {
		return
	}
	w.phase = ParryClosed
}

func (w *ParryWindow) Active() bool {
	return w != nil && w.phase != ParryClosed
}

// Blocked reports whether the last incoming attack was guard-blocked.
func (w *ParryWindow) Blocked() bool {
	return w != nil && w.blocked
}
