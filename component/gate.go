package component

import "time"

// Gate is a deadline. It is ready once the clock reaches the deadline. The
// zero value is ready at time zero.
type Gate struct {
	deadline time.Duration
}

// Arm pushes the deadline to now + d.
func (g *Gate) Arm(now, d time.Duration) {
	if g == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	g.deadline = now + d
}

// Ready reports whether now has reached the deadline.
func (g *Gate) Ready(now time.Duration) bool {
	if g == nil {
		return true
	}
	return now >= g.deadline
}

// Clear makes the gate ready immediately.
func (g *Gate) Clear() {
	if g == nil {
		return
	}
	g.deadline = 0
}

// Remaining returns the time left before the gate opens.
func (g *Gate) Remaining(now time.Duration) time.Duration {
	if g == nil || now >= g.deadline {
		return 0
	}
	return g.deadline - now
}

// Timer is a gate paired with an active flag, for channels that must both
// start and finish (dash, heal, hit stun).
type Timer struct {
	Gate
	active bool
}

// Start activates the timer for d.
func (t *Timer) Start(now, d time.Duration) {
	if t == nil {
		return
	}
	t.Arm(now, d)
	t.active = true
}

// Stop deactivates the timer without firing.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.active = false
}

func (t *Timer) Active() bool {
	return t != nil && t.active
}

// Expired reports true exactly once when an active timer reaches its
// deadline; the timer deactivates itself.
func (t *Timer) Expired(now time.Duration) bool {
	if t == nil || !t.active || !t.Ready(now) {
		return false
	}
	t.active = false
	return true
}
