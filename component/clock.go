package component

import "time"

// Clock supplies simulation time. Now is scaled by slow-motion effects;
// Unscaled advances at the real frame rate regardless of the time scale.
type Clock interface {
	Now() time.Duration
	Unscaled() time.Duration
}

// TimeScaler applies a temporary slow-motion effect.
type TimeScaler interface {
	SlowMotion(scale float64, realDuration time.Duration)
}

// SimClock is a manually advanced clock. The owner of the tick loop calls
// Advance once per frame with the real frame duration.
type SimClock struct {
	now      time.Duration
	unscaled time.Duration

	scale   float64
	slowEnd time.Duration
}

// NewSimClock creates a clock at time zero with a time scale of 1.
func NewSimClock() *SimClock {
	return &SimClock{scale: 1}
}

func (c *SimClock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

func (c *SimClock) Unscaled() time.Duration {
	if c == nil {
		return 0
	}
	return c.unscaled
}

// Scale returns the active time scale.
func (c *SimClock) Scale() float64 {
	if c == nil || c.scale <= 0 {
		return 1
	}
	return c.scale
}

// Advance moves unscaled time by dt and scaled time by dt times the active
// scale. An expired slow-motion effect is dropped before scaling.
func (c *SimClock) Advance(dt time.Duration) {
	if c == nil || dt <= 0 {
		return
	}
	if c.scale != 1 && c.unscaled >= c.slowEnd {
		c.scale = 1
	}
	c.unscaled += dt
	c.now += time.Duration(float64(dt) * c.Scale())
}

// SlowMotion scales game time for realDuration of unscaled time. A stronger
// (smaller) scale overrides a weaker one; the longer end time wins.
func (c *SimClock) SlowMotion(scale float64, realDuration time.Duration) {
	if c == nil || scale <= 0 || realDuration <= 0 {
		return
	}
	end := c.unscaled + realDuration
	if c.scale == 1 || scale < c.scale {
		c.scale = scale
	}
	if end > c.slowEnd {
		c.slowEnd = end
	}
}
