package component

import (
	"testing"
	"time"
)

func TestSimClockAdvance(t *testing.T) {
	c := NewSimClock()
	c.Advance(16 * time.Millisecond)
	if c.Now() != 16*time.Millisecond || c.Unscaled() != 16*time.Millisecond {
		t.Fatalf("unexpected times now=%v unscaled=%v", c.Now(), c.Unscaled())
	}
}

func TestSimClockSlowMotion(t *testing.T) {
	c := NewSimClock()
	c.SlowMotion(0.5, 100*time.Millisecond)
	for i := 0; i < 10; i++ {
		c.Advance(10 * time.Millisecond)
	}
	if c.Unscaled() != 100*time.Millisecond {
		t.Fatalf("unscaled = %v, want 100ms", c.Unscaled())
	}
	if c.Now() != 50*time.Millisecond {
		t.Fatalf("scaled = %v, want 50ms", c.Now())
	}

	c.Advance(10 * time.Millisecond)
	if c.Scale() != 1 {
		t.Fatalf("slow motion should have ended, scale=%v", c.Scale())
	}
	if c.Now() != 60*time.Millisecond {
		t.Fatalf("scaled = %v, want 60ms", c.Now())
	}
}

func TestSimClockStrongerSlowMotionWins(t *testing.T) {
	c := NewSimClock()
	c.SlowMotion(0.5, 50*time.Millisecond)
	c.SlowMotion(0.1, 20*time.Millisecond)
	if c.Scale() != 0.1 {
		t.Fatalf("scale = %v, want 0.1", c.Scale())
	}
	c.SlowMotion(0.8, 10*time.Millisecond)
	if c.Scale() != 0.1 {
		t.Fatalf("weaker effect must not override, scale = %v", c.Scale())
	}
}
