package component

import (
	"testing"
	"time"
)

func TestBuffStacksAndExpires(t *testing.T) {
	s := NewDefaultBuffSet()
	if s.Multiplier(BuffDamageUp) != 1 {
		t.Fatalf("inactive multiplier should be 1")
	}
	wants := []float64{1.1, 1.2, 1.3, 1.4, 1.4}
	for i, want := range wants {
		s.Activate(BuffDamageUp, time.Duration(i)*time.Second)
		if got := s.Multiplier(BuffDamageUp); got != want {
			t.Fatalf("activation %d: multiplier = %v, want %v", i+1, got, want)
		}
	}
	// Last activation at 4s refreshes the 5s duration.
	s.Update(8 * time.Second)
	if s.Get(BuffDamageUp).Level() != 4 {
		t.Fatalf("buff expired before refreshed duration")
	}
	s.Update(9 * time.Second)
	if s.Get(BuffDamageUp).Level() != 0 {
		t.Fatalf("buff should expire")
	}
	if s.Scale(BuffDamageUp, 10) != 10 {
		t.Fatalf("expired buff should not scale")
	}
}

func TestBuffScaleRounds(t *testing.T) {
	s := NewDefaultBuffSet()
	s.Activate(BuffDamageUp, 0)
	if got := s.Scale(BuffDamageUp, 10); got != 11 {
		t.Fatalf("Scale = %d, want 11", got)
	}
}
