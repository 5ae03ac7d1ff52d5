package component

import "time"

// BuffType identifies a stacking timed buff.
type BuffType int

const (
	BuffDamageUp BuffType = iota
)

func (b BuffType) String() string {
	switch b {
	case BuffDamageUp:
		return "damage_up"
	default:
		return "unknown"
	}
}

// Buff is one stacking buff. Each activation raises the level up to
// len(Multipliers) and refreshes the duration.
type Buff struct {
	Type        BuffType
	Duration    time.Duration
	Multipliers []float64

	level  int
	expiry Gate
}

// Level returns the active level; 0 means inactive.
func (b *Buff) Level() int {
	if b == nil {
		return 0
	}
	return b.level
}

// Multiplier returns the factor for the active level, or 1 when inactive.
func (b *Buff) Multiplier() float64 {
	if b == nil || b.level == 0 || b.level > len(b.Multipliers) {
		return 1
	}
	return b.Multipliers[b.level-1]
}

// Remaining returns the time left before the buff ends.
func (b *Buff) Remaining(now time.Duration) time.Duration {
	if b == nil || b.level == 0 {
		return 0
	}
	return b.expiry.Remaining(now)
}

// BuffSet holds the buffs of one character.
type BuffSet struct {
	buffs map[BuffType]*Buff
	Cues  *CueEmitter
}

// NewDefaultBuffSet returns the damage buff granted by perfect parries.
func NewDefaultBuffSet() *BuffSet {
	s := &BuffSet{}
	s.Register(&Buff{
		Type:        BuffDamageUp,
		Duration:    5 * time.Second,
		Multipliers: []float64{1.1, 1.2, 1.3, 1.4},
	})
	return s
}

// Register adds or replaces a buff definition.
func (s *BuffSet) Register(b *Buff) {
	if s == nil || b == nil {
		return
	}
	if s.buffs == nil {
		s.buffs = make(map[BuffType]*Buff)
	}
	s.buffs[b.Type] = b
}

// Get returns the buff of the given type.
func (s *BuffSet) Get(t BuffType) *Buff {
	if s == nil {
		return nil
	}
	return s.buffs[t]
}

// Activate raises the buff one level (holding at max) and refreshes its
// duration.
func (s *BuffSet) Activate(t BuffType, now time.Duration) {
	b := s.Get(t)
	if b == nil {
		return
	}
	if b.level < len(b.Multipliers) {
		b.level++
	}
	b.expiry.Arm(now, b.Duration)
	s.Cues.Emit(Cue{Name: CueBuff, Index: b.level})
}

// Update expires buffs whose duration elapsed.
func (s *BuffSet) Update(now time.Duration) {
	if s == nil {
		return
	}
	for _, b := range s.buffs {
		if b.level > 0 && b.expiry.Ready(now) {
			b.level = 0
			s.Cues.Emit(Cue{Name: CueBuff, Index: 0})
		}
	}
}

// Multiplier returns the factor of the given buff, 1 when absent.
func (s *BuffSet) Multiplier(t BuffType) float64 {
	return s.Get(t).Multiplier()
}

// Scale applies the buff factor to a base integer value, rounding to the
// nearest integer.
func (s *BuffSet) Scale(t BuffType, base int) int {
	m := s.Multiplier(t)
	return int(float64(base)*m + 0.5)
}
