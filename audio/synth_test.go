package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/milk9111/glitchknight/component"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end")
	return nil
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := map[string]Wave{"sine": WaveSine, "square": WaveSquare, "saw": WaveSaw, "noise": WaveNoise}
	for name, wave := range waves {
		t.Run(name, func(t *testing.T) {
			osc := NewOscillator(440, 0, 20*time.Millisecond, wave, rate)
			samples := drain(t, osc)
			if len(samples) != rate.N(20*time.Millisecond) {
				t.Fatalf("expected %d samples, got %d", rate.N(20*time.Millisecond), len(samples))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d out of range or not mono: %v", i, s)
				}
				if wave == WaveSquare && s[0] != 1 && s[0] != -1 {
					t.Fatalf("square sample %d = %f", i, s[0])
				}
			}
			if osc.Err() != nil {
				t.Fatalf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestEnvelopeShapesAmplitude(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(250, 0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	samples := drain(t, env)
	if len(samples) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Fatalf("attack should start silent, got %f", samples[0][0])
	}
	if math.Abs(samples[50][0]) != 1 {
		t.Fatalf("sustain should be full scale, got %f", samples[50][0])
	}
	if math.Abs(samples[99][0]) > 0.11 {
		t.Fatalf("release should fade out, got %f", samples[99][0])
	}
}

func TestVolumeSilentAtZero(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := volume(NewOscillator(100, 0, 10*time.Millisecond, WaveSquare, rate), 0)
	for _, v := range drain(t, s) {
		if v[0] != 0 {
			t.Fatalf("expected silence, got %f", v[0])
		}
	}
}

func TestSoundForCues(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name    component.CueName
		audible bool
	}{
		{component.CueParrySuccess, true},
		{component.CueGuardBlock, true},
		{component.CueHit, true},
		{component.CueDeath, true},
		{component.CueBuff, true},
		{component.CueRunning, false},
		{component.CueFalling, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			if Audible(tt.name) != tt.audible {
				t.Fatalf("Audible(%s) = %v", tt.name, !tt.audible)
			}
			s := Sound(tt.name, rate)
			if !tt.audible {
				if s != nil {
					t.Fatalf("expected no sound")
				}
				return
			}
			samples := drain(t, s)
			if len(samples) == 0 {
				t.Fatalf("expected samples")
			}
			loud := false
			for _, v := range samples {
				if v[0] != 0 {
					loud = true
					break
				}
			}
			if !loud {
				t.Fatalf("sound is silent")
			}
		})
	}
}

func TestDeathSequenceIsLongerThanAnyStep(t *testing.T) {
	rate := beep.SampleRate(8000)
	n := len(drain(t, Sound(component.CueDeath, rate)))
	if n < rate.N(800*time.Millisecond) {
		t.Fatalf("expected the three notes in sequence, got %d samples", n)
	}
}

func TestCuePlayerIgnoresCuesBeforeInit(t *testing.T) {
	p := NewCuePlayer()
	p.Handle(component.Cue{Name: component.CueHit})
	if p.mixer.Len() != 0 {
		t.Fatalf("expected nothing queued before Init")
	}
	var nilPlayer *CuePlayer
	nilPlayer.Handle(component.Cue{Name: component.CueHit})
}
