package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator streams d of a wave starting at freq. sweep is added to the
// frequency per second, so a negative sweep falls in pitch.
func NewOscillator(freq, sweep float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		sweep:  sweep,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		f := math.Max(o.freq+o.sweep*t, 0)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume wraps s at a linear gain. A gain of zero is silent since the
// effect works in log2 steps.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is one shaped note.
type tone struct {
	freq    float64
	sweep   float64
	wave    Wave
	length  time.Duration
	attack  time.Duration
	release time.Duration
	gain    float64
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.freq, t.sweep, t.length, t.wave, rate)
	return volume(NewEnvelope(osc, t.length, t.attack, t.release, rate), t.gain)
}
