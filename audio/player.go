package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/glitchknight/component"
)

// SampleRate is the speaker rate.
const SampleRate = beep.SampleRate(44100)

// CuePlayer plays cue sounds through the speaker.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	Volume      float64
	initialized bool
}

func NewCuePlayer() *CuePlayer {
	return &CuePlayer{mixer: &beep.Mixer{}, Volume: 1}
}

// Init opens the speaker. Calling it twice is harmless.
func (p *CuePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle plays the sound of c. It is a component.CueHandler.
func (p *CuePlayer) Handle(c component.Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	ready := p.initialized
	gain := p.Volume
	p.mu.Unlock()
	if !ready {
		return
	}
	s := Sound(c.Name, SampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(volume(s, gain))
	speaker.Unlock()
}

// Close silences every playing sound.
func (p *CuePlayer) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
