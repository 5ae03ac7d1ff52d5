package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/milk9111/glitchknight/component"
)

const ms = time.Millisecond

// voice is a cue sound: layers play together, steps play in sequence.
type voice struct {
	layers []tone
	steps  []tone
}

var voices = map[component.CueName]voice{
	component.CueJump:          {layers: []tone{{freq: 300, sweep: 1800, wave: WaveSquare, length: 80 * ms, attack: 5 * ms, release: 40 * ms, gain: 0.2}}},
	component.CueDoubleJump:    {layers: []tone{{freq: 450, sweep: 2400, wave: WaveSquare, length: 80 * ms, attack: 5 * ms, release: 40 * ms, gain: 0.2}}},
	component.CueWallJump:      {layers: []tone{{freq: 380, sweep: 2000, wave: WaveSquare, length: 90 * ms, attack: 5 * ms, release: 45 * ms, gain: 0.2}}},
	component.CueLand:          {layers: []tone{{wave: WaveNoise, length: 50 * ms, attack: 2 * ms, release: 40 * ms, gain: 0.15}}},
	component.CueDash:          {layers: []tone{{wave: WaveNoise, length: 120 * ms, attack: 10 * ms, release: 80 * ms, gain: 0.25}}},
	component.CueAttackForward: {layers: []tone{{freq: 900, sweep: -4000, wave: WaveSaw, length: 70 * ms, attack: 2 * ms, release: 50 * ms, gain: 0.2}}},
	component.CueAttackUp:      {layers: []tone{{freq: 700, sweep: 3000, wave: WaveSaw, length: 70 * ms, attack: 2 * ms, release: 50 * ms, gain: 0.2}}},
	component.CueAttackDown:    {layers: []tone{{freq: 1100, sweep: -6000, wave: WaveSaw, length: 70 * ms, attack: 2 * ms, release: 50 * ms, gain: 0.2}}},
	component.CueAttackWall:    {layers: []tone{{freq: 800, sweep: -3000, wave: WaveSaw, length: 70 * ms, attack: 2 * ms, release: 50 * ms, gain: 0.2}}},
	component.CueSkill: {layers: []tone{
		{freq: 220, sweep: 600, wave: WaveSaw, length: 300 * ms, attack: 20 * ms, release: 150 * ms, gain: 0.25},
		{wave: WaveNoise, length: 200 * ms, attack: 10 * ms, release: 150 * ms, gain: 0.1},
	}},
	component.CueHeal:       {layers: []tone{{freq: 523.25, sweep: 200, wave: WaveSine, length: 400 * ms, attack: 100 * ms, release: 200 * ms, gain: 0.2}}},
	component.CueGuardStart: {layers: []tone{{freq: 180, wave: WaveSquare, length: 40 * ms, attack: 2 * ms, release: 30 * ms, gain: 0.15}}},
	component.CueParrySuccess: {layers: []tone{
		{freq: 1760, wave: WaveSine, length: 350 * ms, attack: 2 * ms, release: 300 * ms, gain: 0.35},
		{freq: 3520, wave: WaveSine, length: 200 * ms, attack: 2 * ms, release: 180 * ms, gain: 0.15},
	}},
	component.CueGuardBlock: {layers: []tone{
		{freq: 120, sweep: -200, wave: WaveSquare, length: 120 * ms, attack: 2 * ms, release: 100 * ms, gain: 0.3},
		{wave: WaveNoise, length: 60 * ms, attack: 1 * ms, release: 50 * ms, gain: 0.2},
	}},
	component.CueHit: {layers: []tone{{freq: 100, wave: WaveSaw, length: 150 * ms, attack: 2 * ms, release: 100 * ms, gain: 0.35}}},
	component.CueDeath: {steps: []tone{
		{freq: 392, wave: WaveSquare, length: 200 * ms, attack: 5 * ms, release: 100 * ms, gain: 0.3},
		{freq: 311.13, wave: WaveSquare, length: 200 * ms, attack: 5 * ms, release: 100 * ms, gain: 0.3},
		{freq: 196, sweep: -150, wave: WaveSquare, length: 500 * ms, attack: 5 * ms, release: 400 * ms, gain: 0.3},
	}},
	component.CueBuff: {steps: []tone{
		{freq: 987.77, wave: WaveSquare, length: 60 * ms, attack: 2 * ms, release: 30 * ms, gain: 0.2},
		{freq: 1318.51, wave: WaveSquare, length: 120 * ms, attack: 2 * ms, release: 90 * ms, gain: 0.2},
	}},
	component.CueModeSwitch: {layers: []tone{
		{freq: 200, sweep: 3000, wave: WaveSaw, length: 150 * ms, attack: 5 * ms, release: 60 * ms, gain: 0.2},
		{wave: WaveNoise, length: 150 * ms, attack: 5 * ms, release: 60 * ms, gain: 0.1},
	}},
}

// Sound builds the streamer for a cue, or nil for a silent cue.
func Sound(name component.CueName, rate beep.SampleRate) beep.Streamer {
	v, ok := voices[name]
	if !ok {
		return nil
	}
	if len(v.steps) > 0 {
		seq := make([]beep.Streamer, 0, len(v.steps))
		for _, t := range v.steps {
			seq = append(seq, t.streamer(rate))
		}
		return beep.Seq(seq...)
	}
	mix := make([]beep.Streamer, 0, len(v.layers))
	for _, t := range v.layers {
		mix = append(mix, t.streamer(rate))
	}
	if len(mix) == 1 {
		return mix[0]
	}
	return beep.Mix(mix...)
}

// Audible reports whether a cue has a sound.
func Audible(name component.CueName) bool {
	_, ok := voices[name]
	return ok
}
