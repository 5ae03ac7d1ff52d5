package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/glitchknight/obj"
)

// holdBinding maps a held key to its start and cancel intents.
type holdBinding struct {
	keys   []ebiten.Key
	start  obj.IntentKind
	cancel obj.IntentKind
}

var holdBindings = []holdBinding{
	{keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}, start: obj.IntentJumpStart, cancel: obj.IntentJumpCancel},
	{keys: []ebiten.Key{ebiten.KeyH}, start: obj.IntentHealStart, cancel: obj.IntentHealCancel},
	{keys: []ebiten.Key{ebiten.KeyI, ebiten.KeyShiftLeft}, start: obj.IntentGuardStart, cancel: obj.IntentGuardCancel},
}

var pressBindings = map[ebiten.Key]obj.IntentKind{
	ebiten.KeyJ:   obj.IntentAttack,
	ebiten.KeyX:   obj.IntentAttack,
	ebiten.KeyK:   obj.IntentSkill,
	ebiten.KeyL:   obj.IntentDash,
	ebiten.KeyC:   obj.IntentDash,
	ebiten.KeyTab: obj.IntentModeSwitch,
}

// Keyboard turns key edges into intents. Move is sent only when the
// direction changes.
type Keyboard struct {
	lastX, lastY float64
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

func axis(neg, pos []ebiten.Key) float64 {
	v := 0.0
	for _, k := range neg {
		if ebiten.IsKeyPressed(k) {
			v--
			break
		}
	}
	for _, k := range pos {
		if ebiten.IsKeyPressed(k) {
			v++
			break
		}
	}
	return v
}

// Poll returns the intents produced this frame.
func (k *Keyboard) Poll() []obj.Intent {
	var out []obj.Intent
	x := axis([]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight})
	y := axis([]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp})
	if x != k.lastX || y != k.lastY {
		k.lastX, k.lastY = x, y
		out = append(out, obj.Move(x, y))
	}
	for _, b := range holdBindings {
		if anyJustPressed(b.keys) {
			out = append(out, obj.Intent{Kind: b.start})
		}
		if anyJustReleased(b.keys) {
			out = append(out, obj.Intent{Kind: b.cancel})
		}
	}
	for key, kind := range pressBindings {
		if inpututil.IsKeyJustPressed(key) {
			out = append(out, obj.Intent{Kind: kind})
		}
	}
	return out
}

// Reset forgets the last direction so the next Poll resends it.
func (k *Keyboard) Reset() {
	k.lastX, k.lastY = 0, 0
}
