package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/obj"
)

const (
	heartSize    = 18
	heartSpacing = 6
	hudMargin    = 12
	manaHeight   = 8
)

var face text.Face = text.NewGoXFace(basicfont.Face7x13)

// HUD mirrors the player's health and mana. It is bound through
// obj.ModeSwitcher.BindHUD and only draws what it was told.
type HUD struct {
	Health  int
	Mana    int
	Markers []int
}

func (h *HUD) OnHealthChanged(count int) { h.Health = count }
func (h *HUD) OnManaChanged(current int) { h.Mana = current }
func (h *HUD) OnBreakMarkersChanged(slots []int) {
	h.Markers = append(h.Markers[:0], slots...)
}

var _ component.HUD = (*HUD)(nil)

// Draw renders the heart row, the mana bar and a status line.
func (h *HUD) Draw(screen *ebiten.Image, sw *obj.ModeSwitcher) {
	if h == nil || screen == nil || sw == nil {
		return
	}
	hearts := sw.Hearts()
	for slot, state := range hearts.States() {
		x := float32(hudMargin + slot*(heartSize+heartSpacing))
		drawHeart(screen, x, hudMargin, state)
	}

	mana := sw.Mana()
	if capacity := mana.Capacity(); capacity > 0 {
		y := float32(hudMargin + heartSize + heartSpacing)
		width := float32(hearts.Max()*(heartSize+heartSpacing) - heartSpacing)
		vector.FillRect(screen, hudMargin, y, width, manaHeight, colornames.Midnightblue, false)
		fill := width * float32(h.Mana) / float32(capacity)
		vector.FillRect(screen, hudMargin, y, fill, manaHeight, colornames.Deepskyblue, false)
		for i := 1; i < mana.Slots(); i++ {
			sx := hudMargin + width*float32(i)/float32(mana.Slots())
			vector.StrokeLine(screen, sx, y, sx, y+manaHeight, 1, colornames.Black, false)
		}
	}

	p := sw.Active()
	status := fmt.Sprintf("%s  %s  parry:%s  hp:%d breaks:%d  switch:%.1fs",
		sw.Mode(), p.State(), p.ParryPhase(), h.Health, len(h.Markers), sw.CooldownRemaining().Seconds())
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, float64(hudMargin+heartSize+2*heartSpacing+manaHeight))
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, status, face, op)
}

func drawHeart(screen *ebiten.Image, x, y float32, state component.HeartState) {
	var fill color.Color
	switch state {
	case component.HeartFull, component.HeartBreakIdle:
		fill = colornames.Crimson
	case component.HeartTrembling, component.HeartBreakTrembling:
		fill = colornames.Orangered
	case component.HeartBreakNone:
		fill = colornames.Dimgray
	default:
		vector.StrokeRect(screen, x, y, heartSize, heartSize, 1, colornames.Gray, false)
		return
	}
	vector.FillRect(screen, x, y, heartSize, heartSize, fill, false)
	switch state {
	case component.HeartBreakIdle, component.HeartBreakTrembling, component.HeartBreakNone:
		vector.StrokeRect(screen, x+1, y+1, heartSize-2, heartSize-2, 2, colornames.Gold, false)
	}
}

// DrawText draws a line of debug text at x, y.
func DrawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = 14
	text.Draw(screen, s, face, op)
}
