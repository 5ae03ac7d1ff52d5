package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/component"
	"github.com/milk9111/glitchknight/obj"
)

// DrawArena fills solid cells and hazards.
func DrawArena(screen *ebiten.Image, a *obj.Arena, view View) {
	if screen == nil || a == nil {
		return
	}
	for _, r := range a.Solids {
		x, y, w, h := view.Rect(r)
		vector.FillRect(screen, x, y, w, h, colornames.Slategray, false)
	}
	for _, r := range a.Hazards {
		x, y, w, h := view.Rect(r)
		vector.FillRect(screen, x, y, w, h, colornames.Darkred, false)
	}
}

// DrawCharacters draws every player and enemy body. With debug on, the
// enemy swing region and state labels are drawn too.
func DrawCharacters(screen *ebiten.Image, w *ecs.World, view View, debug bool) {
	if screen == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	ecs.ForEach(w, component.ControllerComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller) {
		sw := ctrl.Switcher
		body := pw.Body(e)
		if sw == nil || body == nil {
			return
		}
		p := sw.Active()
		c := colornames.Steelblue
		if sw.Mode() == obj.ModeGlitch {
			c = colornames.Magenta
		}
		if p.Invincible() {
			c = colornames.White
		}
		drawBody(screen, view, body.Bounds(), c, sw.Active().Facing())
		if p.GuardActive() {
			x, y, bw, bh := view.Rect(body.Bounds())
			vector.StrokeRect(screen, x-3, y-3, bw+6, bh+6, 2, colornames.Gold, false)
		}
		if debug {
			drawLabel(screen, view, body.Bounds(), fmt.Sprintf("%s g:%v", p.State(), p.Grounded()))
		}
	})
	ecs.ForEach(w, component.EnemyRefComponent.Kind(), func(e ecs.Entity, ref *component.EnemyRef) {
		en := ref.Enemy
		if en == nil || en.Removed() {
			return
		}
		c := colornames.Crimson
		if !en.IsAlive() {
			c = colornames.Dimgray
		}
		drawBody(screen, view, en.Bounds(), c, en.Facing())
		if en.AttackHitboxActive() {
			drawRegion(screen, view, en.AttackRegion())
		}
		if debug {
			drawLabel(screen, view, en.Bounds(), fmt.Sprintf("hp:%d next:%.2fs", en.Health(), en.NextSwing().Seconds()))
		}
	})
}

func drawBody(screen *ebiten.Image, view View, r common.Rect, c color.RGBA, facing float64) {
	x, y, w, h := view.Rect(r)
	vector.FillRect(screen, x, y, w, h, c, false)
	eye := x + w*0.75
	if facing < 0 {
		eye = x + w*0.25
	}
	vector.FillRect(screen, eye-2, y+h*0.25, 4, 4, colornames.Black, false)
}

func drawRegion(screen *ebiten.Image, view View, r common.Region) {
	if r.Shape == common.RegionCircle {
		cx, cy := view.Point(r.Center)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r.Radius*view.Scale), 2, colornames.Orange, false)
		return
	}
	x, y, w, h := view.Rect(r.Bounds())
	vector.StrokeRect(screen, x, y, w, h, 2, colornames.Orange, false)
}

func drawLabel(screen *ebiten.Image, view View, r common.Rect, s string) {
	x, y, _, _ := view.Rect(r)
	DrawText(screen, s, float64(x), float64(y)-16, colornames.Lightgray)
}
