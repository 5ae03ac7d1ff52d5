// Package render draws an arena world with ebiten. World space is y-up in
// cells; the screen is y-down in pixels.
package render

import "github.com/milk9111/glitchknight/common"

// View maps world cells onto the screen.
type View struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	// Height is the world height in cells, used to flip the y axis.
	Height float64
}

// FitView centers a width x height arena on a screen of the given size.
func FitView(width, height, screenW, screenH float64) View {
	if width <= 0 || height <= 0 {
		return View{Scale: 1, Height: height}
	}
	scale := screenW / width
	if s := screenH / height; s < scale {
		scale = s
	}
	return View{
		Scale:   scale,
		OffsetX: (screenW - width*scale) / 2,
		OffsetY: (screenH - height*scale) / 2,
		Height:  height,
	}
}

// Point returns the screen position of a world point.
func (v View) Point(p common.Vec2) (float64, float64) {
	return v.OffsetX + p.X*v.Scale, v.OffsetY + (v.Height-p.Y)*v.Scale
}

// Rect returns the screen box of a world rect as x, y, w, h.
func (v View) Rect(r common.Rect) (float32, float32, float32, float32) {
	x, y := v.Point(common.Vec2{X: r.X, Y: r.Y + r.Height})
	return float32(x), float32(y), float32(r.Width * v.Scale), float32(r.Height * v.Scale)
}
