package common

// Rect is an axis-aligned box anchored at its bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround builds a rect of the given size centered on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r *Rect) Intersects(other *Rect) bool {
	if r == nil || other == nil {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Circle is a disc used for round hit regions.
type Circle struct {
	Center Vec2
	Radius float64
}

// IntersectsRect reports whether the disc overlaps r.
func (c Circle) IntersectsRect(r Rect) bool {
	nx := Clamp(c.Center.X, r.X, r.X+r.Width)
	ny := Clamp(c.Center.Y, r.Y, r.Y+r.Height)
	d := Vec2{X: c.Center.X - nx, Y: c.Center.Y - ny}
	return d.LengthSq() <= c.Radius*c.Radius
}
