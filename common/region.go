package common

// RegionShape selects how a Region is tested.
type RegionShape int

const (
	RegionBox RegionShape = iota
	RegionCircle
)

// Region is a world-space hit area, either a box of Size or a disc of Radius
// around Center.
type Region struct {
	Shape  RegionShape
	Center Vec2
	Radius float64
	Size   Vec2
}

// Bounds returns the axis-aligned box enclosing the region.
func (r Region) Bounds() Rect {
	if r.Shape == RegionCircle {
		return RectAround(r.Center, r.Radius*2, r.Radius*2)
	}
	return RectAround(r.Center, r.Size.X, r.Size.Y)
}

// Overlaps reports whether the region touches o.
func (r Region) Overlaps(o Rect) bool {
	if r.Shape == RegionCircle {
		return Circle{Center: r.Center, Radius: r.Radius}.IntersectsRect(o)
	}
	b := r.Bounds()
	return b.Intersects(&o)
}
