package common

import "testing"

func TestSign(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"positive", 3, 1},
		{"negative", -2, -1},
		{"zero_breaks_negative", 0, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Sign(c.in); got != c.want {
				t.Fatalf("Sign(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 2, Height: 2}
	cases := []struct {
		name string
		c    Circle
		want bool
	}{
		{"inside", Circle{Center: Vec2{X: 1, Y: 1}, Radius: 0.1}, true},
		{"touching_edge", Circle{Center: Vec2{X: 3, Y: 1}, Radius: 1}, true},
		{"far", Circle{Center: Vec2{X: 5, Y: 5}, Radius: 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.c.IntersectsRect(r); got != c.want {
				t.Fatalf("IntersectsRect = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRegionOverlaps(t *testing.T) {
	target := Rect{X: 1, Y: 0, Width: 1, Height: 2}
	cases := []struct {
		name string
		r    Region
		want bool
	}{
		{"box_hit", Region{Shape: RegionBox, Center: Vec2{X: 0.8, Y: 1}, Size: Vec2{X: 1, Y: 1}}, true},
		{"box_miss", Region{Shape: RegionBox, Center: Vec2{X: -1, Y: 1}, Size: Vec2{X: 1, Y: 1}}, false},
		{"circle_hit", Region{Shape: RegionCircle, Center: Vec2{X: 0.6, Y: 1}, Radius: 0.5}, true},
		{"circle_miss", Region{Shape: RegionCircle, Center: Vec2{X: 0, Y: 1}, Radius: 0.5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.Overlaps(target); got != c.want {
				t.Fatalf("Overlaps = %v, want %v", got, c.want)
			}
		})
	}
}
