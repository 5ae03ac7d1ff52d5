package obj

import (
	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

// Body is the physics body a character drives.
type Body interface {
	Position() common.Vec2
	Velocity() common.Vec2
	SetVelocity(v common.Vec2)
	GravityScale() float64
	SetGravityScale(s float64)
}

// Sensors report contacts sampled after the last physics step.
type Sensors interface {
	Grounded() bool
	// TouchingWall reports a wall on the dir side (-1 left, 1 right).
	TouchingWall(dir float64) bool
	TouchingCeiling() bool
}

// HitQuery finds opponents inside a region that an attacker of the given
// faction may hit.
type HitQuery interface {
	Overlap(region common.Region, attacker component.Faction) []component.Target
}
