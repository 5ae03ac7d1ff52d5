package component

import (
	"github.com/milk9111/glitchknight/common"
	combat "github.com/milk9111/glitchknight/component"
)

// Collider asks the physics system for a box body of Size. The body is
// created on the first physics pass.
type Collider struct {
	Size    common.Vec2
	Faction combat.Faction
}

var ColliderComponent = NewComponent[Collider]()
