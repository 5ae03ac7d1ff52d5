package component

// Transform is the center of an entity in world units, y up. The physics
// system writes it after every step.
type Transform struct {
	X      float64
	Y      float64
	Facing float64
}

var TransformComponent = NewComponent[Transform]()
