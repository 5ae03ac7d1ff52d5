package component

import "github.com/milk9111/glitchknight/obj"

// Input buffers intents for an entity until the input system forwards them.
type Input struct {
	Queue *obj.Input
}

var InputComponent = NewComponent[Input]()
