package component

import "github.com/milk9111/glitchknight/obj"

// Arena is the singleton room entity's layout.
type Arena struct {
	Layout *obj.Arena
}

var ArenaComponent = NewComponent[Arena]()
