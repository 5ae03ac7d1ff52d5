package component

import "github.com/milk9111/glitchknight/obj"

// Controller holds the player's two forms and routes intents to the active
// one.
type Controller struct {
	Switcher *obj.ModeSwitcher
}

var ControllerComponent = NewComponent[Controller]()
