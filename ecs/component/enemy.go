package component

import "github.com/milk9111/glitchknight/obj"

// EnemyRef binds an entity to its opponent logic.
type EnemyRef struct {
	Enemy *obj.Enemy
}

var EnemyRefComponent = NewComponent[EnemyRef]()
