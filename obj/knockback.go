package obj

import (
	"time"

	"github.com/milk9111/glitchknight/component"
)

// Knockback marks the window during which an external shove owns the
// horizontal velocity.
type Knockback struct {
	timer component.Timer
}

// Start opens the window for d.
func (k *Knockback) Start(now, d time.Duration) {
	if k == nil {
		return
	}
	k.timer.Start(now, d)
}

// Active reports whether the window is open at now.
func (k *Knockback) Active(now time.Duration) bool {
	return k != nil && k.timer.Active() && !k.timer.Ready(now)
}

// Update closes an elapsed window.
func (k *Knockback) Update(now time.Duration) {
	if k == nil {
		return
	}
	k.timer.Expired(now)
}
