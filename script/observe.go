package script

import (
	"time"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/glitchknight/obj"
)

// Observation is what a script sees of the fight on one tick.
type Observation struct {
	Tick int
	Time time.Duration

	State      string
	Mode       string
	Health     int
	Breaks     int
	Mana       int
	ParryPhase string
	Grounded   bool
	Invincible bool

	EnemyAlive    bool
	EnemyHealth   int
	EnemyDistance float64
	EnemySwinging bool
	// EnemyWindup is the time before the enemy's next swing.
	EnemyWindup time.Duration
}

// Observe snapshots the player and, when non-nil, the nearest enemy.
func Observe(tick int, now time.Duration, sw *obj.ModeSwitcher, enemy *obj.Enemy) Observation {
	o := Observation{Tick: tick, Time: now}
	if p := sw.Active(); p != nil {
		o.State = p.State().String()
		o.Mode = sw.Mode().String()
		o.Health = p.Hearts.Health()
		o.Breaks = p.Hearts.BreakCount()
		o.Mana = p.Mana.Current()
		o.ParryPhase = p.ParryPhase().String()
		o.Grounded = p.Grounded()
		o.Invincible = p.Invincible()
	}
	if enemy != nil && enemy.IsAlive() {
		o.EnemyAlive = true
		o.EnemyHealth = enemy.Health()
		o.EnemyDistance = enemy.Position().X - sw.Position().X
		o.EnemySwinging = enemy.AttackHitboxActive()
		o.EnemyWindup = enemy.NextSwing()
	}
	return o
}

func (o Observation) object() *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"tick":           &tengo.Int{Value: int64(o.Tick)},
		"time":           &tengo.Float{Value: o.Time.Seconds()},
		"state":          &tengo.String{Value: o.State},
		"mode":           &tengo.String{Value: o.Mode},
		"health":         &tengo.Int{Value: int64(o.Health)},
		"breaks":         &tengo.Int{Value: int64(o.Breaks)},
		"mana":           &tengo.Int{Value: int64(o.Mana)},
		"parry_phase":    &tengo.String{Value: o.ParryPhase},
		"grounded":       boolObject(o.Grounded),
		"invincible":     boolObject(o.Invincible),
		"enemy_alive":    boolObject(o.EnemyAlive),
		"enemy_health":   &tengo.Int{Value: int64(o.EnemyHealth)},
		"enemy_distance": &tengo.Float{Value: o.EnemyDistance},
		"enemy_swinging": boolObject(o.EnemySwinging),
		"enemy_windup":   &tengo.Float{Value: o.EnemyWindup.Seconds()},
	}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
