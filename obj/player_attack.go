package obj

import (
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

// AttackVariant selects the swing and its hit region.
type AttackVariant int

const (
	AttackForward AttackVariant = iota
	AttackUpward
	AttackDownward
	AttackWall
)

func (v AttackVariant) String() string {
	switch v {
	case AttackForward:
		return "forward"
	case AttackUpward:
		return "upward"
	case AttackDownward:
		return "downward"
	case AttackWall:
		return "wall"
	default:
		return "unknown"
	}
}

// HitRegion is a hit area relative to the character facing right. Offset.X
// is mirrored when facing left.
type HitRegion struct {
	Shape  common.RegionShape
	Offset common.Vec2
	Radius float64
	Size   common.Vec2
}

// At places the region in the world for a character at origin.
func (h HitRegion) At(origin common.Vec2, facing float64) common.Region {
	return common.Region{
		Shape:  h.Shape,
		Center: common.Vec2{X: origin.X + h.Offset.X*facing, Y: origin.Y + h.Offset.Y},
		Radius: h.Radius,
		Size:   h.Size,
	}
}

// Attack starts a melee swing. The variant follows the wall slide and the
// vertical input; forward swings alternate through the combo.
func (p *Player) Attack() bool {
	if p == nil {
		return false
	}
	now := p.now()
	if !p.attackDelay.Ready(now) || p.parry.Active() {
		return false
	}
	if !p.machine.TryTransition(ActionAttack) {
		return false
	}
	p.preempt(ActionAttack)
	p.attackDelay.Arm(now, p.Config.AttackDelay)

	variant := p.selectVariant()
	p.attackVariant = variant
	switch variant {
	case AttackWall:
		p.emit(component.CueAttackWall)
	case AttackUpward:
		p.emit(component.CueAttackUp)
	case AttackDownward:
		p.emit(component.CueAttackDown)
	default:
		step := p.combo.Next(now, p.Config.ComboReset)
		p.Cues.Emit(component.Cue{Name: component.CueAttackForward, Index: step})
	}

	p.attackActivation = p.Resolver.Begin(p)
	p.attackHit.Start(now, p.Config.AttackHitDelay)
	p.attackEnd.Start(now, p.Config.AttackDuration)
	return true
}

func (p *Player) selectVariant() AttackVariant {
	threshold := p.Config.VerticalThreshold
	switch {
	case p.wallSliding:
		return AttackWall
	case p.move.Y > threshold:
		return AttackUpward
	case !p.grounded && p.move.Y < -threshold:
		return AttackDownward
	default:
		return AttackForward
	}
}

func (p *Player) updateAttack(now time.Duration) {
	if p.attackHit.Expired(now) {
		p.performAttack(p.attackVariant)
	}
	if p.attackEnd.Expired(now) {
		if p.machine.Current() == ActionAttack {
			p.machine.ForceReset(ActionIdle)
		}
		p.refreshAirborneCue()
		p.emit(component.CueAttackEnd)
	}
}

// performAttack resolves the swing once. Any contact grants the mana reward.
func (p *Player) performAttack(variant AttackVariant) int {
	region, ok := p.Config.Regions[variant]
	if !ok {
		return 0
	}
	n := p.strike(region, p.Config.AttackDamage, p.attackActivation)
	if n > 0 {
		p.Mana.Gain(p.Config.AttackManaReward)
	}
	return n
}

func (p *Player) strike(region HitRegion, base int, activation uint64) int {
	if p.Hits == nil {
		return 0
	}
	origin := p.Position()
	targets := p.Hits.Overlap(region.At(origin, p.facing), p.Faction)
	dmg := component.Damage{
		Amount:    p.Buffs.Scale(component.BuffDamageUp, base),
		Knockback: p.Config.AttackKnockbackForce,
		Faction:   p.Faction,
	}
	return p.Resolver.Strike(p, activation, targets, dmg, origin)
}

// cancelAttack drops a pending hit and the swing's completion.
func (p *Player) cancelAttack() {
	p.attackHit.Stop()
	p.attackEnd.Stop()
}
