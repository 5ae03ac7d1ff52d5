package entity

import (
	"fmt"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/obj"
	"github.com/milk9111/glitchknight/prefabs"
)

var regionVariants = map[string]obj.AttackVariant{
	"forward": obj.AttackForward,
	"up":      obj.AttackUpward,
	"down":    obj.AttackDownward,
	"wall":    obj.AttackWall,
}

func hitRegion(s prefabs.RegionSpec) (obj.HitRegion, error) {
	r := obj.HitRegion{
		Offset: common.Vec2{X: s.OffsetX, Y: s.OffsetY},
		Radius: s.Radius,
		Size:   common.Vec2{X: s.Width, Y: s.Height},
	}
	switch s.Shape {
	case "circle":
		r.Shape = common.RegionCircle
	case "box", "":
		r.Shape = common.RegionBox
	default:
		return obj.HitRegion{}, fmt.Errorf("entity: unknown region shape %q", s.Shape)
	}
	return r, nil
}

// PlayerConfig converts a form spec. Regions missing from the spec keep the
// default tuning.
func PlayerConfig(f prefabs.FormSpec) (obj.PlayerConfig, error) {
	cfg := obj.DefaultPlayerConfig()
	cfg.MoveSpeed = f.MoveSpeed
	cfg.JumpForce = f.JumpForce
	cfg.DoubleJumpFactor = f.DoubleJumpFactor
	cfg.GravityScale = f.GravityScale
	cfg.MaxFallSpeed = f.MaxFallSpeed

	cfg.WallSlideSpeed = f.WallSlideSpeed
	cfg.WallSlideMinFall = f.WallSlideMinFall
	cfg.WallJumpForce = f.WallJumpForce
	cfg.WallJumpDuration = f.WallJumpDuration.Duration()
	cfg.WallExitGrace = f.WallExitGrace.Duration()
	cfg.WallJumpBuffer = f.WallJumpBuffer.Duration()
	cfg.VerticalThreshold = f.VerticalThreshold

	cfg.DashSpeed = f.DashSpeed
	cfg.DashDuration = f.DashDuration.Duration()
	cfg.DashCooldown = f.DashCooldown.Duration()

	cfg.AttackDelay = f.AttackDelay.Duration()
	cfg.ComboReset = f.ComboReset.Duration()
	cfg.AttackHitDelay = f.AttackHitDelay.Duration()
	cfg.AttackDuration = f.AttackDuration.Duration()
	cfg.AttackDamage = f.AttackDamage
	cfg.AttackKnockbackForce = f.AttackKnockbackForce
	cfg.AttackManaReward = f.AttackManaReward
	for name, spec := range f.Regions {
		variant, ok := regionVariants[name]
		if !ok {
			return obj.PlayerConfig{}, fmt.Errorf("entity: unknown attack region %q", name)
		}
		r, err := hitRegion(spec)
		if err != nil {
			return obj.PlayerConfig{}, err
		}
		cfg.Regions[variant] = r
	}

	cfg.SkillHitDelay = f.SkillHitDelay.Duration()
	cfg.SkillDuration = f.SkillDuration.Duration()
	cfg.SkillDamage = f.SkillDamage
	if f.SkillRegion != (prefabs.RegionSpec{}) {
		r, err := hitRegion(f.SkillRegion)
		if err != nil {
			return obj.PlayerConfig{}, err
		}
		cfg.SkillRegion = r
	}

	cfg.HealDuration = f.HealDuration.Duration()
	cfg.HealCooldown = f.HealCooldown.Duration()
	cfg.HealCost = f.HealCost

	cfg.InvincibilityDuration = f.InvincibilityDuration.Duration()
	cfg.HitStunDuration = f.HitStunDuration.Duration()
	cfg.KnockbackDuration = f.KnockbackDuration.Duration()
	cfg.LandDuration = f.LandDuration.Duration()

	cfg.PerfectWindow = f.PerfectWindow.Duration()
	cfg.ParryManaReward = f.ParryManaReward
	cfg.GuardKnockbackForce = f.GuardKnockbackForce
	cfg.ParrySlowScale = f.ParrySlowScale
	cfg.ParrySlowDuration = f.ParrySlowDuration.Duration()
	cfg.GuardSlowScale = f.GuardSlowScale
	cfg.GuardSlowDuration = f.GuardSlowDuration.Duration()
	return cfg, nil
}

// EnemyConfig converts an enemy spec.
func EnemyConfig(s prefabs.EnemySpec) (obj.EnemyConfig, error) {
	region, err := hitRegion(s.AttackRegion)
	if err != nil {
		return obj.EnemyConfig{}, fmt.Errorf("entity: enemy %s: %w", s.Name, err)
	}
	return obj.EnemyConfig{
		Health:            s.Health,
		HitDelay:          s.HitDelay.Duration(),
		DeathDelay:        s.DeathDelay.Duration(),
		ContactDamage:     s.ContactDamage,
		ContactKnockback:  s.ContactKnockback,
		Size:              common.Vec2{X: s.Size.X, Y: s.Size.Y},
		AttackInterval:    s.AttackInterval.Duration(),
		AttackActive:      s.AttackActive.Duration(),
		AttackDamage:      s.AttackDamage,
		AttackRegion:      region,
		KnockbackDuration: s.KnockbackDuration.Duration(),
	}, nil
}
