package obj

import (
	"time"

	"github.com/milk9111/glitchknight/common"
)

// PlayerConfig holds the tuning of one character form. Velocities are in
// world units per second, y up.
type PlayerConfig struct {
	MoveSpeed        float64
	JumpForce        float64
	DoubleJumpFactor float64
	GravityScale     float64
	MaxFallSpeed     float64

	WallSlideSpeed    float64
	WallSlideMinFall  float64
	WallJumpForce     float64
	WallJumpDuration  time.Duration
	WallExitGrace     time.Duration
	WallJumpBuffer    time.Duration
	VerticalThreshold float64

	DashSpeed    float64
	DashDuration time.Duration
	DashCooldown time.Duration

	AttackDelay          time.Duration
	ComboReset           time.Duration
	AttackHitDelay       time.Duration
	AttackDuration       time.Duration
	AttackDamage         int
	AttackKnockbackForce float64
	AttackManaReward     int
	Regions              map[AttackVariant]HitRegion

	SkillHitDelay time.Duration
	SkillDuration time.Duration
	SkillDamage   int
	SkillRegion   HitRegion

	HealDuration time.Duration
	HealCooldown time.Duration
	HealCost     int

	InvincibilityDuration time.Duration
	HitStunDuration       time.Duration
	KnockbackDuration     time.Duration
	LandDuration          time.Duration

	PerfectWindow       time.Duration
	ParryManaReward     int
	GuardKnockbackForce float64
	ParrySlowScale      float64
	ParrySlowDuration   time.Duration
	GuardSlowScale      float64
	GuardSlowDuration   time.Duration
}

// DefaultPlayerConfig returns the tuning of the normal form.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MoveSpeed:        5,
		JumpForce:        15,
		DoubleJumpFactor: 2.0 / 3.0,
		GravityScale:     3,
		MaxFallSpeed:     12,

		WallSlideSpeed:    1,
		WallSlideMinFall:  0.5,
		WallJumpForce:     18,
		WallJumpDuration:  300 * time.Millisecond,
		WallExitGrace:     50 * time.Millisecond,
		WallJumpBuffer:    150 * time.Millisecond,
		VerticalThreshold: 0.5,

		DashSpeed:    20,
		DashDuration: 200 * time.Millisecond,
		DashCooldown: 500 * time.Millisecond,

		AttackDelay:          300 * time.Millisecond,
		ComboReset:           500 * time.Millisecond,
		AttackHitDelay:       100 * time.Millisecond,
		AttackDuration:       250 * time.Millisecond,
		AttackDamage:         10,
		AttackKnockbackForce: 3,
		AttackManaReward:     10,
		Regions: map[AttackVariant]HitRegion{
			AttackForward:  {Shape: common.RegionCircle, Offset: common.Vec2{X: 0.7, Y: 0}, Radius: 0.5},
			AttackUpward:   {Shape: common.RegionBox, Offset: common.Vec2{X: 0, Y: 1}, Size: common.Vec2{X: 1.2, Y: 1}},
			AttackDownward: {Shape: common.RegionBox, Offset: common.Vec2{X: 0, Y: -1}, Size: common.Vec2{X: 1.2, Y: 1}},
			AttackWall:     {Shape: common.RegionCircle, Offset: common.Vec2{X: -0.7, Y: 0}, Radius: 0.5},
		},

		SkillHitDelay: 150 * time.Millisecond,
		SkillDuration: 500 * time.Millisecond,
		SkillDamage:   20,
		SkillRegion:   HitRegion{Shape: common.RegionBox, Offset: common.Vec2{X: 1.5, Y: 0}, Size: common.Vec2{X: 3, Y: 1}},

		HealDuration: 2 * time.Second,
		HealCooldown: 500 * time.Millisecond,
		HealCost:     30,

		InvincibilityDuration: 500 * time.Millisecond,
		HitStunDuration:       300 * time.Millisecond,
		KnockbackDuration:     200 * time.Millisecond,
		LandDuration:          100 * time.Millisecond,

		PerfectWindow:       200 * time.Millisecond,
		ParryManaReward:     10,
		GuardKnockbackForce: 3,
		ParrySlowScale:      0.2,
		ParrySlowDuration:   300 * time.Millisecond,
		GuardSlowScale:      0.6,
		GuardSlowDuration:   100 * time.Millisecond,
	}
}

// GlitchPlayerConfig returns the tuning of the glitch form: quicker and
// harder hitting. Guard timing is shared with the normal form.
func GlitchPlayerConfig() PlayerConfig {
	c := DefaultPlayerConfig()
	c.MoveSpeed = 6.5
	c.DashSpeed = 26
	c.DashCooldown = 350 * time.Millisecond
	c.AttackDelay = 220 * time.Millisecond
	c.AttackDamage = 14
	return c
}
