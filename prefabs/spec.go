package prefabs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrUnknownSpec = errors.New("prefabs: unknown spec")

// Default spec files.
const (
	PlayerFile = "player.yaml"
	EnemyFile  = "enemy.yaml"
	ArenaFile  = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SpecKind names the spec type a file holds.
type SpecKind string

const (
	KindPlayer SpecKind = "player"
	KindEnemy  SpecKind = "enemy"
	KindArena  SpecKind = "arena"
)

// KindOf maps a spec file name to its kind. Files are matched on their base
// name so any "*player.yaml" is a player spec.
func KindOf(path string) (SpecKind, error) {
	base := strings.ToLower(filepath.Base(path))
	if !isSpecFile(base) {
		return "", fmt.Errorf("%w: %s", ErrUnknownSpec, path)
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	for _, k := range []SpecKind{KindPlayer, KindEnemy, KindArena} {
		if strings.HasSuffix(name, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSpec, path)
}

// Seconds is a duration written as a float number of seconds.
type Seconds float64

func (s Seconds) Duration() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RegionSpec is a hit area relative to its owner, x mirrored by facing.
type RegionSpec struct {
	Shape   string  `yaml:"shape"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Radius  float64 `yaml:"radius"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// FormSpec tunes one player form.
type FormSpec struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	JumpForce        float64 `yaml:"jump_force"`
	DoubleJumpFactor float64 `yaml:"double_jump_factor"`
	GravityScale     float64 `yaml:"gravity_scale"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`

	WallSlideSpeed    float64 `yaml:"wall_slide_speed"`
	WallSlideMinFall  float64 `yaml:"wall_slide_min_fall"`
	WallJumpForce     float64 `yaml:"wall_jump_force"`
	WallJumpDuration  Seconds `yaml:"wall_jump_duration"`
	WallExitGrace     Seconds `yaml:"wall_exit_grace"`
	WallJumpBuffer    Seconds `yaml:"wall_jump_buffer"`
	VerticalThreshold float64 `yaml:"vertical_threshold"`

	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration Seconds `yaml:"dash_duration"`
	DashCooldown Seconds `yaml:"dash_cooldown"`

	AttackDelay          Seconds               `yaml:"attack_delay"`
	ComboReset           Seconds               `yaml:"combo_reset"`
	AttackHitDelay       Seconds               `yaml:"attack_hit_delay"`
	AttackDuration       Seconds               `yaml:"attack_duration"`
	AttackDamage         int                   `yaml:"attack_damage"`
	AttackKnockbackForce float64               `yaml:"attack_knockback_force"`
	AttackManaReward     int                   `yaml:"attack_mana_reward"`
	Regions              map[string]RegionSpec `yaml:"regions"`

	SkillHitDelay Seconds    `yaml:"skill_hit_delay"`
	SkillDuration Seconds    `yaml:"skill_duration"`
	SkillDamage   int        `yaml:"skill_damage"`
	SkillRegion   RegionSpec `yaml:"skill_region"`

	HealDuration Seconds `yaml:"heal_duration"`
	HealCooldown Seconds `yaml:"heal_cooldown"`
	HealCost     int     `yaml:"heal_cost"`

	InvincibilityDuration Seconds `yaml:"invincibility_duration"`
	HitStunDuration       Seconds `yaml:"hit_stun_duration"`
	KnockbackDuration     Seconds `yaml:"knockback_duration"`
	LandDuration          Seconds `yaml:"land_duration"`

	PerfectWindow       Seconds `yaml:"perfect_window"`
	ParryManaReward     int     `yaml:"parry_mana_reward"`
	GuardKnockbackForce float64 `yaml:"guard_knockback_force"`
	ParrySlowScale      float64 `yaml:"parry_slow_scale"`
	ParrySlowDuration   Seconds `yaml:"parry_slow_duration"`
	GuardSlowScale      float64 `yaml:"guard_slow_scale"`
	GuardSlowDuration   Seconds `yaml:"guard_slow_duration"`
}

type ManaSpec struct {
	Slots        int `yaml:"slots"`
	CellsPerSlot int `yaml:"cells_per_slot"`
	CellSize     int `yaml:"cell_size"`
}

type BuffSpec struct {
	Duration    Seconds   `yaml:"duration"`
	Multipliers []float64 `yaml:"multipliers"`
}

// PlayerSpec holds both forms. The glitch section only lists the fields
// that differ from the normal form.
type PlayerSpec struct {
	Name           string    `yaml:"name"`
	Hearts         int       `yaml:"hearts"`
	Mana           ManaSpec  `yaml:"mana"`
	DamageUp       BuffSpec  `yaml:"damage_up"`
	Size           Vec2Spec  `yaml:"size"`
	SwitchCooldown Seconds   `yaml:"switch_cooldown"`
	Normal         yaml.Node `yaml:"normal"`
	Glitch         yaml.Node `yaml:"glitch"`
}

// NormalForm decodes the normal form.
func (s *PlayerSpec) NormalForm() (FormSpec, error) {
	var f FormSpec
	if err := decodeOnto(&s.Normal, &f); err != nil {
		return FormSpec{}, fmt.Errorf("prefabs: player %s normal: %w", s.Name, err)
	}
	return f, nil
}

// GlitchForm decodes the glitch section over the normal form.
func (s *PlayerSpec) GlitchForm() (FormSpec, error) {
	f, err := s.NormalForm()
	if err != nil {
		return FormSpec{}, err
	}
	regions := make(map[string]RegionSpec, len(f.Regions))
	for k, v := range f.Regions {
		regions[k] = v
	}
	f.Regions = regions
	if err := decodeOnto(&s.Glitch, &f); err != nil {
		return FormSpec{}, fmt.Errorf("prefabs: player %s glitch: %w", s.Name, err)
	}
	return f, nil
}

func decodeOnto(node *yaml.Node, out any) error {
	if node == nil || node.Kind == 0 {
		return nil
	}
	return node.Decode(out)
}

type EnemySpec struct {
	Name              string     `yaml:"name"`
	Health            int        `yaml:"health"`
	HitDelay          Seconds    `yaml:"hit_delay"`
	DeathDelay        Seconds    `yaml:"death_delay"`
	ContactDamage     int        `yaml:"contact_damage"`
	ContactKnockback  float64    `yaml:"contact_knockback"`
	Size              Vec2Spec   `yaml:"size"`
	AttackInterval    Seconds    `yaml:"attack_interval"`
	AttackActive      Seconds    `yaml:"attack_active"`
	AttackDamage      int        `yaml:"attack_damage"`
	AttackRegion      RegionSpec `yaml:"attack_region"`
	KnockbackDuration Seconds    `yaml:"knockback_duration"`
}

type HazardSpec struct {
	Damage    int     `yaml:"damage"`
	Knockback float64 `yaml:"knockback"`
}

// ArenaSpec describes a room: its layout rows (top row first), gravity and
// which specs populate it.
type ArenaSpec struct {
	Name    string     `yaml:"name"`
	Gravity float64    `yaml:"gravity"`
	Layout  []string   `yaml:"layout"`
	Hazard  HazardSpec `yaml:"hazard"`
	Player  string     `yaml:"player"`
	Enemy   string     `yaml:"enemy"`
}
