package ecs

import (
	"testing"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/obj"
)

type dummyTarget struct {
	pos   common.Vec2
	alive bool
}

func (d *dummyTarget) Position() common.Vec2       { return d.pos }
func (d *dummyTarget) TakeDamage(amount int, _ any) {}
func (d *dummyTarget) IsAlive() bool               { return d.alive }

func newTestPhysics(t *testing.T, rows ...string) (*World, *PhysicsWorld) {
	t.Helper()
	layout, err := obj.ParseArena(rows)
	if err != nil {
		t.Fatalf("ParseArena: %v", err)
	}
	w := NewWorld()
	pw := NewPhysicsWorld(layout, DefaultGravity)
	pw.Events = w.Events()
	w.SetPhysicsWorld(pw)
	return w, pw
}

func settle(pw *PhysicsWorld, steps int) {
	for i := 0; i < steps; i++ {
		pw.Step(1.0 / 60)
	}
}

var size = common.Vec2{X: 0.8, Y: 1.6}

func TestBodyLandsAndReportsGrounded(t *testing.T) {
	w, pw := newTestPhysics(t,
		"........",
		"........",
		"........",
		"........",
		"########",
	)
	e := CreateEntity(w)
	b := pw.AddBody(e, common.Vec2{X: 4, Y: 3.5}, size, component.FactionPlayer)
	if b.Grounded() {
		t.Fatalf("body should start airborne")
	}
	settle(pw, 120)
	if !b.Grounded() {
		t.Fatalf("body should be grounded after falling, at %v", b.Position())
	}
	if got := b.Position().Y; got < 1.7 || got > 1.9 {
		t.Fatalf("expected the body to rest on the floor near y=1.8, got %f", got)
	}
	if b.TouchingCeiling() {
		t.Fatalf("no ceiling above the body")
	}
	if pw.AddBody(e, common.Vec2{}, size, component.FactionPlayer) != b {
		t.Fatalf("AddBody should return the existing body")
	}
}

func TestGravityScaleZeroFloats(t *testing.T) {
	w, pw := newTestPhysics(t,
		"......",
		"......",
		"......",
		"######",
	)
	b := pw.AddBody(CreateEntity(w), common.Vec2{X: 3, Y: 2.5}, size, component.FactionPlayer)
	b.SetGravityScale(0)
	settle(pw, 30)
	if got := b.Position().Y; got != 2.5 {
		t.Fatalf("zero gravity scale should hold height, got %f", got)
	}
}

func TestTouchingWall(t *testing.T) {
	w, pw := newTestPhysics(t,
		"#.......",
		"#.......",
		"#.......",
		"########",
	)
	b := pw.AddBody(CreateEntity(w), common.Vec2{X: 1.42, Y: 1.8}, size, component.FactionPlayer)

	tests := []struct {
		name string
		dir  float64
		want bool
	}{
		{"left_wall", -1, true},
		{"open_right", 1, false},
		{"no_direction", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.TouchingWall(tc.dir); got != tc.want {
				t.Fatalf("TouchingWall(%v) = %v, want %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestTouchingCeiling(t *testing.T) {
	w, pw := newTestPhysics(t,
		"######",
		"......",
		"......",
		"######",
	)
	b := pw.AddBody(CreateEntity(w), common.Vec2{X: 3, Y: 2.18}, size, component.FactionPlayer)
	if !b.TouchingCeiling() {
		t.Fatalf("expected a ceiling just above the head")
	}
}

func TestOverlapRespectsFactions(t *testing.T) {
	w, pw := newTestPhysics(t,
		"..........",
		"..........",
		"##########",
	)
	player := pw.AddBody(CreateEntity(w), common.Vec2{X: 2, Y: 1.8}, size, component.FactionPlayer)
	enemy := pw.AddBody(CreateEntity(w), common.Vec2{X: 3.5, Y: 1.8}, size, component.FactionEnemy)
	playerTarget := &dummyTarget{pos: player.Position(), alive: true}
	enemyTarget := &dummyTarget{pos: enemy.Position(), alive: true}
	player.Target = playerTarget
	enemy.Target = enemyTarget

	box := common.Region{Shape: common.RegionBox, Center: common.Vec2{X: 3, Y: 1.8}, Size: common.Vec2{X: 1, Y: 1}}
	circle := common.Region{Shape: common.RegionCircle, Center: common.Vec2{X: 3, Y: 1.8}, Radius: 0.3}
	// bounding boxes overlap at the enemy's top-left corner, the circle does not
	corner := common.Region{Shape: common.RegionCircle, Center: common.Vec2{X: 2.9, Y: 2.8}, Radius: 0.25}

	tests := []struct {
		name     string
		region   common.Region
		attacker component.Faction
		want     component.Target
	}{
		{"player_box_hits_enemy", box, component.FactionPlayer, enemyTarget},
		{"player_circle_hits_enemy", circle, component.FactionPlayer, enemyTarget},
		{"enemy_box_misses_enemy", box, component.FactionEnemy, nil},
		{"circle_near_corner_misses", corner, component.FactionPlayer, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pw.Overlap(tc.region, tc.attacker)
			if tc.want == nil {
				if len(got) != 0 {
					t.Fatalf("expected no targets, got %v", got)
				}
				return
			}
			if len(got) != 1 || got[0] != tc.want {
				t.Fatalf("expected only %v, got %v", tc.want, got)
			}
		})
	}

	enemyTarget.alive = false
	if got := pw.Overlap(box, component.FactionPlayer); len(got) != 0 {
		t.Fatalf("dead targets should be skipped, got %v", got)
	}
}

func TestHazardEnterAndExitEvents(t *testing.T) {
	w, pw := newTestPhysics(t,
		"......",
		"......",
		"......",
		"^^^^^^",
		"######",
	)
	e := CreateEntity(w)
	b := pw.AddBody(e, common.Vec2{X: 3, Y: 3.5}, size, component.FactionPlayer)
	settle(pw, 120)
	if !pw.InHazard(e) {
		t.Fatalf("body resting in the hazard row should be in the hazard")
	}

	var enters int
	for _, evt := range w.Events().Drain() {
		ce, ok := evt.Data.(CollisionEvent)
		if evt.Type == EventCollision && ok && ce.Entity == e && ce.Kind == CollisionEventHazardEnter {
			enters++
			if ce.Source != (common.Vec2{X: 3, Y: 1.5}) {
				t.Fatalf("enter event should carry the hazard center, got %+v", ce.Source)
			}
		}
	}
	if enters != 1 {
		t.Fatalf("expected one hazard enter event, got %d", enters)
	}

	b.SetGravityScale(0)
	b.SetPosition(common.Vec2{X: 3, Y: 4})
	settle(pw, 2)
	if pw.InHazard(e) {
		t.Fatalf("body lifted out of the hazard should have left it")
	}
	pw.RemoveBody(e)
	if pw.Body(e) != nil {
		t.Fatalf("body should be gone after RemoveBody")
	}
}
