package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/obj"
)

// DefaultGravity is the base downward acceleration in units per second
// squared. Bodies scale it by their own gravity scale.
const DefaultGravity = -9.81

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeHazard
	collisionTypeBody
)

// Shape filter categories.
const (
	categoryStatic uint = 1 << iota
	categoryHazard
	categoryNeutral
	categoryPlayer
	categoryEnemy
	categoryEnvironment
)

const (
	probeDistance = 0.05
	probeInset    = 0.1
)

var factions = []component.Faction{
	component.FactionNeutral,
	component.FactionPlayer,
	component.FactionEnemy,
	component.FactionEnvironment,
}

func factionCategory(f component.Faction) uint {
	switch f {
	case component.FactionPlayer:
		return categoryPlayer
	case component.FactionEnemy:
		return categoryEnemy
	case component.FactionEnvironment:
		return categoryEnvironment
	default:
		return categoryNeutral
	}
}

// hitMask returns the categories an attacker of f may hit.
func hitMask(f component.Faction) uint {
	var mask uint
	for _, t := range factions {
		if f.CanHit(t) {
			mask |= factionCategory(t)
		}
	}
	return mask
}

var staticFilter = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categoryStatic)

// PhysicsWorld owns the Chipmunk space, the static arena shapes and one
// dynamic body per character. It answers ground, wall and ceiling probes
// and attack region queries.
type PhysicsWorld struct {
	arena         *obj.Arena
	space         *cp.Space
	handlersReady bool

	bodies        map[Entity]*PhysicsBody
	shapeToEntity map[*cp.Shape]Entity
	hazards       map[Entity]int

	// Events receives hazard collision events when set.
	Events *EventQueue
}

// NewPhysicsWorld creates a physics world for an arena.
func NewPhysicsWorld(arena *obj.Arena, gravity float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	pw := &PhysicsWorld{
		arena:         arena,
		space:         space,
		bodies:        make(map[Entity]*PhysicsBody),
		shapeToEntity: make(map[*cp.Shape]Entity),
		hazards:       make(map[Entity]int),
	}
	pw.buildStaticShapes()
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Arena returns the arena the world was built from.
func (pw *PhysicsWorld) Arena() *obj.Arena {
	if pw == nil {
		return nil
	}
	return pw.arena
}

func (pw *PhysicsWorld) buildStaticShapes() {
	if pw == nil || pw.space == nil || pw.arena == nil {
		return
	}
	for _, r := range pw.arena.Solids {
		shape := cp.NewBox2(pw.space.StaticBody, rectBB(r), 0)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryStatic, cp.ALL_CATEGORIES))
		pw.space.AddShape(shape)
	}
	for _, r := range pw.arena.Hazards {
		shape := cp.NewBox2(pw.space.StaticBody, rectBB(r), 0)
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeHazard)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryHazard, categoryPlayer))
		pw.space.AddShape(shape)
	}

	worldW := float64(pw.arena.Width)
	worldH := float64(pw.arena.Height)
	if worldW <= 0 || worldH <= 0 {
		return
	}
	segments := []struct{ a, b cp.Vector }{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 0.1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryStatic, cp.ALL_CATEGORIES))
		pw.space.AddShape(shape)
	}
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}
	hazard := pw.space.NewCollisionHandler(collisionTypeBody, collisionTypeHazard)
	hazard.UserData = pw
	hazard.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		if e, other, ok := world.arbiterEntity(arb); ok {
			world.hazards[e]++
			if world.hazards[e] == 1 {
				c := other.BB().Center()
				world.Events.Push(Event{Type: EventCollision, Data: CollisionEvent{
					Entity: e,
					Kind:   CollisionEventHazardEnter,
					Source: common.Vec2{X: c.X, Y: c.Y},
				}})
			}
		}
		return true
	}
	hazard.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return
		}
		if e, _, ok := world.arbiterEntity(arb); ok && world.hazards[e] > 0 {
			world.hazards[e]--
			if world.hazards[e] == 0 {
				world.Events.Push(Event{Type: EventCollision, Data: CollisionEvent{Entity: e, Kind: CollisionEventHazardExit}})
			}
		}
	}
	pw.handlersReady = true
}

// arbiterEntity returns the entity of the body shape and the other shape.
func (pw *PhysicsWorld) arbiterEntity(arb *cp.Arbiter) (Entity, *cp.Shape, bool) {
	a, b := arb.Shapes()
	if e, ok := pw.shapeToEntity[a]; ok {
		return e, b, true
	}
	e, ok := pw.shapeToEntity[b]
	return e, a, ok
}

// InHazard reports whether e overlaps a hazard.
func (pw *PhysicsWorld) InHazard(e Entity) bool {
	return pw != nil && pw.hazards[e] > 0
}

// AddBody creates a box body of size centered on pos. target is what
// attack queries return for the body and may be set later.
func (pw *PhysicsWorld) AddBody(e Entity, pos, size common.Vec2, faction component.Faction) *PhysicsBody {
	if pw == nil || pw.space == nil {
		return nil
	}
	if b := pw.bodies[e]; b != nil {
		return b
	}
	cpBody := cp.NewBody(1, math.Inf(1))
	cpBody.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	shape := cp.NewBox(cpBody, size.X, size.Y, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeBody)
	cat := factionCategory(faction)
	mask := categoryStatic
	if faction == component.FactionPlayer {
		mask |= categoryHazard
	}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, cat, mask))

	body := &PhysicsBody{
		world:        pw,
		entity:       e,
		body:         cpBody,
		shape:        shape,
		size:         size,
		faction:      faction,
		gravityScale: 1,
	}
	cpBody.UserData = body
	shape.UserData = body
	cpBody.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, gravity.Mult(body.gravityScale), damping, dt)
	})

	pw.space.AddBody(cpBody)
	pw.space.AddShape(shape)
	pw.bodies[e] = body
	pw.shapeToEntity[shape] = e
	log.Printf("PhysicsWorld: AddBody entity %s faction=%s", e, faction)
	return body
}

// Body returns the body of e.
func (pw *PhysicsWorld) Body(e Entity) *PhysicsBody {
	if pw == nil {
		return nil
	}
	return pw.bodies[e]
}

// RemoveBody drops e's body from the space.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil {
		return
	}
	b := pw.bodies[e]
	if b == nil {
		return
	}
	pw.space.RemoveShape(b.shape)
	pw.space.RemoveBody(b.body)
	delete(pw.shapeToEntity, b.shape)
	delete(pw.bodies, e)
	delete(pw.hazards, e)
}

// Step advances the physics simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// touching reports static geometry within probeDistance of any point.
func (pw *PhysicsWorld) touching(points ...cp.Vector) bool {
	for _, p := range points {
		if info := pw.space.PointQueryNearest(p, probeDistance, staticFilter); info != nil && info.Shape != nil {
			return true
		}
	}
	return false
}

// Overlap returns the live targets inside region that attacker may hit.
func (pw *PhysicsWorld) Overlap(region common.Region, attacker component.Faction) []component.Target {
	if pw == nil || pw.space == nil {
		return nil
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, hitMask(attacker))
	seen := make(map[*PhysicsBody]bool)
	var out []component.Target
	collect := func(shape *cp.Shape) {
		b, ok := shape.UserData.(*PhysicsBody)
		if !ok || b == nil || b.Target == nil || seen[b] || !b.Target.IsAlive() {
			return
		}
		seen[b] = true
		out = append(out, b.Target)
	}
	if region.Shape == common.RegionCircle {
		center := cp.Vector{X: region.Center.X, Y: region.Center.Y}
		pw.space.BBQuery(cp.NewBBForCircle(center, region.Radius), filter, func(shape *cp.Shape, data interface{}) {
			if shape.PointQuery(center).Distance <= region.Radius {
				collect(shape)
			}
		}, nil)
		return out
	}
	pw.space.BBQuery(rectBB(region.Bounds()), filter, func(shape *cp.Shape, data interface{}) {
		collect(shape)
	}, nil)
	return out
}

func rectBB(r common.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// PhysicsBody adapts a Chipmunk body to obj.Body and obj.Sensors.
type PhysicsBody struct {
	world   *PhysicsWorld
	entity  Entity
	body    *cp.Body
	shape   *cp.Shape
	size    common.Vec2
	faction component.Faction

	gravityScale float64

	// Target is returned by attack queries that reach this body.
	Target component.Target
}

func (b *PhysicsBody) Entity() Entity {
	if b == nil {
		return 0
	}
	return b.entity
}

func (b *PhysicsBody) Size() common.Vec2 {
	if b == nil {
		return common.Vec2{}
	}
	return b.size
}

func (b *PhysicsBody) Faction() component.Faction {
	if b == nil {
		return component.FactionNeutral
	}
	return b.faction
}

// Bounds returns the body box in world space.
func (b *PhysicsBody) Bounds() common.Rect {
	return common.RectAround(b.Position(), b.size.X, b.size.Y)
}

func (b *PhysicsBody) Position() common.Vec2 {
	if b == nil || b.body == nil {
		return common.Vec2{}
	}
	p := b.body.Position()
	return common.Vec2{X: p.X, Y: p.Y}
}

// SetPosition teleports the body.
func (b *PhysicsBody) SetPosition(p common.Vec2) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

func (b *PhysicsBody) Velocity() common.Vec2 {
	if b == nil || b.body == nil {
		return common.Vec2{}
	}
	v := b.body.Velocity()
	return common.Vec2{X: v.X, Y: v.Y}
}

func (b *PhysicsBody) SetVelocity(v common.Vec2) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetVelocity(v.X, v.Y)
}

func (b *PhysicsBody) GravityScale() float64 {
	if b == nil {
		return 0
	}
	return b.gravityScale
}

func (b *PhysicsBody) SetGravityScale(s float64) {
	if b == nil {
		return
	}
	b.gravityScale = s
}

// Grounded probes just below both feet corners and the center.
func (b *PhysicsBody) Grounded() bool {
	if b == nil || b.world == nil {
		return false
	}
	p := b.body.Position()
	y := p.Y - b.size.Y/2
	half := b.size.X/2 - probeInset
	return b.world.touching(
		cp.Vector{X: p.X - half, Y: y},
		cp.Vector{X: p.X, Y: y},
		cp.Vector{X: p.X + half, Y: y},
	)
}

// TouchingCeiling probes just above the head.
func (b *PhysicsBody) TouchingCeiling() bool {
	if b == nil || b.world == nil {
		return false
	}
	p := b.body.Position()
	y := p.Y + b.size.Y/2
	half := b.size.X/2 - probeInset
	return b.world.touching(
		cp.Vector{X: p.X - half, Y: y},
		cp.Vector{X: p.X + half, Y: y},
	)
}

// TouchingWall casts short segments out of the dir side at two heights,
// falling back to a point probe when the body already overlaps the wall.
func (b *PhysicsBody) TouchingWall(dir float64) bool {
	if b == nil || b.world == nil || dir == 0 {
		return false
	}
	p := b.body.Position()
	side := common.Sign(dir)
	from := p.X + side*(b.size.X/2-probeInset)
	to := p.X + side*(b.size.X/2+probeDistance)
	quarter := b.size.Y / 4
	for _, y := range []float64{p.Y + quarter, p.Y - quarter} {
		hit := b.world.space.SegmentQueryFirst(cp.Vector{X: from, Y: y}, cp.Vector{X: to, Y: y}, 0, staticFilter)
		if hit.Shape != nil {
			return true
		}
	}
	return b.world.touching(cp.Vector{X: p.X + side*b.size.X/2, Y: p.Y})
}

var (
	_ obj.Body     = (*PhysicsBody)(nil)
	_ obj.Sensors  = (*PhysicsBody)(nil)
	_ obj.HitQuery = (*PhysicsWorld)(nil)
)
