package obj

import (
	"math"
	"time"

	"github.com/milk9111/glitchknight/common"
	"github.com/milk9111/glitchknight/component"
)

const frame = 10 * time.Millisecond

type fakeBody struct {
	pos     common.Vec2
	vel     common.Vec2
	gravity float64
}

func (b *fakeBody) Position() common.Vec2     { return b.pos }
func (b *fakeBody) Velocity() common.Vec2     { return b.vel }
func (b *fakeBody) SetVelocity(v common.Vec2) { b.vel = v }
func (b *fakeBody) GravityScale() float64     { return b.gravity }
func (b *fakeBody) SetGravityScale(s float64) { b.gravity = s }

type fakeSensors struct {
	ground    bool
	ceiling   bool
	wallLeft  bool
	wallRight bool
}

func (s *fakeSensors) Grounded() bool        { return s.ground }
func (s *fakeSensors) TouchingCeiling() bool { return s.ceiling }
func (s *fakeSensors) TouchingWall(dir float64) bool {
	if dir < 0 {
		return s.wallLeft
	}
	return s.wallRight
}

type fakeQuery struct {
	targets []component.Target
	regions []common.Region
}

func (q *fakeQuery) Overlap(region common.Region, attacker component.Faction) []component.Target {
	q.regions = append(q.regions, region)
	return q.targets
}

type testRig struct {
	p       *Player
	clock   *component.SimClock
	body    *fakeBody
	sensors *fakeSensors
	cues    *component.CueRecorder
}

// newTestRig returns a grounded idle player at the origin.
func newTestRig() *testRig {
	clock := component.NewSimClock()
	body := &fakeBody{}
	sensors := &fakeSensors{ground: true}
	p := NewPlayer(DefaultPlayerConfig(), clock, body, sensors)
	p.TimeScale = clock
	rec := &component.CueRecorder{}
	p.Cues.Subscribe(rec.Handle)
	r := &testRig{p: p, clock: clock, body: body, sensors: sensors, cues: rec}
	p.Update()
	r.advance(110 * time.Millisecond)
	rec.Reset()
	return r
}

// advance steps the clock frame by frame, updating the player after each
// step.
func (r *testRig) advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		r.clock.Advance(frame)
		r.p.Update()
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type source struct{ pos common.Vec2 }

func (s source) Position() common.Vec2 { return s.pos }
