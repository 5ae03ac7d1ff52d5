package component

// CueName identifies a presentation cue. The core never waits on a cue.
type CueName string

const (
	CueLand          CueName = "land"
	CueJump          CueName = "jump"
	CueDoubleJump    CueName = "double_jump"
	CueWallSlide     CueName = "wall_slide"
	CueWallSlideEnd  CueName = "wall_slide_end"
	CueWallJump      CueName = "wall_jump"
	CueJumping       CueName = "jumping"
	CueFalling       CueName = "falling"
	CueRunning       CueName = "running"
	CueDash          CueName = "dash"
	CueDashEnd       CueName = "dash_end"
	CueAttackForward CueName = "attack_forward"
	CueAttackUp      CueName = "attack_up"
	CueAttackDown    CueName = "attack_down"
	CueAttackWall    CueName = "attack_wall"
	CueAttackEnd     CueName = "attack_end"
	CueSkill         CueName = "skill"
	CueSkillEnd      CueName = "skill_end"
	CueHeal          CueName = "heal"
	CueHealStop      CueName = "heal_stop"
	CueGuardStart    CueName = "guard_start"
	CueGuardEnd      CueName = "guard_end"
	CueParrySuccess  CueName = "parry_success"
	CueGuardBlock    CueName = "guard_block"
	CueHit           CueName = "hit"
	CueDeath         CueName = "death"
	CueHeart         CueName = "heart"
	CueBuff          CueName = "buff"
	CueModeSwitch    CueName = "mode_switch"
)

// Cue is one presentation event. Index carries the combo step for forward
// attacks, the slot for heart cues and the level for buff cues.
type Cue struct {
	Name       CueName
	Index      int
	Heart      HeartState
	Transition HeartTransition
}

// CueHandler handles presentation cues.
type CueHandler func(c Cue)

// CueEmitter fans cues out to handlers.
type CueEmitter struct {
	Handlers []CueHandler
}

// Subscribe registers a handler.
func (e *CueEmitter) Subscribe(h CueHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a cue to all handlers.
func (e *CueEmitter) Emit(c Cue) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(c)
		}
	}
}

// EmitName is shorthand for a cue with no payload.
func (e *CueEmitter) EmitName(name CueName) {
	e.Emit(Cue{Name: name})
}

// CueRecorder collects cues, used by the headless simulation and tests.
type CueRecorder struct {
	Cues []Cue
}

func (r *CueRecorder) Handle(c Cue) {
	if r == nil {
		return
	}
	r.Cues = append(r.Cues, c)
}

// Names returns the recorded cue names in order.
func (r *CueRecorder) Names() []CueName {
	if r == nil {
		return nil
	}
	out := make([]CueName, 0, len(r.Cues))
	for _, c := range r.Cues {
		out = append(out, c.Name)
	}
	return out
}

// Count returns how many cues with the given name were recorded.
func (r *CueRecorder) Count(name CueName) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, c := range r.Cues {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset drops recorded cues.
func (r *CueRecorder) Reset() {
	if r == nil {
		return
	}
	r.Cues = r.Cues[:0]
}
