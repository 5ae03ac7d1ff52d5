package obj

import "log"

// ActionState is the current action of a character.
type ActionState int

const (
	ActionNone ActionState = iota
	ActionIdle
	ActionRun
	ActionHeal
	ActionLand
	ActionJump
	ActionFall
	ActionWallSlide
	ActionDoubleJump
	ActionWallJump
	ActionAttack
	ActionCharge
	ActionSkill
	ActionGuard
	ActionDash
	ActionHit
	ActionDeath
)

// actionPriority is the total order used for admission. It is kept apart
// from the constant values so the tags can be reordered freely.
var actionPriority = map[ActionState]int{
	ActionNone:       0,
	ActionIdle:       1,
	ActionRun:        2,
	ActionHeal:       3,
	ActionLand:       4,
	ActionJump:       5,
	ActionFall:       6,
	ActionWallSlide:  7,
	ActionDoubleJump: 8,
	ActionWallJump:   9,
	ActionAttack:     9,
	ActionCharge:     9,
	ActionSkill:      9,
	ActionGuard:      9,
	ActionDash:       10,
	ActionHit:        11,
	ActionDeath:      12,
}

// Priority returns the admission rank of s.
func (s ActionState) Priority() int {
	return actionPriority[s]
}

// Locomotion reports whether the locomotion behavior owns s.
func (s ActionState) Locomotion() bool {
	switch s {
	case ActionNone, ActionIdle, ActionRun, ActionLand, ActionJump, ActionFall, ActionWallSlide, ActionDoubleJump:
		return true
	}
	return false
}

func (s ActionState) String() string {
	switch s {
	case ActionNone:
		return "none"
	case ActionIdle:
		return "idle"
	case ActionRun:
		return "run"
	case ActionHeal:
		return "heal"
	case ActionLand:
		return "land"
	case ActionJump:
		return "jump"
	case ActionFall:
		return "fall"
	case ActionWallSlide:
		return "wall_slide"
	case ActionDoubleJump:
		return "double_jump"
	case ActionWallJump:
		return "wall_jump"
	case ActionAttack:
		return "attack"
	case ActionCharge:
		return "charge"
	case ActionSkill:
		return "skill"
	case ActionGuard:
		return "guard"
	case ActionDash:
		return "dash"
	case ActionHit:
		return "hit"
	case ActionDeath:
		return "death"
	default:
		return "unknown"
	}
}

// ActionMachine admits action changes by priority. Death is absorbing.
type ActionMachine struct {
	current ActionState
	Debug   bool

	// OnChange is called after every accepted change.
	OnChange func(from, to ActionState)
}

func (m *ActionMachine) Current() ActionState {
	if m == nil {
		return ActionNone
	}
	return m.current
}

// Dead reports whether Death has been entered.
func (m *ActionMachine) Dead() bool {
	return m != nil && m.current == ActionDeath
}

// TryTransition moves to target when its priority is at least the current
// one.
func (m *ActionMachine) TryTransition(target ActionState) bool {
	if m == nil || m.Dead() {
		return false
	}
	if target.Priority() < m.current.Priority() {
		return false
	}
	m.set(target)
	return true
}

// ForceReset moves to s regardless of priority. It is used by completion
// paths and for entering Death.
func (m *ActionMachine) ForceReset(s ActionState) {
	if m == nil || m.Dead() {
		return
	}
	m.set(s)
}

// IsLocked is true while an action ranked between Attack and Hit holds.
func (m *ActionMachine) IsLocked() bool {
	if m == nil {
		return false
	}
	p := m.current.Priority()
	return p >= ActionAttack.Priority() && p <= ActionHit.Priority()
}

func (m *ActionMachine) set(s ActionState) {
	from := m.current
	m.current = s
	if from == s {
		return
	}
	if m.Debug {
		log.Printf("action: %s -> %s", from, s)
	}
	if m.OnChange != nil {
		m.OnChange(from, s)
	}
}
