package obj

// IntentKind names a device-independent input intent.
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentJumpStart
	IntentJumpCancel
	IntentAttack
	IntentSkill
	IntentDash
	IntentHealStart
	IntentHealCancel
	IntentGuardStart
	IntentGuardCancel
	IntentModeSwitch
)

var intentNames = map[IntentKind]string{
	IntentMove:        "move",
	IntentJumpStart:   "jump_start",
	IntentJumpCancel:  "jump_cancel",
	IntentAttack:      "attack",
	IntentSkill:       "skill",
	IntentDash:        "dash",
	IntentHealStart:   "heal_start",
	IntentHealCancel:  "heal_cancel",
	IntentGuardStart:  "guard_start",
	IntentGuardCancel: "guard_cancel",
	IntentModeSwitch:  "mode_switch",
}

func (k IntentKind) String() string {
	if s, ok := intentNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseIntentKind maps a name such as "jump_start" to its kind.
func ParseIntentKind(name string) (IntentKind, bool) {
	for k, s := range intentNames {
		if s == name {
			return k, true
		}
	}
	return 0, false
}

// Intent is one input event. X and Y carry the move vector for IntentMove,
// each in [-1, 1].
type Intent struct {
	Kind IntentKind
	X, Y float64
}

// Move builds a move intent.
func Move(x, y float64) Intent {
	return Intent{Kind: IntentMove, X: x, Y: y}
}

// Input buffers intents between polls. Producers push; the simulation drains
// once per tick.
type Input struct {
	pending []Intent
}

func NewInput() *Input {
	return &Input{}
}

// Push queues an intent.
func (i *Input) Push(in Intent) {
	if i == nil {
		return
	}
	i.pending = append(i.pending, in)
}

// Drain returns queued intents in arrival order and empties the queue.
func (i *Input) Drain() []Intent {
	if i == nil || len(i.pending) == 0 {
		return nil
	}
	out := i.pending
	i.pending = nil
	return out
}
