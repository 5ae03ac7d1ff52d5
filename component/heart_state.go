package component

// HeartState is the steady state of one heart slot. It is always derived
// from the HeartModel, never stored.
type HeartState int

const (
	HeartFull HeartState = iota
	HeartTrembling
	HeartNone
	HeartBreakIdle
	HeartBreakTrembling
	HeartBreakNone
)

func (s HeartState) String() string {
	switch s {
	case HeartFull:
		return "full"
	case HeartTrembling:
		return "trembling"
	case HeartNone:
		return "none"
	case HeartBreakIdle:
		return "break_idle"
	case HeartBreakTrembling:
		return "break_trembling"
	case HeartBreakNone:
		return "break_none"
	default:
		return "unknown"
	}
}

// HeartTransition names the one-shot animation a presentation layer plays
// when a slot changes.
type HeartTransition int

const (
	TransitionNone HeartTransition = iota
	TransitionReduce
	TransitionFix
	TransitionBreak
	TransitionBreakDestroy
	TransitionBreakFix
	TransitionBreakNoneFix
)

func (t HeartTransition) String() string {
	switch t {
	case TransitionReduce:
		return "reduce"
	case TransitionFix:
		return "fix"
	case TransitionBreak:
		return "break"
	case TransitionBreakDestroy:
		return "break_destroy"
	case TransitionBreakFix:
		return "break_fix"
	case TransitionBreakNoneFix:
		return "break_none_fix"
	default:
		return "none"
	}
}
