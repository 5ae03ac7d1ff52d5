package component

import "sort"

const (
	// MaxHearts is the largest heart row the HUD supports.
	MaxHearts = 15
	// BreakCap is the most break markers that may exist at once.
	BreakCap = 3
)

type breakMarker struct {
	slot      int
	destroyed bool
}

// HeartModel is the segmented health model. Slots are indexed left to right.
// The model stores the loss stack (spent slots, most recent last), the break
// markers in insertion order and the parry counter; every slot state is
// derived from those.
type HeartModel struct {
	max     int
	losses  []int
	markers []breakMarker
	parries int

	OnHealthChanged       func(count int)
	OnBreakMarkersChanged func(slots []int)
	OnSlotChanged         func(slot int, state HeartState, transition HeartTransition)

	pending map[int]HeartTransition
}

// NewHeartModel creates a full heart row. max is clamped to [1, MaxHearts].
func NewHeartModel(max int) *HeartModel {
	h := &HeartModel{}
	h.SetMax(max)
	return h
}

// SetMax resizes the row and refills it, dropping all markers.
func (h *HeartModel) SetMax(max int) {
	if h == nil {
		return
	}
	if max < 1 {
		max = 1
	}
	if max > MaxHearts {
		max = MaxHearts
	}
	h.max = max
	h.losses = h.losses[:0]
	h.markers = h.markers[:0]
	h.parries = 0
	if h.OnHealthChanged != nil {
		h.OnHealthChanged(h.Health())
	}
	if h.OnBreakMarkersChanged != nil {
		h.OnBreakMarkersChanged(h.MarkedSlots())
	}
}

// Max returns the slot count.
func (h *HeartModel) Max() int {
	if h == nil {
		return 0
	}
	return h.max
}

// Health returns the number of surviving normal points.
func (h *HeartModel) Health() int {
	if h == nil {
		return 0
	}
	return h.max - len(h.losses)
}

// IsAlive reports whether any normal point survives.
func (h *HeartModel) IsAlive() bool {
	return h.Health() > 0
}

func (h *HeartModel) spent(slot int) bool {
	for _, s := range h.losses {
		if s == slot {
			return true
		}
	}
	return false
}

func (h *HeartModel) markerIndex(slot int) int {
	for i, m := range h.markers {
		if m.slot == slot {
			return i
		}
	}
	return -1
}

// State derives the steady state of a slot.
func (h *HeartModel) State(slot int) HeartState {
	if h == nil || slot < 0 || slot >= h.max || h.spent(slot) {
		return HeartNone
	}
	last := h.Health() == 1
	if m := h.markerIndex(slot); m >= 0 {
		switch {
		case h.markers[m].destroyed:
			return HeartBreakNone
		case last:
			return HeartBreakTrembling
		default:
			return HeartBreakIdle
		}
	}
	if last {
		return HeartTrembling
	}
	return HeartFull
}

// States returns every slot state left to right.
func (h *HeartModel) States() []HeartState {
	if h == nil {
		return nil
	}
	out := make([]HeartState, h.max)
	for i := range out {
		out[i] = h.State(i)
	}
	return out
}

// MarkedSlots returns the break-marked slots in ascending order.
func (h *HeartModel) MarkedSlots() []int {
	if h == nil {
		return nil
	}
	out := make([]int, 0, len(h.markers))
	for _, m := range h.markers {
		out = append(out, m.slot)
	}
	sort.Ints(out)
	return out
}

// BreakCount returns the number of break markers.
func (h *HeartModel) BreakCount() int {
	if h == nil {
		return 0
	}
	return len(h.markers)
}

// IsBreakFull is true when the marker cap is reached or every surviving
// point already carries a marker.
func (h *HeartModel) IsBreakFull() bool {
	if h == nil {
		return true
	}
	n := len(h.markers)
	return n >= BreakCap || n >= h.Health()
}

// ApplyDamage removes amount points one unit step at a time and returns how
// many normal points were actually lost. Each step is routed independently:
// unshielded points first, then intact break layers, then shielded points
// whose layer is already gone.
func (h *HeartModel) ApplyDamage(amount int) int {
	if h == nil || amount <= 0 {
		return 0
	}
	before := h.snapshot()
	lost := 0
	for i := 0; i < amount && h.Health() > 0; i++ {
		if h.damageStep() {
			lost++
		}
	}
	h.commit(before)
	return lost
}

func (h *HeartModel) damageStep() bool {
	for slot := h.max - 1; slot >= 0; slot-- {
		if !h.spent(slot) && h.markerIndex(slot) < 0 {
			h.lose(slot)
			return true
		}
	}
	if m := h.highestMarker(false); m >= 0 {
		h.markers[m].destroyed = true
		h.mark(h.markers[m].slot, TransitionBreakDestroy)
		return false
	}
	if m := h.highestMarker(true); m >= 0 {
		slot := h.markers[m].slot
		h.dropMarker(m)
		h.lose(slot)
		return true
	}
	return false
}

// highestMarker returns the index of the marker on the highest slot whose
// destroyed flag equals destroyed, or -1.
func (h *HeartModel) highestMarker(destroyed bool) int {
	best := -1
	for i, m := range h.markers {
		if m.destroyed != destroyed {
			continue
		}
		if best < 0 || m.slot > h.markers[best].slot {
			best = i
		}
	}
	return best
}

func (h *HeartModel) lose(slot int) {
	h.losses = append(h.losses, slot)
	h.mark(slot, TransitionReduce)
}

func (h *HeartModel) dropMarker(i int) {
	h.markers = append(h.markers[:i], h.markers[i+1:]...)
}

// AddBreak marks the highest occupied unmarked slot. It does nothing at the
// marker cap or when no unshielded point remains.
func (h *HeartModel) AddBreak() bool {
	if h == nil || len(h.markers) >= BreakCap {
		return false
	}
	for slot := h.max - 1; slot >= 0; slot-- {
		if h.spent(slot) || h.markerIndex(slot) >= 0 {
			continue
		}
		before := h.snapshot()
		h.markers = append(h.markers, breakMarker{slot: slot})
		h.mark(slot, TransitionBreak)
		h.commit(before)
		return true
	}
	return false
}

// OnParrySuccess counts a perfect parry. Every second parry cures the most
// recently added marker and reports true.
func (h *HeartModel) OnParrySuccess() bool {
	if h == nil {
		return false
	}
	h.parries++
	if h.parries%2 != 0 || len(h.markers) == 0 {
		return false
	}
	before := h.snapshot()
	last := len(h.markers) - 1
	m := h.markers[last]
	h.markers = h.markers[:last]
	if m.destroyed {
		h.mark(m.slot, TransitionBreakNoneFix)
	} else {
		h.mark(m.slot, TransitionBreakFix)
	}
	h.commit(before)
	return true
}

// BlockDamage routes the chip damage of a guard block. Below the cap it adds
// a marker. When the row is already fully shielded and only one point is
// left, the point itself is lost because nothing remains to protect it.
// It returns true when a normal point was lost.
func (h *HeartModel) BlockDamage() bool {
	if h == nil || h.Health() == 0 {
		return false
	}
	if !h.IsBreakFull() && h.AddBreak() {
		return false
	}
	if h.Health() != 1 {
		return false
	}
	before := h.snapshot()
	for slot := h.max - 1; slot >= 0; slot-- {
		if h.spent(slot) {
			continue
		}
		if m := h.markerIndex(slot); m >= 0 {
			h.dropMarker(m)
		}
		h.lose(slot)
		break
	}
	h.commit(before)
	return true
}

// HealLatestNormal restores the most recently lost normal point.
func (h *HeartModel) HealLatestNormal() bool {
	if h == nil || len(h.losses) == 0 {
		return false
	}
	before := h.snapshot()
	last := len(h.losses) - 1
	slot := h.losses[last]
	h.losses = h.losses[:last]
	h.mark(slot, TransitionFix)
	h.commit(before)
	return true
}

// Parries returns the perfect parry counter.
func (h *HeartModel) Parries() int {
	if h == nil {
		return 0
	}
	return h.parries
}

type heartSnapshot struct {
	health  int
	states  []HeartState
	markers []int
}

func (h *HeartModel) snapshot() heartSnapshot {
	h.pending = make(map[int]HeartTransition)
	return heartSnapshot{
		health:  h.Health(),
		states:  h.States(),
		markers: h.MarkedSlots(),
	}
}

func (h *HeartModel) mark(slot int, t HeartTransition) {
	if h.pending == nil {
		h.pending = make(map[int]HeartTransition)
	}
	h.pending[slot] = t
}

func (h *HeartModel) commit(before heartSnapshot) {
	pending := h.pending
	h.pending = nil
	if h.OnSlotChanged != nil {
		for slot := 0; slot < h.max; slot++ {
			state := h.State(slot)
			t, touched := pending[slot]
			if touched || state != before.states[slot] {
				h.OnSlotChanged(slot, state, t)
			}
		}
	}
	if hp := h.Health(); hp != before.health && h.OnHealthChanged != nil {
		h.OnHealthChanged(hp)
	}
	if after := h.MarkedSlots(); !equalInts(after, before.markers) && h.OnBreakMarkersChanged != nil {
		h.OnBreakMarkersChanged(after)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
