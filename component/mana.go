package component

const (
	DefaultManaCellSize     = 10
	DefaultManaCellsPerSlot = 10
	MaxManaSlots            = 3
)

// ResourcePool is a clamped integer counter (mana) laid out as slots of
// cells. Amounts are rounded down to whole cells unless CellSize <= 1.
type ResourcePool struct {
	current      int
	slots        int
	cellsPerSlot int
	cellSize     int

	// OnChange is called after every mutation with the new value.
	OnChange func(current int)
}

// NewResourcePool creates a pool with the given slot count (clamped to
// [1, MaxManaSlots]), cells per slot and cell size.
func NewResourcePool(slots, cellsPerSlot, cellSize int) *ResourcePool {
	if cellsPerSlot <= 0 {
		cellsPerSlot = DefaultManaCellsPerSlot
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &ResourcePool{
		slots:        clampSlots(slots),
		cellsPerSlot: cellsPerSlot,
		cellSize:     cellSize,
	}
}

func clampSlots(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxManaSlots {
		return MaxManaSlots
	}
	return n
}

func (p *ResourcePool) Current() int {
	if p == nil {
		return 0
	}
	return p.current
}

// Capacity is slots * cellsPerSlot * cellSize.
func (p *ResourcePool) Capacity() int {
	if p == nil {
		return 0
	}
	return p.slots * p.cellsPerSlot * p.cellSize
}

// Cells returns the number of filled cells.
func (p *ResourcePool) Cells() int {
	if p == nil || p.cellSize <= 0 {
		return 0
	}
	return p.current / p.cellSize
}

func (p *ResourcePool) quantize(amount int) int {
	if p.cellSize <= 1 {
		return amount
	}
	return (amount / p.cellSize) * p.cellSize
}

// Spend removes amount if the balance covers it. It returns false and leaves
// the pool untouched otherwise.
func (p *ResourcePool) Spend(amount int) bool {
	if p == nil {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	if p.current < amount {
		return false
	}
	p.current -= p.quantize(amount)
	p.changed()
	return true
}

// Gain adds amount, clamped to capacity. It returns false when the pool was
// already full.
func (p *ResourcePool) Gain(amount int) bool {
	if p == nil {
		return false
	}
	capacity := p.Capacity()
	if p.current >= capacity {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	p.current += p.quantize(amount)
	if p.current > capacity {
		p.current = capacity
	}
	p.changed()
	return true
}

// Set assigns the balance, clamped to [0, capacity].
func (p *ResourcePool) Set(value int) {
	if p == nil {
		return
	}
	if value < 0 {
		value = 0
	}
	if c := p.Capacity(); value > c {
		value = c
	}
	p.current = value
	p.changed()
}

// SetSlots changes the slot count and re-clamps the current balance.
func (p *ResourcePool) SetSlots(n int) {
	if p == nil {
		return
	}
	p.slots = clampSlots(n)
	p.Set(p.current)
}

func (p *ResourcePool) Slots() int {
	if p == nil {
		return 0
	}
	return p.slots
}

func (p *ResourcePool) changed() {
	if p.OnChange != nil {
		p.OnChange(p.current)
	}
}
