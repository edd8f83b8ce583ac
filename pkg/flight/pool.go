package flight

// Pool recycles calculators so that steady-state bursts allocate nothing.
//
// Calculators live in a slot table; the free list stores slot indices and Acquire
// pops from its tail (most recently released first). The pool grows on demand and
// never shrinks. Not safe for concurrent use: only the frame goroutine touches it.
type Pool[C any] struct {
	factory func() C
	slots   []C
	free    []int
	inUse   []bool
}

// NewPool creates an empty pool that builds new calculators with factory.
func NewPool[C any](factory func() C) *Pool[C] {
	return &Pool[C]{factory: factory}
}

// Acquire returns a free calculator, creating one when none is available.
func (p *Pool[C]) Acquire() (slot int, c C) {
	if n := len(p.free); n > 0 {
		slot = p.free[n-1]
		p.free = p.free[:n-1]
		p.inUse[slot] = true
		return slot, p.slots[slot]
	}
	c = p.factory()
	p.slots = append(p.slots, c)
	p.inUse = append(p.inUse, true)
	return len(p.slots) - 1, c
}

// Release returns a slot to the free list.
// Releasing a free or unknown slot is a contract violation and is ignored.
func (p *Pool[C]) Release(slot int) {
	if slot < 0 || slot >= len(p.slots) || !p.inUse[slot] {
		contractViolation("release of slot %d not in use", slot)
		return
	}
	p.inUse[slot] = false
	p.free = append(p.free, slot)
}

// At returns the calculator in slot.
func (p *Pool[C]) At(slot int) C {
	return p.slots[slot]
}

// Size returns how many calculators the pool has created.
func (p *Pool[C]) Size() int {
	return len(p.slots)
}

// Available returns how many calculators are waiting for reuse.
func (p *Pool[C]) Available() int {
	return len(p.free)
}
