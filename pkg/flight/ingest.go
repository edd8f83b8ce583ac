package flight

import "log"

// Spawn queues p for the next tick. It never blocks: when the buffer is full the
// particle is dropped and Spawn returns false.
func (a *Animator[P, C]) Spawn(p P) bool {
	select {
	case a.spawns <- p:
		a.spawned.Add(1)
		return true
	default:
		a.dropped.Add(1)
		if !a.dropLogged.Swap(true) {
			log.Printf("[Animator] spawn buffer full (cap=%d), dropping newest particles", cap(a.spawns))
		}
		return false
	}
}

// Pending returns the number of queued spawns.
func (a *Animator[P, C]) Pending() int {
	return len(a.spawns)
}

// ingest drains the spawns queued when it starts; later arrivals wait for the next tick.
func (a *Animator[P, C]) ingest(frameTime int64) {
	n := len(a.spawns)
	for i := 0; i < n; i++ {
		a.admit(<-a.spawns, frameTime)
	}
}

func (a *Animator[P, C]) admit(p P, frameTime int64) {
	id := p.ParticleID()
	if id == 0 {
		a.rejected.Add(1)
		log.Printf("[Animator] drop particle: id 0 is reserved")
		return
	}
	if _, dup := a.ids[id]; dup {
		a.rejected.Add(1)
		log.Printf("[Animator] drop particle %d: already in flight", id)
		return
	}

	slot, calc := a.pool.Acquire()
	if err := calc.Init(p, frameTime, a.ctx); err != nil {
		a.pool.Release(slot)
		a.rejected.Add(1)
		log.Printf("[Animator] drop particle %d: %v", id, err)
		return
	}

	a.ids[id] = struct{}{}
	a.active = append(a.active, flightEntry[C]{id: id, slot: slot, calc: calc})
	if a.phase == PhaseIdle {
		a.phase = PhaseRunning
		log.Printf("[Animator] running")
	}
}
