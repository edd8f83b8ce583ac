package flight

import "time"

// State is the lifecycle of one flight calculator.
//
//	Created → Initiated → Calculated → Finished
//	              ↑                        │
//	              └──────── Init ──────────┘ (reuse from the pool)
type State int

const (
	// StateCreated 池中新建、尚未绑定粒子
	StateCreated State = iota
	// StateInitiated bound to a particle, waiting for its first frame
	StateInitiated
	// StateCalculated outputs are valid and may be drawn
	StateCalculated
	// StateFinished flight over, eligible for reuse
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateInitiated:
		return "Initiated"
	case StateCalculated:
		return "Calculated"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Calculator owns the interpolation state of one particle in flight.
//
// A calculator is owned by the animator's pool. The animator is the only caller of
// Init/Calculate/Finish and calls them from the frame goroutine.
type Calculator[P any] interface {
	// Init binds the calculator to a new particle spawned at startTime.
	Init(p P, startTime int64, ctx RenderContext) error
	// PlayTime returns the time elapsed since the particle was spawned.
	PlayTime(currentTime int64) time.Duration
	// Calculate recomputes the outputs for an eased progress value.
	Calculate(progress float64)
	// Finish ends the flight; outputs are stale afterwards.
	Finish()
	// Draw issues the draw call for the current outputs.
	Draw(s Surface)
	// Showed reports whether the outputs are valid for drawing.
	Showed() bool
	// State returns the current lifecycle state.
	State() State
}

// BasicCalculator carries the state machine shared by every calculator.
// Embed it and call Initiate from Init, Calculable/MarkCalculated around Calculate
// and Drawable before drawing.
type BasicCalculator struct {
	state     State
	startTime int64
}

// Initiate records the spawn time and moves to StateInitiated.
// Legal from Created and Finished only.
func (b *BasicCalculator) Initiate(startTime int64) {
	if b.state == StateInitiated || b.state == StateCalculated {
		contractViolation("init while %s", b.state)
	}
	b.startTime = startTime
	b.state = StateInitiated
}

// PlayTime returns currentTime - startTime in frame clock units (nanoseconds).
func (b *BasicCalculator) PlayTime(currentTime int64) time.Duration {
	return time.Duration(currentTime - b.startTime)
}

// Calculable reports whether Calculate may run in the current state.
func (b *BasicCalculator) Calculable() bool {
	if b.state != StateInitiated && b.state != StateCalculated {
		contractViolation("calculate while %s", b.state)
		return false
	}
	return true
}

// MarkCalculated moves to StateCalculated.
func (b *BasicCalculator) MarkCalculated() {
	b.state = StateCalculated
}

// Drawable reports whether Draw may run in the current state.
func (b *BasicCalculator) Drawable() bool {
	if b.state != StateCalculated {
		contractViolation("draw while %s", b.state)
		return false
	}
	return true
}

// Finish moves to StateFinished. A particle whose flight ends before its first
// frame finishes straight from Initiated.
func (b *BasicCalculator) Finish() {
	if b.state != StateInitiated && b.state != StateCalculated {
		contractViolation("finish while %s", b.state)
		return
	}
	b.state = StateFinished
}

// Showed is true only in StateCalculated.
func (b *BasicCalculator) Showed() bool {
	return b.state == StateCalculated
}

// State returns the lifecycle state.
func (b *BasicCalculator) State() State {
	return b.state
}

// StartTime returns the frame time the current particle was spawned at.
func (b *BasicCalculator) StartTime() int64 {
	return b.startTime
}
