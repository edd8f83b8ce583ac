package flight

import (
	"context"
	"log"
	"sync/atomic"
)

// Phase is the scheduler state of an Animator.
type Phase int

const (
	// PhaseIdle 没有飞行中的粒子，Tick 只做摄入
	PhaseIdle Phase = iota
	// PhaseRunning at least one particle is in flight
	PhaseRunning
)

func (p Phase) String() string {
	if p == PhaseRunning {
		return "Running"
	}
	return "Idle"
}

// DefaultBufferCapacity bounds the spawn buffer when Options leaves it unset.
const DefaultBufferCapacity = 10000

// Options configures an Animator. The zero value is usable.
type Options[C any] struct {
	// Timeline drives every particle; DefaultTween() when nil.
	Timeline Timeline
	// BufferCapacity bounds the spawn buffer; DefaultBufferCapacity when <= 0.
	BufferCapacity int
	// Less orders InFlight results (stable). Insertion order when nil.
	Less func(a, b C) int
}

// Stats is a snapshot of the animator counters.
type Stats struct {
	Phase         Phase
	Active        int
	PoolSize      int
	PoolAvailable int
	// Spawned counts particles accepted into the spawn buffer.
	Spawned uint64
	// Dropped counts spawns lost to a full buffer.
	Dropped uint64
	// Rejected counts particles that failed ingestion (duplicate id or Init error).
	Rejected uint64
}

type flightEntry[C any] struct {
	id   uint64
	slot int
	calc C
}

// Animator schedules particle flights frame by frame.
//
// Spawn may be called from any goroutine. Tick, Run, InFlight, Draw and Stats
// belong to the frame goroutine and must not be called concurrently.
type Animator[P Keyed, C Calculator[P]] struct {
	pool     *Pool[C]
	ctx      RenderContext
	timeline Timeline
	less     func(a, b C) int

	spawns chan P

	active    []flightEntry[C]
	ids       map[uint64]struct{}
	inFlight  []C
	phase     Phase
	frameTime int64

	spawned    atomic.Uint64
	dropped    atomic.Uint64
	rejected   atomic.Uint64
	dropLogged atomic.Bool
}

// NewAnimator creates an idle animator whose pool builds calculators with factory.
// ctx is handed to every calculator Init.
//
// P cannot be inferred from factory alone, so callers name it:
//
//	a := flight.NewAnimator[flight.Particle](factory, ctx, flight.Options[*flight.ImageCalculator]{})
func NewAnimator[P Keyed, C Calculator[P]](factory func() C, ctx RenderContext, opts Options[C]) *Animator[P, C] {
	timeline := opts.Timeline
	if timeline == nil {
		timeline = DefaultTween()
	}
	capacity := opts.BufferCapacity
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	return &Animator[P, C]{
		pool:     NewPool(factory),
		ctx:      ctx,
		timeline: timeline,
		less:     opts.Less,
		spawns:   make(chan P, capacity),
		ids:      make(map[uint64]struct{}),
	}
}

// NewImageAnimator wires an animator of image particles sharing one sprite cache.
func NewImageAnimator(fn Functions, cache *SpriteCache, ctx RenderContext, opts Options[*ImageCalculator]) *Animator[Particle, *ImageCalculator] {
	return NewAnimator[Particle](NewImageFactory(fn, cache), ctx, opts)
}

// Tick advances every particle in flight to frameTime, then ingests queued spawns.
//
// Particles ingested on this tick are stamped with frameTime and first calculated
// on the next tick.
func (a *Animator[P, C]) Tick(frameTime int64) {
	a.frameTime = frameTime
	if a.phase == PhaseRunning {
		a.advance(frameTime)
		if len(a.active) == 0 {
			a.phase = PhaseIdle
			a.dropLogged.Store(false)
			log.Printf("[Animator] idle (pool=%d)", a.pool.Size())
		}
	}
	a.ingest(frameTime)
}

// advance recomputes or retires every active calculator, keeping insertion order.
func (a *Animator[P, C]) advance(frameTime int64) {
	kept := a.active[:0]
	for _, f := range a.active {
		playTime := f.calc.PlayTime(frameTime)
		if a.timeline.Finished(playTime) {
			f.calc.Finish()
			delete(a.ids, f.id)
			a.pool.Release(f.slot)
			continue
		}
		f.calc.Calculate(a.timeline.Progress(playTime))
		kept = append(kept, f)
	}
	// 清空尾部，避免保留已回收的计算器引用
	clear(a.active[len(kept):])
	a.active = kept
}

// Run ticks the animator for every frame timestamp received until ctx is done or
// frames is closed.
func (a *Animator[P, C]) Run(ctx context.Context, frames <-chan int64) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frameTime, ok := <-frames:
			if !ok {
				return nil
			}
			a.Tick(frameTime)
		}
	}
}

// Phase returns the scheduler phase.
func (a *Animator[P, C]) Phase() Phase {
	return a.phase
}

// FrameTime returns the timestamp of the last tick.
func (a *Animator[P, C]) FrameTime() int64 {
	return a.frameTime
}

// Stats returns the current counters.
func (a *Animator[P, C]) Stats() Stats {
	return Stats{
		Phase:         a.phase,
		Active:        len(a.active),
		PoolSize:      a.pool.Size(),
		PoolAvailable: a.pool.Available(),
		Spawned:       a.spawned.Load(),
		Dropped:       a.dropped.Load(),
		Rejected:      a.rejected.Load(),
	}
}
