package flight

import "sync/atomic"

// Keyed is implemented by every particle the animator accepts.
// The id identifies the particle while it is in flight. 0 is reserved: such
// particles are rejected at ingestion.
type Keyed interface {
	ParticleID() uint64
}

// Particle is an image particle: a sprite flying from Start to Target.
// Immutable once spawned.
type Particle struct {
	ID     uint64
	Sprite string
	// Size 为零值时使用图片原始尺寸
	Size   Size
	Start  Point
	Target Point
}

// ParticleID implements Keyed.
func (p Particle) ParticleID() uint64 {
	return p.ID
}

// IDSequence hands out particle ids starting at 1. Safe for concurrent producers.
type IDSequence struct {
	last atomic.Uint64
}

// Next returns the next id.
func (s *IDSequence) Next() uint64 {
	return s.last.Add(1)
}
