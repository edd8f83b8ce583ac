package flight

import (
	"context"
	"time"
)

// FrameClock produces monotonic frame timestamps in nanoseconds since its creation.
type FrameClock struct {
	origin time.Time
}

// NewFrameClock starts a clock at 0.
func NewFrameClock() *FrameClock {
	return &FrameClock{origin: time.Now()}
}

// Now returns the nanoseconds elapsed since the clock was created.
// time.Since uses the monotonic reading, so wall-clock jumps do not affect it.
func (c *FrameClock) Now() int64 {
	return int64(time.Since(c.origin))
}

// Ticker emits frame timestamps every interval until ctx is done, then closes
// the channel. Frames are dropped, not queued, when the consumer falls behind.
func Ticker(ctx context.Context, interval time.Duration) <-chan int64 {
	clock := NewFrameClock()
	frames := make(chan int64, 1)
	go func() {
		defer close(frames)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				select {
				case frames <- clock.Now():
				default:
				}
			}
		}
	}()
	return frames
}
