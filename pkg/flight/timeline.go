package flight

import (
	"time"

	"github.com/gonewx/burst/pkg/easing"
)

// Timeline turns a particle's play time into a finished flag and an eased progress.
type Timeline interface {
	// Finished reports whether the flight is over at playTime.
	Finished(playTime time.Duration) bool
	// Progress returns the eased progress at playTime, within [0, 1] for
	// monotonic curves.
	Progress(playTime time.Duration) float64
}

// Tween is a fixed-duration timeline with an easing curve.
type Tween struct {
	Duration time.Duration
	// Easing 为 nil 时按线性处理
	Easing easing.Func
}

var _ Timeline = Tween{}

// DefaultDuration is the flight time of one burst particle.
const DefaultDuration = 2100 * time.Millisecond

// DefaultTween is the burst look: 2.1s along cubic-bezier(0.5, 0.6, 0.4, 0.8).
func DefaultTween() Tween {
	return Tween{Duration: DefaultDuration, Easing: easing.Toss}
}

// ShortTween is a 300ms fast-out-slow-in tween, for quick pops.
func ShortTween() Tween {
	return Tween{Duration: 300 * time.Millisecond, Easing: easing.FastOutSlowIn}
}

// Finished is true once playTime reaches the duration.
func (tw Tween) Finished(playTime time.Duration) bool {
	return playTime >= tw.Duration
}

// Progress clamps playTime/Duration to [0, 1] and applies the easing.
func (tw Tween) Progress(playTime time.Duration) float64 {
	var x float64
	switch {
	case tw.Duration <= 0 || playTime >= tw.Duration:
		x = 1
	case playTime <= 0:
		x = 0
	default:
		x = float64(playTime) / float64(tw.Duration)
	}
	if tw.Easing == nil {
		return x
	}
	return tw.Easing(x)
}
