package flight

// Functions maps normalized flight progress to the visual properties of one particle.
//
// All inputs are expected in [0, 1]; the animation timeline driving a calculator
// never produces values outside that range, so implementations need no validation.
// Swap the implementation to change how a burst looks without touching the scheduler.
type Functions interface {
	// Scale returns the size multiplier at progress x.
	Scale(x float64) float64
	// Opacity returns the alpha at progress x.
	Opacity(x float64) float64
	// Position returns the top-left pixel offset between start and target.
	Position(progress float64, start, target Point) Point
}

// DefaultFunctions is the "toss" look: a particle grows while it flies, shrinks
// again before landing and fades out only at the very end.
type DefaultFunctions struct{}

var _ Functions = DefaultFunctions{}

// Scale is y = -4x³ + 3.7x + 0.85.
//
// Starts at 0.85, peaks above 2 around x≈0.55 and lands at 0.55.
// Think of the curve as the height of a throw seen from above.
func (DefaultFunctions) Scale(x float64) float64 {
	return -4*x*x*x + 3.7*x + 0.85
}

// Opacity is y = 1 - x⁸.
//
// Stays close to 1 for most of the flight and collapses to 0 in the final fraction.
// The raw polynomial is returned; callers drawing with it clamp at the draw boundary.
func (DefaultFunctions) Opacity(x float64) float64 {
	x2 := x * x
	x4 := x2 * x2
	return 1 - x4*x4
}

// Position interpolates linearly between start and target, rounding each axis
// independently.
func (DefaultFunctions) Position(progress float64, start, target Point) Point {
	return Point{
		X: roundHalfUp(linearProgress(start.X, target.X, progress)),
		Y: roundHalfUp(linearProgress(start.Y, target.Y, progress)),
	}
}

// linearProgress 根据进度（0..1）计算起点与终点之间的位置
func linearProgress(start, finish int, progress float64) float64 {
	path := float64(finish-start) * progress
	return float64(start) + path
}
