package flight

import "math"

// Point is a pixel offset (top-left corner of a sprite).
type Point struct {
	X int
	Y int
}

// Size is a pixel size. The zero value means "not set" where a size is optional.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Scale multiplies both dimensions by f, rounding each half-up.
func (s Size) Scale(f float64) Size {
	return Size{
		Width:  roundHalfUp(float64(s.Width) * f),
		Height: roundHalfUp(float64(s.Height) * f),
	}
}

// Sub returns s - o per dimension.
func (s Size) Sub(o Size) Size {
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Half halves both dimensions, truncating toward zero.
func (s Size) Half() Size {
	return Size{Width: s.Width / 2, Height: s.Height / 2}
}

// Offset moves p up-left by the given size.
func (p Point) Offset(by Size) Point {
	return Point{X: p.X - by.Width, Y: p.Y - by.Height}
}

// roundHalfUp rounds to the nearest integer, ties toward +Inf.
// math.Round rounds ties away from zero, which shifts negative coordinates by a pixel.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
