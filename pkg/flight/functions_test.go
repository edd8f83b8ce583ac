package flight

import (
	"math"
	"testing"
)

func TestDefaultFunctionsScale(t *testing.T) {
	fn := DefaultFunctions{}
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"起点", 0, 0.85},
		{"中点", 0.5, 2.2},
		{"终点", 1, 0.55},
		{"十分之一", 0.1, 1.216},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fn.Scale(tt.x); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Scale(%v) = %v, 期望 %v", tt.x, got, tt.expected)
			}
		})
	}
}

func TestDefaultFunctionsOpacity(t *testing.T) {
	fn := DefaultFunctions{}
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"起点完全不透明", 0, 1},
		{"中点", 0.5, 0.99609375},
		{"终点完全透明", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fn.Opacity(tt.x); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Opacity(%v) = %v, 期望 %v", tt.x, got, tt.expected)
			}
		})
	}

	t.Run("单调递减", func(t *testing.T) {
		prev := fn.Opacity(0)
		for i := 1; i <= 100; i++ {
			v := fn.Opacity(float64(i) / 100)
			if v > prev {
				t.Fatalf("Opacity increased at %v", float64(i)/100)
			}
			prev = v
		}
	})
}

func TestDefaultFunctionsPosition(t *testing.T) {
	fn := DefaultFunctions{}
	start := Point{X: 240, Y: 400}
	target := Point{X: 40, Y: 700}

	if got := fn.Position(0, start, target); got != start {
		t.Errorf("Position(0) = %v, 期望 %v", got, start)
	}
	if got := fn.Position(1, start, target); got != target {
		t.Errorf("Position(1) = %v, 期望 %v", got, target)
	}
	if got := fn.Position(0.5, start, target); got != (Point{X: 140, Y: 550}) {
		t.Errorf("Position(0.5) = %v, 期望 {140 550}", got)
	}

	// 半数向上取整：1.5 → 2，-1.5 → -1
	if got := fn.Position(0.5, Point{}, Point{X: 3, Y: -3}); got != (Point{X: 2, Y: -1}) {
		t.Errorf("Position rounding = %v, 期望 {2 -1}", got)
	}
}

func TestSizeHelpers(t *testing.T) {
	source := Size{Width: 20, Height: 20}

	grown := source.Scale(2.2)
	if grown != (Size{Width: 44, Height: 44}) {
		t.Fatalf("Scale(2.2) = %v", grown)
	}
	if half := grown.Sub(source).Half(); half != (Size{Width: 12, Height: 12}) {
		t.Errorf("growth half = %v, 期望 {12 12}", half)
	}

	shrunk := source.Scale(0.55)
	if shrunk != (Size{Width: 11, Height: 11}) {
		t.Fatalf("Scale(0.55) = %v", shrunk)
	}
	// 截断除法：-9/2 = -4
	if half := shrunk.Sub(source).Half(); half != (Size{Width: -4, Height: -4}) {
		t.Errorf("shrink half = %v, 期望 {-4 -4}", half)
	}
	if p := (Point{X: 10, Y: 10}).Offset(Size{Width: -4, Height: 3}); p != (Point{X: 14, Y: 7}) {
		t.Errorf("Offset = %v", p)
	}
	if !(Size{}).IsZero() || source.IsZero() {
		t.Error("IsZero mismatch")
	}
}
