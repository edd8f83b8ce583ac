package easing

import (
	"math"
	"testing"
)

// TestLinear 测试线性缓动函数
func TestLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Linear(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Linear(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestOutCubic 测试三次方缓出函数
func TestOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("OutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("开始快于线性", func(t *testing.T) {
		for p := 0.1; p < 0.5; p += 0.1 {
			if OutCubic(p) <= Linear(p) {
				t.Errorf("OutCubic(%v) 应该大于线性值（开始快）", p)
			}
		}
	})
}

func TestInOutCubic(t *testing.T) {
	if got := InOutCubic(0.5); math.Abs(got-0.5) > 0.001 {
		t.Errorf("InOutCubic(0.5) = %v, 期望 0.5", got)
	}
	if got := InOutCubic(0.25); math.Abs(got-0.0625) > 0.001 {
		t.Errorf("InOutCubic(0.25) = %v, 期望 0.0625", got)
	}
}

func TestOutQuadAndExpo(t *testing.T) {
	if got := OutQuad(0.5); math.Abs(got-0.75) > 0.001 {
		t.Errorf("OutQuad(0.5) = %v, 期望 0.75", got)
	}
	if got := OutExpo(1); got != 1 {
		t.Errorf("OutExpo(1) = %v, 期望 1", got)
	}
	if got := OutExpo(0); math.Abs(got) > 0.001 {
		t.Errorf("OutExpo(0) = %v, 期望 0", got)
	}
}

// TestCubicBezier 测试贝塞尔曲线求解
func TestCubicBezier(t *testing.T) {
	t.Run("端点", func(t *testing.T) {
		curves := map[string]Func{
			"toss":          Toss,
			"fastOutSlowIn": FastOutSlowIn,
		}
		for name, fn := range curves {
			if got := fn(0); got != 0 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); got != 1 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
		}
	})

	t.Run("对角线控制点等于线性", func(t *testing.T) {
		fn := CubicBezier(0.25, 0.25, 0.75, 0.75)
		for x := 0.05; x < 1; x += 0.05 {
			if got := fn(x); math.Abs(got-x) > 1e-5 {
				t.Errorf("CubicBezier diagonal(%v) = %v, 期望 %v", x, got, x)
			}
		}
	})

	t.Run("对称曲线中点", func(t *testing.T) {
		fn := CubicBezier(0.42, 0, 0.58, 1)
		if got := fn(0.5); math.Abs(got-0.5) > 1e-5 {
			t.Errorf("ease-in-out(0.5) = %v, 期望 0.5", got)
		}
	})

	t.Run("单调递增", func(t *testing.T) {
		for _, fn := range []Func{Toss, FastOutSlowIn} {
			prev := 0.0
			for i := 1; i <= 100; i++ {
				v := fn(float64(i) / 100)
				if v < prev-1e-9 {
					t.Fatalf("curve decreased at %v: %v < %v", float64(i)/100, v, prev)
				}
				prev = v
			}
		}
	})

	t.Run("快出曲线后半段领先线性", func(t *testing.T) {
		for _, x := range []float64{0.4, 0.6, 0.8} {
			if FastOutSlowIn(x) <= x {
				t.Errorf("FastOutSlowIn(%v) = %v 应该大于 %v", x, FastOutSlowIn(x), x)
			}
		}
	})
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q) error: %v", name, err)
		}
	}
	if _, err := ByName("bounce"); err == nil {
		t.Error("ByName(\"bounce\") 应该返回错误")
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 100, 0, 0},
		{0, 100, 1, 100},
		{0, 100, 0.5, 50},
		{-50, 50, 0.25, -25},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
		}
	}
}
