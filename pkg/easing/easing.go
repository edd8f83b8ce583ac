// Package easing holds the easing curves used by flight timelines.
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值（通常 ∈ [0, 1]）。
//
// 参考：https://easings.net/
package easing

import (
	"fmt"
	"math"
	"sort"
)

// Func maps linear progress to eased progress.
type Func func(t float64) float64

// Linear 线性缓动（无缓动）
func Linear(t float64) float64 {
	return t
}

// OutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// InOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// OutExpo 指数缓出
// 公式：f(t) = 1 - 2^(-10t)
func OutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// CubicBezier returns the CSS-style cubic-bezier curve through (0,0), (x1,y1),
// (x2,y2), (1,1). x1 and x2 must lie in [0, 1] so the curve is a function of x.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	// 多项式系数，B(t) = ((a·t + b)·t + c)·t
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solveT := func(x float64) float64 {
		const epsilon = 1e-7
		// 牛顿迭代，通常几步即可收敛
		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < epsilon {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}
		// 斜率过小时退回二分法
		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < 64 && lo < hi; i++ {
			v := sampleX(t)
			if math.Abs(v-x) < epsilon {
				return t
			}
			if v < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		return sampleY(solveT(x))
	}
}

// FastOutSlowIn is cubic-bezier(0.4, 0, 0.2, 1), the common material motion curve.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// Toss is cubic-bezier(0.5, 0.6, 0.4, 0.8), the default burst flight curve.
var Toss = CubicBezier(0.5, 0.6, 0.4, 0.8)

var named = map[string]Func{
	"linear":        Linear,
	"outCubic":      OutCubic,
	"inOutCubic":    InOutCubic,
	"outQuad":       OutQuad,
	"outExpo":       OutExpo,
	"fastOutSlowIn": FastOutSlowIn,
	"toss":          Toss,
}

// ByName looks up a named curve.
func ByName(name string) (Func, error) {
	fn, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (known: %v)", name, Names())
	}
	return fn, nil
}

// Names lists the named curves, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
