package flight

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestImageCalculatorScenario(t *testing.T) {
	ctx := newTestContext()
	calc := NewImageCalculator(nil, nil)

	p := dogParticle(1, Point{X: 0, Y: 0}, Point{X: 400, Y: 0})
	if err := calc.Init(p, ms(100), ctx); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if calc.State() != StateInitiated {
		t.Fatalf("State = %v, 期望 Initiated", calc.State())
	}
	if calc.Showed() {
		t.Error("刚初始化的计算器不应该可见")
	}
	if got := calc.PlayTime(ms(600)); got != 500*time.Millisecond {
		t.Errorf("PlayTime = %v, 期望 500ms", got)
	}

	calc.Calculate(0.5)

	if !calc.Showed() || calc.State() != StateCalculated {
		t.Fatalf("State = %v, 期望 Calculated", calc.State())
	}
	if math.Abs(calc.Scale()-2.2) > 1e-9 {
		t.Errorf("Scale = %v, 期望 2.2", calc.Scale())
	}
	if calc.Size() != (Size{Width: 44, Height: 44}) {
		t.Errorf("Size = %v, 期望 {44 44}", calc.Size())
	}
	if math.Abs(calc.Opacity()-0.99609375) > 1e-12 {
		t.Errorf("Opacity = %v", calc.Opacity())
	}
	// lerp (200, 0) 再减去放大量的一半 (12, 12)
	if calc.Position() != (Point{X: 188, Y: -12}) {
		t.Errorf("Position = %v, 期望 {188 -12}", calc.Position())
	}

	surface := &recordSurface{}
	calc.Draw(surface)
	if len(surface.calls) != 1 {
		t.Fatalf("draw calls = %d, 期望 1", len(surface.calls))
	}
	call := surface.calls[0]
	if call.dst != calc.Position() || call.size != calc.Size() || call.alpha != calc.Opacity() {
		t.Errorf("draw call = %+v", call)
	}
	if call.sprite != calc.Sprite() {
		t.Error("draw call should use the resolved sprite")
	}

	calc.Finish()
	if calc.State() != StateFinished || calc.Showed() {
		t.Errorf("State = %v, 期望 Finished", calc.State())
	}
}

func TestImageCalculatorNaturalSize(t *testing.T) {
	calc := NewImageCalculator(nil, nil)
	p := Particle{ID: 1, Sprite: "dog", Start: Point{X: 100, Y: 100}, Target: Point{X: 100, Y: 100}}
	if err := calc.Init(p, 0, newTestContext()); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if calc.SourceSize() != (Size{Width: 64, Height: 64}) {
		t.Fatalf("SourceSize = %v, 期望图片原始尺寸 {64 64}", calc.SourceSize())
	}

	calc.Calculate(0)
	// 64 * 0.85 = 54.4 → 54，缩小量一半为 -5
	if calc.Size() != (Size{Width: 54, Height: 54}) {
		t.Errorf("Size = %v, 期望 {54 54}", calc.Size())
	}
	if calc.Position() != (Point{X: 105, Y: 105}) {
		t.Errorf("Position = %v, 期望 {105 105}", calc.Position())
	}
}

func TestImageCalculatorReuse(t *testing.T) {
	ctx := newTestContext()
	calc := NewImageCalculator(nil, nil)

	first := dogParticle(1, Point{}, Point{X: 400, Y: 400})
	if err := calc.Init(first, 0, ctx); err != nil {
		t.Fatal(err)
	}
	calc.Calculate(0.7)
	calc.Finish()

	second := Particle{ID: 2, Sprite: "heart", Start: Point{X: 5, Y: 5}, Target: Point{X: 9, Y: 9}}
	if err := calc.Init(second, ms(2000), ctx); err != nil {
		t.Fatal(err)
	}

	if calc.State() != StateInitiated || calc.Showed() {
		t.Errorf("State = %v, 期望 Initiated", calc.State())
	}
	if calc.Particle() != second {
		t.Errorf("Particle = %+v, 期望 %+v", calc.Particle(), second)
	}
	if calc.Scale() != 0 || calc.Opacity() != 0 || calc.Size() != (Size{}) || calc.Position() != (Point{}) {
		t.Errorf("outputs leaked from previous particle: scale=%v size=%v opacity=%v pos=%v",
			calc.Scale(), calc.Size(), calc.Opacity(), calc.Position())
	}
	if calc.SourceSize() != (Size{Width: 32, Height: 16}) {
		t.Errorf("SourceSize = %v, 期望 {32 16}", calc.SourceSize())
	}
	if got := calc.PlayTime(ms(2000)); got != 0 {
		t.Errorf("PlayTime = %v, 期望 0", got)
	}
}

func TestImageCalculatorSharedCache(t *testing.T) {
	ctx := newTestContext()
	cache := NewSpriteCache()
	factory := NewImageFactory(nil, cache)

	a, b := factory(), factory()
	if err := a.Init(dogParticle(1, Point{}, Point{}), 0, ctx); err != nil {
		t.Fatal(err)
	}
	if err := b.Init(dogParticle(2, Point{}, Point{}), 0, ctx); err != nil {
		t.Fatal(err)
	}

	if ctx.loads != 1 || cache.Loads() != 1 || cache.Len() != 1 {
		t.Errorf("loads = %d/%d, len = %d, 期望同一图片只加载一次", ctx.loads, cache.Loads(), cache.Len())
	}
	if a.Sprite() != b.Sprite() {
		t.Error("calculators from one factory should share the decoded sprite")
	}
}

func TestImageCalculatorInitError(t *testing.T) {
	calc := NewImageCalculator(nil, nil)
	err := calc.Init(Particle{ID: 1, Sprite: "missing"}, 0, newTestContext())
	if !errors.Is(err, errNoSprite) {
		t.Fatalf("Init error = %v, 期望 errNoSprite", err)
	}
	if calc.State() != StateCreated {
		t.Errorf("State = %v, 失败的 Init 不应该改变状态", calc.State())
	}

	if err := calc.Init(Particle{ID: 2, Sprite: "dog"}, 0, nil); err == nil {
		t.Error("Init without render context should fail")
	}
}

func TestImageCalculatorCustomFunctions(t *testing.T) {
	calc := NewImageCalculator(constantFunctions{scale: 1, opacity: 0.25}, nil)
	if err := calc.Init(dogParticle(1, Point{X: 10, Y: 20}, Point{X: 30, Y: 40}), 0, newTestContext()); err != nil {
		t.Fatal(err)
	}
	calc.Calculate(0.5)
	if calc.Size() != (Size{Width: 20, Height: 20}) || calc.Opacity() != 0.25 {
		t.Errorf("size=%v opacity=%v", calc.Size(), calc.Opacity())
	}
	if calc.Position() != (Point{X: 20, Y: 30}) {
		t.Errorf("Position = %v, 期望 {20 30}", calc.Position())
	}
}

func TestFinishFromInitiated(t *testing.T) {
	var b BasicCalculator
	b.Initiate(0)
	b.Finish()
	if b.State() != StateFinished {
		t.Errorf("State = %v, 期望 Finished", b.State())
	}
	b.Initiate(ms(10))
	if b.State() != StateInitiated || b.StartTime() != ms(10) {
		t.Errorf("re-Initiate: state=%v start=%d", b.State(), b.StartTime())
	}
}

func TestStateString(t *testing.T) {
	names := map[State]string{
		StateCreated:    "Created",
		StateInitiated:  "Initiated",
		StateCalculated: "Calculated",
		StateFinished:   "Finished",
		State(42):       "Unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, 期望 %q", int(s), s.String(), want)
		}
	}
}

func TestByScale(t *testing.T) {
	small := &ImageCalculator{scale: 0.9}
	big := &ImageCalculator{scale: 2.1}
	if ByScale(small, big) >= 0 || ByScale(big, small) <= 0 || ByScale(big, big) != 0 {
		t.Error("ByScale should order by ascending scale")
	}
}

type constantFunctions struct {
	scale   float64
	opacity float64
}

func (f constantFunctions) Scale(float64) float64   { return f.scale }
func (f constantFunctions) Opacity(float64) float64 { return f.opacity }
func (f constantFunctions) Position(progress float64, start, target Point) Point {
	return DefaultFunctions{}.Position(progress, start, target)
}
