package flight

import (
	"errors"
	"time"
)

var errNoSprite = errors.New("sprite not found")

type testSprite struct {
	id   string
	size Size
}

func (s *testSprite) Size() Size { return s.size }

// testContext 模拟资源管理器，按 id 返回固定尺寸的精灵
type testContext struct {
	sizes map[string]Size
	loads int
}

func newTestContext() *testContext {
	return &testContext{sizes: map[string]Size{
		"dog":   {Width: 64, Height: 64},
		"heart": {Width: 32, Height: 16},
	}}
}

func (c *testContext) LoadSprite(id string) (Sprite, error) {
	size, ok := c.sizes[id]
	if !ok {
		return nil, errNoSprite
	}
	c.loads++
	return &testSprite{id: id, size: size}, nil
}

type drawCall struct {
	sprite Sprite
	dst    Point
	size   Size
	alpha  float64
}

type recordSurface struct {
	calls []drawCall
}

func (s *recordSurface) DrawSprite(sp Sprite, dst Point, size Size, alpha float64) {
	s.calls = append(s.calls, drawCall{sprite: sp, dst: dst, size: size, alpha: alpha})
}

// ms 把毫秒转换为帧时间戳（纳秒）
func ms(n int64) int64 {
	return int64(time.Duration(n) * time.Millisecond)
}

func linearTween(d time.Duration) Tween {
	return Tween{Duration: d}
}

func dogParticle(id uint64, start, target Point) Particle {
	return Particle{
		ID:     id,
		Sprite: "dog",
		Size:   Size{Width: 20, Height: 20},
		Start:  start,
		Target: target,
	}
}
