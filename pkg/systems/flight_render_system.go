package systems

import (
	"log"

	"github.com/gonewx/burst/pkg/flight"
	"github.com/gonewx/burst/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// FlightDrawer 绘制所有飞行中的粒子；*flight.Animator 满足该接口
type FlightDrawer interface {
	Draw(s flight.Surface)
}

// EbitenSurface 将 flight.Surface 的绘制调用转换为 ebiten 的 DrawImage
type EbitenSurface struct {
	Target *ebiten.Image

	drawn   int
	skipped int
	warned  bool
}

// DrawSprite 把精灵缩放到 size 并绘制在 dst（左上角），alpha 超出 [0,1] 时截断
func (s *EbitenSurface) DrawSprite(sprite flight.Sprite, dst flight.Point, size flight.Size, alpha float64) {
	if size.Width <= 0 || size.Height <= 0 {
		s.skipped++
		return
	}
	img, ok := sprite.(game.ImageSprite)
	if !ok || img.Image == nil {
		if !s.warned {
			log.Printf("[FlightRenderSystem] unsupported sprite type %T", sprite)
			s.warned = true
		}
		s.skipped++
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = SpriteGeoM(img.Size(), dst, size)
	op.ColorScale.ScaleAlpha(float32(ClampAlpha(alpha)))
	op.Filter = ebiten.FilterLinear
	s.Target.DrawImage(img.Image, op)
	s.drawn++
}

// Drawn 本帧绘制的精灵数量
func (s *EbitenSurface) Drawn() int {
	return s.drawn
}

// Skipped 本帧跳过的精灵数量（尺寸为 0 或类型不支持）
func (s *EbitenSurface) Skipped() int {
	return s.skipped
}

// SpriteGeoM 计算将 src 尺寸的图片缩放到 size 并平移到 dst 的变换矩阵
func SpriteGeoM(src flight.Size, dst flight.Point, size flight.Size) ebiten.GeoM {
	var m ebiten.GeoM
	if src.Width > 0 && src.Height > 0 {
		m.Scale(float64(size.Width)/float64(src.Width), float64(size.Height)/float64(src.Height))
	}
	m.Translate(float64(dst.X), float64(dst.Y))
	return m
}

// ClampAlpha 将透明度限制在 [0,1]
func ClampAlpha(alpha float64) float64 {
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

// FlightRenderSystem 每帧把动画器的渲染查询结果绘制到屏幕
type FlightRenderSystem struct {
	drawer  FlightDrawer
	surface EbitenSurface
}

// NewFlightRenderSystem 创建粒子渲染系统
func NewFlightRenderSystem(drawer FlightDrawer) *FlightRenderSystem {
	log.Printf("[FlightRenderSystem] Initialized")
	return &FlightRenderSystem{drawer: drawer}
}

// Draw 绘制本帧所有可见粒子，返回绘制数量
func (s *FlightRenderSystem) Draw(screen *ebiten.Image) int {
	s.surface.Target = screen
	s.surface.drawn = 0
	s.surface.skipped = 0
	s.drawer.Draw(&s.surface)
	return s.surface.drawn
}

// LastSkipped 上一帧跳过的精灵数量
func (s *FlightRenderSystem) LastSkipped() int {
	return s.surface.skipped
}
