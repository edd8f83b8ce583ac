package scenes

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/flight"
	"github.com/gonewx/burst/pkg/game"
	"github.com/gonewx/burst/pkg/systems"
	"github.com/gonewx/burst/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 按钮布局
const (
	holdButtonWidth  = 160
	holdButtonHeight = 56
	holdButtonMargin = 40
	// 完全按下时按钮下沉的像素
	holdButtonTravel = 4

	hudFontSize    = 14
	buttonFontSize = 16
)

var (
	backgroundColor   = color.RGBA{R: 24, G: 26, B: 36, A: 255}
	buttonColor       = color.RGBA{R: 232, G: 93, B: 117, A: 255}
	buttonActiveColor = color.RGBA{R: 176, G: 54, B: 80, A: 255}
	buttonBorderColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	hudTextColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// BurstScene 粒子爆发演示场景
//
// 按住屏幕底部的按钮时，后台发射器持续从屏幕中心向随机目标发射粒子；
// 每帧由 Animator 推进所有飞行中的粒子并绘制。
type BurstScene struct {
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager // 可为 nil（无音频）
	settingsManager *game.SettingsManager

	animator *flight.Animator[flight.Particle, *flight.ImageCalculator]
	trigger  *systems.BurstTriggerSystem
	render   *systems.FlightRenderSystem
	hold     *utils.HoldTracker
	press    *utils.PressAnimation
	clock    *flight.FrameClock

	hudFace    *text.GoTextFace
	buttonFace *text.GoTextFace

	width, height int
	lastDrawn     int
}

// NewBurstScene 创建粒子爆发场景并启动后台发射器
func NewBurstScene(rm *game.ResourceManager, am *game.AudioManager, sm *game.SettingsManager, cfg *config.BurstConfig, seed int64) *BurstScene {
	opts := flight.Options[*flight.ImageCalculator]{
		Timeline:       cfg.Timeline(),
		BufferCapacity: cfg.Spawn.BufferCapacity,
	}
	if cfg.SortByScale() {
		opts.Less = flight.ByScale
	}
	animator := flight.NewImageAnimator(nil, flight.NewSpriteCache(), rm, opts)

	trigger := systems.NewBurstTriggerSystem(animator, nil, systems.BurstTriggerConfig{
		Sprite:    cfg.Particle.Sprite,
		Size:      cfg.ParticleSize(),
		Interval:  cfg.Interval(),
		BurstSize: sm.BurstSizeOr(cfg.Spawn.BurstSize),
		Seed:      seed,
	})

	s := &BurstScene{
		resourceManager: rm,
		audioManager:    am,
		settingsManager: sm,
		animator:        animator,
		trigger:         trigger,
		render:          systems.NewFlightRenderSystem(animator),
		hold:            utils.NewHoldTracker(utils.Rect{}),
		press:           utils.NewPressAnimation(ebiten.TPS()),
		clock:           flight.NewFrameClock(),
	}
	s.loadFonts()
	s.SetLayout(cfg.Window.Width, cfg.Window.Height)
	trigger.Start(context.Background())

	log.Printf("[BurstScene] Created: sprite=%s size=%v burst=%d", cfg.Particle.Sprite, cfg.ParticleSize(), trigger.BurstSize())
	return s
}

// loadFonts 加载 HUD 和按钮字体，失败时不绘制文字
func (s *BurstScene) loadFonts() {
	var err error
	if s.hudFace, err = utils.GoRegularFace(hudFontSize); err != nil {
		log.Printf("[BurstScene] Warning: %v", err)
		return
	}
	s.buttonFace, _ = utils.GoRegularFace(buttonFontSize)
}

// SetLayout 更新屏幕尺寸：发射起点在中心，按钮在底部居中
func (s *BurstScene) SetLayout(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.trigger.SetGeometry(width, height)
	s.hold.SetArea(holdButtonRect(width, height))
}

// Update 处理输入、推进粒子并播放发射音效
func (s *BurstScene) Update(deltaTime float64) {
	s.handleKeys()

	s.applyPointer(utils.ReadPointers())
	s.animator.Tick(s.clock.Now())

	// 同一帧内的多次发射只播放一次
	if s.trigger.TakeBursts() > 0 && s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundPop)
	}
}

// applyPointer 用本帧指针状态更新按钮，按住期间发射器持续工作
func (s *BurstScene) applyPointer(p utils.PointerSnapshot) bool {
	s.hold.Update(p)
	holding := s.hold.Holding()
	s.trigger.SetHolding(holding)
	s.press.Update(holding)
	return holding
}

// handleKeys S 切换统计显示，上下方向键调整每次发射的数量
func (s *BurstScene) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		show := s.settingsManager.ToggleShowStats()
		s.saveSettings()
		log.Printf("[BurstScene] show stats: %v", show)
	}

	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		delta = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		delta = -1
	}
	if delta != 0 {
		n := max(1, min(game.MaxBurstSize, s.trigger.BurstSize()+delta))
		s.settingsManager.SetBurstSize(n)
		s.trigger.SetBurstSize(n)
		s.saveSettings()
		log.Printf("[BurstScene] burst size: %d", n)
	}
}

func (s *BurstScene) saveSettings() {
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[BurstScene] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制粒子、按钮和统计信息
func (s *BurstScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.lastDrawn = s.render.Draw(screen)
	s.drawHoldButton(screen)

	if s.settingsManager.GetSettings().ShowStats && s.hudFace != nil {
		for i, line := range statsLines(s.animator.Stats(), s.lastDrawn) {
			op := &text.DrawOptions{}
			op.GeoM.Translate(10, float64(10+i*(hudFontSize+4)))
			op.ColorScale.ScaleWithColor(hudTextColor)
			text.Draw(screen, line, s.hudFace, op)
		}
	}
}

func (s *BurstScene) drawHoldButton(screen *ebiten.Image) {
	r := s.hold.Area()
	clr := buttonColor
	if s.hold.Holding() {
		clr = buttonActiveColor
	}

	depth := s.press.Value() * holdButtonTravel
	x, y, w, h := float32(r.X), float32(float64(r.Y)+depth), float32(r.W), float32(r.H)
	vector.DrawFilledRect(screen, x, y, w, h, clr, true)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, true)

	if s.buttonFace == nil {
		return
	}
	cx, cy := r.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy)+depth)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, "HOLD TO BURST", s.buttonFace, op)
}

// Dispose 停止后台发射器
func (s *BurstScene) Dispose() {
	s.trigger.SetHolding(false)
	s.trigger.Stop()
	st := s.animator.Stats()
	log.Printf("[BurstScene] Disposed: spawned=%d dropped=%d rejected=%d pool=%d",
		st.Spawned, st.Dropped, st.Rejected, st.PoolSize)
}

// Stats 返回动画器统计信息
func (s *BurstScene) Stats() flight.Stats {
	return s.animator.Stats()
}

// holdButtonRect 按钮位于屏幕底部居中
func holdButtonRect(width, height int) utils.Rect {
	return utils.Rect{
		X: (width - holdButtonWidth) / 2,
		Y: height - holdButtonHeight - holdButtonMargin,
		W: holdButtonWidth,
		H: holdButtonHeight,
	}
}

// statsLines 统计信息文本
func statsLines(st flight.Stats, drawn int) []string {
	return []string{
		fmt.Sprintf("Count particle: %d", st.Active),
		fmt.Sprintf("Calculator buffer: %d", st.PoolSize),
		fmt.Sprintf("Drawn: %d  Dropped: %d", drawn, st.Dropped),
		fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
}
