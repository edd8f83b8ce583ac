// Package main provides a curve viewer for the particle flight functions.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--easing <name>   Start with a specific easing curve (default toss)
//	--duration <ms>   Preview flight duration in milliseconds
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Left/Right Arrow  - Switch easing curve
//	Space             - Launch a preview particle along the current curve
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"slices"
	"time"

	"github.com/gonewx/burst/pkg/easing"
	"github.com/gonewx/burst/pkg/flight"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 900
	screenHeight = 600

	plotX      = 60
	plotY      = 60
	plotWidth  = 480
	plotHeight = 360
	// Scale 曲线的纵轴范围
	plotMaxY = 2.5

	samples = 120
)

var (
	easingFlag   = flag.String("easing", "toss", "Initial easing curve name")
	durationFlag = flag.Int("duration", 2100, "Preview flight duration (ms)")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")

	errQuit = errors.New("quit")

	axisColor    = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	scaleColor   = color.RGBA{R: 240, G: 120, B: 60, A: 255}
	opacityColor = color.RGBA{R: 90, G: 180, B: 250, A: 255}
	easingColor  = color.RGBA{R: 130, G: 220, B: 120, A: 255}
	dotColor     = color.RGBA{R: 255, G: 230, B: 90, A: 255}
)

// dotSprite 预览用的纯色方块
type dotSprite struct{ img *ebiten.Image }

func (d dotSprite) Size() flight.Size {
	b := d.img.Bounds()
	return flight.Size{Width: b.Dx(), Height: b.Dy()}
}

type dotContext struct{ sprite dotSprite }

func (c dotContext) LoadSprite(string) (flight.Sprite, error) {
	return c.sprite, nil
}

// previewSurface 把预览粒子绘制到屏幕
type previewSurface struct{ screen *ebiten.Image }

func (s previewSurface) DrawSprite(sp flight.Sprite, dst flight.Point, size flight.Size, alpha float64) {
	d, ok := sp.(dotSprite)
	if !ok || size.Width <= 0 || size.Height <= 0 {
		return
	}
	src := d.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size.Width)/float64(src.Width), float64(size.Height)/float64(src.Height))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.ColorScale.ScaleAlpha(float32(max(0, min(1, alpha))))
	s.screen.DrawImage(d.img, op)
}

// CurveViewer implements ebiten.Game
type CurveViewer struct {
	names    []string
	index    int
	duration time.Duration

	ids      flight.IDSequence
	clock    *flight.FrameClock
	animator *flight.Animator[flight.Particle, *flight.ImageCalculator]
	context  dotContext
}

func newCurveViewer(initial string, duration time.Duration) *CurveViewer {
	img := ebiten.NewImage(16, 16)
	img.Fill(dotColor)

	v := &CurveViewer{
		names:    easing.Names(),
		duration: duration,
		clock:    flight.NewFrameClock(),
		context:  dotContext{sprite: dotSprite{img: img}},
	}
	if i := slices.Index(v.names, initial); i >= 0 {
		v.index = i
	}
	v.rebuildAnimator()
	return v
}

func (v *CurveViewer) currentEasing() easing.Func {
	fn, err := easing.ByName(v.names[v.index])
	if err != nil {
		return easing.Linear
	}
	return fn
}

// rebuildAnimator 切换曲线时重新创建动画器
func (v *CurveViewer) rebuildAnimator() {
	v.animator = flight.NewImageAnimator(nil, nil, v.context, flight.Options[*flight.ImageCalculator]{
		Timeline: flight.Tween{Duration: v.duration, Easing: v.currentEasing()},
	})
	log.Printf("[CurveViewer] easing=%s duration=%v", v.names[v.index], v.duration)
}

func (v *CurveViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.index = (v.index + 1) % len(v.names)
		v.rebuildAnimator()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		v.index = (v.index + len(v.names) - 1) % len(v.names)
		v.rebuildAnimator()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.animator.Spawn(flight.Particle{
			ID:     v.ids.Next(),
			Size:   flight.Size{Width: 20, Height: 20},
			Start:  flight.Point{X: 720, Y: 500},
			Target: flight.Point{X: 720, Y: 120},
		})
	}
	v.animator.Tick(v.clock.Now())
	return nil
}

// toScreen 曲线坐标转换为屏幕坐标
func toScreen(x, y float64) (float32, float32) {
	sx := easing.Lerp(plotX, plotX+plotWidth, x)
	sy := easing.Lerp(plotY+plotHeight, plotY, y/plotMaxY)
	return float32(sx), float32(sy)
}

func drawCurve(screen *ebiten.Image, fn func(float64) float64, clr color.Color) {
	px, py := toScreen(0, fn(0))
	for i := 1; i <= samples; i++ {
		x := float64(i) / samples
		cx, cy := toScreen(x, fn(x))
		vector.StrokeLine(screen, px, py, cx, cy, 2, clr, true)
		px, py = cx, cy
	}
}

func (v *CurveViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 20, B: 28, A: 255})

	// 坐标轴与 y=1 参考线
	x0, y0 := toScreen(0, 0)
	x1, y1 := toScreen(1, 1)
	vector.StrokeLine(screen, x0, y0, x1, y0, 1, axisColor, false)
	vector.StrokeLine(screen, x0, y0, x0, float32(plotY), 1, axisColor, false)
	vector.StrokeLine(screen, x0, y1, x1, y1, 1, axisColor, false)

	fns := flight.DefaultFunctions{}
	drawCurve(screen, fns.Scale, scaleColor)
	drawCurve(screen, fns.Opacity, opacityColor)
	drawCurve(screen, v.currentEasing(), easingColor)

	v.animator.Draw(previewSurface{screen: screen})

	ebitenutil.DebugPrintAt(screen, "scale = -4x^3 + 3.7x + 0.85", plotX, plotY+plotHeight+20)
	ebitenutil.DebugPrintAt(screen, "opacity = 1 - x^8", plotX, plotY+plotHeight+36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("easing: %s  (Left/Right to switch)", v.names[v.index]), plotX, plotY+plotHeight+52)
	st := v.animator.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Space: launch  in flight: %d  pool: %d", st.Active, st.PoolSize), plotX, plotY+plotHeight+68)
}

func (v *CurveViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	viewer := newCurveViewer(*easingFlag, time.Duration(*durationFlag)*time.Millisecond)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Burst - Flight Curves")
	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
