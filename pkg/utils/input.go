// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSnapshot 当前帧的指针状态，统一鼠标和触摸输入
type PointerSnapshot struct {
	// Count 活动指针数量（触摸点数，鼠标按下时为 1）
	Count int
	// JustPressed 本帧是否有新的按下
	JustPressed bool
	// X, Y 主指针位置
	X, Y int
}

// Pressed 是否有指针按下
func (s PointerSnapshot) Pressed() bool {
	return s.Count > 0
}

// ReadPointers 读取当前帧的指针状态
// 优先检测触摸，没有触摸时检测鼠标左键
func ReadPointers() PointerSnapshot {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		s := PointerSnapshot{Count: len(touchIDs)}
		s.X, s.Y = ebiten.TouchPosition(touchIDs[0])
		s.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		return s
	}

	s := PointerSnapshot{}
	s.X, s.Y = ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.Count = 1
	}
	s.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return s
}

// Rect 屏幕上的矩形区域
type Rect struct {
	X, Y, W, H int
}

// Contains 点是否在矩形内（左上闭、右下开）
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center 矩形中心
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// HoldTracker 跟踪"按住按钮"状态
//
// 在按钮区域内按下开始按住，松开后结束。
// 第二个手指触摸屏幕时立即结束，避免多指误触持续发射。
type HoldTracker struct {
	area    Rect
	holding bool
}

// NewHoldTracker 创建按钮区域为 area 的跟踪器
func NewHoldTracker(area Rect) *HoldTracker {
	return &HoldTracker{area: area}
}

// SetArea 更新按钮区域（窗口尺寸变化时调用）
func (h *HoldTracker) SetArea(area Rect) {
	h.area = area
}

// Area 返回按钮区域
func (h *HoldTracker) Area() Rect {
	return h.area
}

// Update 根据本帧指针状态更新，返回按住状态是否变化
func (h *HoldTracker) Update(s PointerSnapshot) bool {
	was := h.holding
	switch {
	case s.Count > 1:
		h.holding = false
	case h.holding:
		h.holding = s.Pressed()
	default:
		h.holding = s.JustPressed && s.Count == 1 && h.area.Contains(s.X, s.Y)
	}
	return was != h.holding
}

// Holding 是否正在按住
func (h *HoldTracker) Holding() bool {
	return h.holding
}
