package utils

import "github.com/charmbracelet/harmonica"

// PressAnimation 按钮按下深度的弹簧动画，取值大约在 [0,1]，1 表示完全按下
type PressAnimation struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewPressAnimation 创建按每秒 fps 帧更新的弹簧动画
func NewPressAnimation(fps int) *PressAnimation {
	if fps <= 0 {
		fps = 60
	}
	return &PressAnimation{spring: harmonica.NewSpring(harmonica.FPS(fps), 12.0, 0.6)}
}

// Update 推进一帧，返回当前深度
func (p *PressAnimation) Update(pressed bool) float64 {
	target := 0.0
	if pressed {
		target = 1
	}
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, target)
	return p.pos
}

// Value 当前深度
func (p *PressAnimation) Value() float64 {
	return p.pos
}
