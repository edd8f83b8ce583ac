package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被替换或程序退出时调用 Dispose
//
// 持有后台 goroutine 的场景（例如发射器）在这里停止它们。
type Disposable interface {
	Dispose()
}

// LayoutAware 是一个可选接口，窗口逻辑尺寸变化时通知场景
type LayoutAware interface {
	SetLayout(width, height int)
}
