// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/game"
	"github.com/gonewx/burst/pkg/scenes"
	"github.com/gonewx/burst/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 资源配置路径与存储名称
const (
	ResourceConfigPath = "assets/config/resources.yaml"
	AppName            = "burst"
	resourceGroup      = "burst"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 粒子配置文件路径，为空时使用内置的 data/burst.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	burstConfig     *config.BurstConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultBurstConfigPath
	}
	burstConfig, err := config.LoadBurstConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("粒子配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载粒子配置: %s", configPath)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup(resourceGroup); err != nil {
		return nil, fmt.Errorf("资源组 %s 加载失败: %w", resourceGroup, err)
	}

	settingsManager := game.NewSettingsManager(openStorage())
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds([]string{game.SoundPop})
	log.Printf("[App] AudioManager initialized")

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		if name != scenes.BurstSceneName {
			return nil
		}
		return scenes.NewBurstScene(resourceManager, audioManager, settingsManager, burstConfig, cfg.Seed)
	})
	sceneManager.SetLayout(burstConfig.Window.Width, burstConfig.Window.Height)
	if !sceneManager.Load(scenes.BurstSceneName) {
		return nil, fmt.Errorf("failed to create scene %s", scenes.BurstSceneName)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		burstConfig:     burstConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置仅保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: failed to prepare storage dir: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return m
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.burstConfig.Window.Width, a.burstConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// R 重置场景
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Load(scenes.BurstSceneName)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
//
// 桌面端使用配置的窗口尺寸；移动端使用设备提供的尺寸，粒子起点和按钮随之调整。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := layoutSize(a.burstConfig.Window, outsideWidth, outsideHeight, utils.IsMobile())
	a.sceneManager.SetLayout(w, h)
	return w, h
}

// layoutSize 计算逻辑屏幕尺寸
func layoutSize(window config.WindowConfig, outsideWidth, outsideHeight int, mobile bool) (int, int) {
	if mobile && outsideWidth > 0 && outsideHeight > 0 {
		return outsideWidth, outsideHeight
	}
	return window.Width, window.Height
}

// WindowConfig 返回窗口配置，供 main 设置窗口
func (a *App) WindowConfig() config.WindowConfig {
	return a.burstConfig.Window
}

// StartFullscreen 是否按用户设置以全屏启动
func (a *App) StartFullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// Close 停止当前场景的后台任务
func (a *App) Close() {
	a.sceneManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
