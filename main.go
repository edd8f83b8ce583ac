package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/burst/pkg/app"
	"github.com/gonewx/burst/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "粒子配置文件路径（默认使用内置的 data/burst.yaml）")
	seed := flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS, dataFS)

	burstApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		// NewApp 可能已经关闭了日志输出
		log.SetOutput(os.Stderr)
		fatal(fmt.Sprintf("初始化失败: %v", err))
	}

	window := burstApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(burstApp.StartFullscreen())

	err = ebiten.RunGame(burstApp)
	burstApp.Close()
	if err != nil {
		log.SetOutput(os.Stderr)
		fatal(err.Error())
	}
}

// fatal 打印错误并弹出对话框（从桌面启动时看不到终端输出）
func fatal(msg string) {
	log.Print(msg)
	if err := zenity.Error(msg, zenity.Title("Burst"), zenity.ErrorIcon); err != nil {
		log.Printf("[Main] failed to show error dialog: %v", err)
	}
	os.Exit(1)
}
