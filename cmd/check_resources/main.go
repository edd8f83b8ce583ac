// check_resources 检查内置配置和资源文件是否一致
//
// 验证 data/burst.yaml 可以解析，assets/config/resources.yaml 中声明的每个
// 资源文件都存在，并且粒子配置引用的精灵和音效都已声明。
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/game"
)

var (
	configPath   = flag.String("config", config.DefaultBurstConfigPath, "粒子配置文件")
	resourcePath = flag.String("resources", "assets/config/resources.yaml", "资源配置文件")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadBurstConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确 (duration=%dms burst=%d buffer=%d)\n",
		*configPath, cfg.Animation.DurationMs, cfg.Spawn.BurstSize, cfg.Spawn.BufferCapacity)

	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig(*resourcePath); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	ids := rm.ResourceIDs()
	fmt.Printf("✅ %s 声明了 %d 个资源\n", *resourcePath, len(ids))

	missing := 0
	for _, id := range ids {
		path, _ := rm.ResolvePath(id)
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("❌ %s: %s 不存在\n", id, path)
			missing++
		}
	}
	for _, id := range []string{cfg.Particle.Sprite, game.SoundPop} {
		if !slices.Contains(ids, id) {
			fmt.Printf("❌ 资源 %s 未在 %s 中声明\n", id, *resourcePath)
			missing++
		}
	}

	if missing > 0 {
		fmt.Printf("❌ 共 %d 个问题\n", missing)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有资源文件都存在\n")
}
