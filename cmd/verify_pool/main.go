// verify_pool 无窗口地运行粒子调度器，验证计算器池的复用和缓冲区的丢弃统计
//
// 用法：
//
//	go run ./cmd/verify_pool --particles 1000 --producers 4
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/flight"
	"golang.org/x/sync/errgroup"
)

var (
	particles  = flag.Int("particles", 1000, "发射的粒子总数")
	producers  = flag.Int("producers", 4, "并发发射的 goroutine 数量")
	spread     = flag.Duration("spread", 500*time.Millisecond, "发射时间跨度")
	fps        = flag.Int("fps", 60, "帧率")
	configPath = flag.String("config", config.DefaultBurstConfigPath, "粒子配置文件")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// squareSprite 无需解码图片的固定尺寸精灵
type squareSprite struct{}

func (squareSprite) Size() flight.Size { return flight.Size{Width: 64, Height: 64} }

type headlessContext struct{}

func (headlessContext) LoadSprite(string) (flight.Sprite, error) { return squareSprite{}, nil }

// countingSurface 统计每帧的绘制调用
type countingSurface struct{ calls int }

func (s *countingSurface) DrawSprite(flight.Sprite, flight.Point, flight.Size, float64) { s.calls++ }

// splitParticles 把 total 个粒子分给 producers 个 goroutine，余数分给前几个
func splitParticles(total, producers int) []int {
	producers = max(1, producers)
	counts := make([]int, producers)
	for i := range counts {
		counts[i] = total / producers
		if i < total%producers {
			counts[i]++
		}
	}
	return counts
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadBurstConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	opts := flight.Options[*flight.ImageCalculator]{
		Timeline:       cfg.Timeline(),
		BufferCapacity: cfg.Spawn.BufferCapacity,
	}
	if cfg.SortByScale() {
		opts.Less = flight.ByScale
	}
	animator := flight.NewImageAnimator(nil, nil, headlessContext{}, opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ids flight.IDSequence
	var g errgroup.Group
	for p, count := range splitParticles(*particles, *producers) {
		seed := int64(p + 1)
		perProducer := count
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			pause := *spread / time.Duration(max(1, perProducer))
			for i := 0; i < perProducer; i++ {
				animator.Spawn(flight.Particle{
					ID:     ids.Next(),
					Sprite: cfg.Particle.Sprite,
					Size:   cfg.ParticleSize(),
					Start:  flight.Point{X: cfg.Window.Width / 2, Y: cfg.Window.Height / 2},
					Target: flight.Point{X: rng.Intn(max(1, cfg.Window.Width)), Y: rng.Intn(max(1, cfg.Window.Height))},
				})
				time.Sleep(pause)
			}
			return nil
		})
	}

	// 发射结束且所有粒子落地后停止
	go func() {
		_ = g.Wait()
		for animator.Pending() > 0 {
			time.Sleep(10 * time.Millisecond)
		}
		time.Sleep(cfg.Timeline().Duration + 100*time.Millisecond)
		cancel()
	}()

	frames := flight.Ticker(ctx, time.Second/time.Duration(max(1, *fps)))
	surface := &countingSurface{}
	peak, frameCount := 0, 0
	start := time.Now()
	for now := range frames {
		animator.Tick(now)
		animator.Draw(surface)
		frameCount++
		if st := animator.Stats(); st.Active > peak {
			peak = st.Active
		}
	}

	st := animator.Stats()
	fmt.Printf("frames:        %d (%.1fs)\n", frameCount, time.Since(start).Seconds())
	fmt.Printf("spawned:       %d\n", st.Spawned)
	fmt.Printf("dropped:       %d\n", st.Dropped)
	fmt.Printf("rejected:      %d\n", st.Rejected)
	fmt.Printf("peak active:   %d\n", peak)
	fmt.Printf("pool size:     %d (available %d)\n", st.PoolSize, st.PoolAvailable)
	fmt.Printf("draw calls:    %d\n", surface.calls)
	fmt.Printf("final phase:   %s\n", st.Phase)

	if st.PoolSize != peak {
		fmt.Fprintf(os.Stderr, "pool size %d does not match peak active %d\n", st.PoolSize, peak)
		os.Exit(1)
	}
}
