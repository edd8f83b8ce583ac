package systems

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gonewx/burst/pkg/flight"
)

// Spawner accepts new particles; *flight.Animator satisfies it.
type Spawner interface {
	Spawn(p flight.Particle) bool
}

// BurstTriggerConfig 发射器参数
type BurstTriggerConfig struct {
	Sprite    string        // 粒子资源 ID
	Size      flight.Size   // 粒子尺寸，零值表示图片原始尺寸
	Interval  time.Duration // 按住时的发射间隔
	BurstSize int           // 每次发射的粒子数量
	Seed      int64         // 随机种子，0 表示使用当前时间
}

// screenGeometry 发射起点与目标范围
type screenGeometry struct {
	width, height int
	start         flight.Point
}

// BurstTriggerSystem 按住按钮时在后台 goroutine 中持续发射粒子
//
// 每次发射 BurstSize 个粒子，从屏幕中心飞向屏幕内均匀随机的目标点。
// 松开按钮只停止发射，已经在飞行的粒子会自然结束。
type BurstTriggerSystem struct {
	spawner  Spawner
	ids      *flight.IDSequence
	sprite   string
	size     flight.Size
	interval time.Duration

	burstSize atomic.Int32
	holding   atomic.Bool
	bursts    atomic.Int32 // 尚未被 TakeBursts 取走的发射次数
	geometry  atomic.Pointer[screenGeometry]

	rngMu sync.Mutex
	rng   *rand.Rand

	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

// NewBurstTriggerSystem 创建发射系统，ids 为 nil 时使用内部的 ID 序列
func NewBurstTriggerSystem(spawner Spawner, ids *flight.IDSequence, cfg BurstTriggerConfig) *BurstTriggerSystem {
	if ids == nil {
		ids = &flight.IDSequence{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	s := &BurstTriggerSystem{
		spawner:  spawner,
		ids:      ids,
		sprite:   cfg.Sprite,
		size:     cfg.Size,
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)),
		wake:     make(chan struct{}, 1),
	}
	s.SetBurstSize(cfg.BurstSize)
	log.Printf("[BurstTriggerSystem] Initialized: sprite=%s burst=%d interval=%v seed=%d",
		cfg.Sprite, cfg.BurstSize, interval, seed)
	return s
}

// SetGeometry 设置屏幕尺寸，发射起点为屏幕中心
func (s *BurstTriggerSystem) SetGeometry(width, height int) {
	if g := s.geometry.Load(); g != nil && g.width == width && g.height == height {
		return
	}
	s.geometry.Store(&screenGeometry{
		width:  width,
		height: height,
		start:  flight.Point{X: width / 2, Y: height / 2},
	})
}

// SetBurstSize 设置每次发射的粒子数量
func (s *BurstTriggerSystem) SetBurstSize(n int) {
	if n < 0 {
		n = 0
	}
	s.burstSize.Store(int32(n))
}

// BurstSize 返回每次发射的粒子数量
func (s *BurstTriggerSystem) BurstSize() int {
	return int(s.burstSize.Load())
}

// SetHolding 更新按钮按住状态，按下时立即发射一次
func (s *BurstTriggerSystem) SetHolding(holding bool) {
	if s.holding.Swap(holding) == holding || !holding {
		return
	}
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Holding 是否正在按住
func (s *BurstTriggerSystem) Holding() bool {
	return s.holding.Load()
}

// Start 启动后台发射 goroutine，直到 ctx 结束或调用 Stop
func (s *BurstTriggerSystem) Start(ctx context.Context) {
	if s.done != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)
}

// Stop 停止后台 goroutine 并等待其退出
func (s *BurstTriggerSystem) Stop() {
	if s.done == nil {
		return
	}
	s.cancel()
	<-s.done
	s.done = nil
}

func (s *BurstTriggerSystem) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		}

		ticker := time.NewTicker(s.interval)
		for s.holding.Load() {
			s.FireBurst()
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
			}
		}
		ticker.Stop()
	}
}

// FireBurst 立即发射一次，返回被接受的粒子数量
// 尚未设置屏幕尺寸时不发射
func (s *BurstTriggerSystem) FireBurst() int {
	g := s.geometry.Load()
	if g == nil {
		return 0
	}

	n := s.BurstSize()
	accepted := 0
	for i := 0; i < n; i++ {
		if s.spawner.Spawn(s.newParticle(g)) {
			accepted++
		}
	}
	if n > 0 {
		s.bursts.Add(1)
	}
	return accepted
}

func (s *BurstTriggerSystem) newParticle(g *screenGeometry) flight.Particle {
	s.rngMu.Lock()
	target := flight.Point{X: s.randInt(g.width), Y: s.randInt(g.height)}
	s.rngMu.Unlock()

	return flight.Particle{
		ID:     s.ids.Next(),
		Sprite: s.sprite,
		Size:   s.size,
		Start:  g.start,
		Target: target,
	}
}

func (s *BurstTriggerSystem) randInt(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// TakeBursts 返回并清零自上次调用以来的发射次数（用于在帧循环中播放音效）
func (s *BurstTriggerSystem) TakeBursts() int {
	return int(s.bursts.Swap(0))
}
