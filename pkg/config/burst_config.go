package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gonewx/burst/pkg/easing"
	"github.com/gonewx/burst/pkg/embedded"
	"github.com/gonewx/burst/pkg/flight"
	"gopkg.in/yaml.v3"
)

// DefaultBurstConfigPath 内置配置文件路径
const DefaultBurstConfigPath = "data/burst.yaml"

// BurstConfig 粒子爆发配置的顶层结构
type BurstConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Particle  ParticleConfig  `yaml:"particle"`
	Window    WindowConfig    `yaml:"window"`
}

// AnimationConfig 单个粒子的飞行时间轴
type AnimationConfig struct {
	// DurationMs 飞行时长（毫秒），默认 2100
	DurationMs int `yaml:"duration_ms"`

	// Easing 缓动曲线
	Easing EasingConfig `yaml:"easing"`
}

// EasingConfig 缓动曲线配置
//
// type 为 "cubic_bezier" 时使用 x1/y1/x2/y2 四个控制点，
// 否则按名称查找内置曲线（见 easing.Names）。
type EasingConfig struct {
	Type string  `yaml:"type"`
	X1   float64 `yaml:"x1,omitempty"`
	Y1   float64 `yaml:"y1,omitempty"`
	X2   float64 `yaml:"x2,omitempty"`
	Y2   float64 `yaml:"y2,omitempty"`
}

// SpawnConfig 发射相关配置
type SpawnConfig struct {
	// BufferCapacity 发射缓冲区容量，满时丢弃最新的粒子
	BufferCapacity int `yaml:"buffer_capacity"`

	// BurstSize 每次发射的粒子数量
	BurstSize int `yaml:"burst_size"`

	// IntervalMs 按住按钮时的发射间隔（毫秒）
	IntervalMs int `yaml:"interval_ms"`
}

// ParticleConfig 粒子外观配置
type ParticleConfig struct {
	// Sprite 资源 ID（见 assets/config/resources.yaml）
	Sprite string `yaml:"sprite"`

	// Size 粒子边长（像素），0 表示使用图片原始尺寸
	Size int `yaml:"size"`

	// SortByScale 是否按缩放排序绘制（大的在上层）
	SortByScale *bool `yaml:"sort_by_scale,omitempty"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LoadBurstConfig 加载粒子爆发配置
//
// 优先从嵌入资源读取，找不到时读取磁盘文件（用于 --config 指定的外部配置）。
func LoadBurstConfig(path string) (*BurstConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read burst config %s: %w", path, err)
	}
	cfg, err := ParseBurstConfig(data)
	if err != nil {
		return nil, fmt.Errorf("burst config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseBurstConfig 解析 YAML 数据，填充默认值并验证
func ParseBurstConfig(data []byte) (*BurstConfig, error) {
	var cfg BurstConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := validateBurstConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultBurstConfig 返回全部使用默认值的配置
func DefaultBurstConfig() *BurstConfig {
	var cfg BurstConfig
	cfg.applyDefaults()
	return &cfg
}

func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// applyDefaults 为未设置的字段填充默认值
func (c *BurstConfig) applyDefaults() {
	if c.Animation.DurationMs == 0 {
		c.Animation.DurationMs = int(flight.DefaultDuration / time.Millisecond)
	}
	if c.Animation.Easing.Type == "" {
		c.Animation.Easing = EasingConfig{Type: "cubic_bezier", X1: 0.5, Y1: 0.6, X2: 0.4, Y2: 0.8}
	}
	if c.Spawn.BufferCapacity == 0 {
		c.Spawn.BufferCapacity = flight.DefaultBufferCapacity
	}
	if c.Spawn.BurstSize == 0 {
		c.Spawn.BurstSize = 10
	}
	if c.Spawn.IntervalMs == 0 {
		c.Spawn.IntervalMs = 100
	}
	if c.Particle.Sprite == "" {
		c.Particle.Sprite = "IMAGE_PARTICLE_DOG"
	}
	if c.Particle.SortByScale == nil {
		sort := true
		c.Particle.SortByScale = &sort
	}
	if c.Window.Width == 0 {
		c.Window.Width = 480
	}
	if c.Window.Height == 0 {
		c.Window.Height = 800
	}
	if c.Window.Title == "" {
		c.Window.Title = "Burst"
	}
}

// validateBurstConfig 验证配置取值范围
func validateBurstConfig(c *BurstConfig) error {
	if c.Animation.DurationMs < 0 {
		return fmt.Errorf("animation.duration_ms must be positive, got %d", c.Animation.DurationMs)
	}
	if _, err := c.Animation.Easing.Func(); err != nil {
		return fmt.Errorf("animation.easing: %w", err)
	}
	if c.Spawn.BufferCapacity < 0 {
		return fmt.Errorf("spawn.buffer_capacity must be positive, got %d", c.Spawn.BufferCapacity)
	}
	if c.Spawn.BurstSize < 0 {
		return fmt.Errorf("spawn.burst_size must be positive, got %d", c.Spawn.BurstSize)
	}
	if c.Spawn.IntervalMs < 0 {
		return fmt.Errorf("spawn.interval_ms must be positive, got %d", c.Spawn.IntervalMs)
	}
	if c.Particle.Size < 0 {
		return fmt.Errorf("particle.size must not be negative, got %d", c.Particle.Size)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Func 构建缓动函数
func (e EasingConfig) Func() (easing.Func, error) {
	if e.Type != "cubic_bezier" {
		return easing.ByName(e.Type)
	}
	// x 坐标超出 [0,1] 时曲线不再是 x 的函数
	if e.X1 < 0 || e.X1 > 1 || e.X2 < 0 || e.X2 > 1 {
		return nil, fmt.Errorf("cubic_bezier x1/x2 must be within [0, 1], got %v/%v", e.X1, e.X2)
	}
	return easing.CubicBezier(e.X1, e.Y1, e.X2, e.Y2), nil
}

// Timeline 构建粒子飞行时间轴
func (c *BurstConfig) Timeline() flight.Tween {
	fn, err := c.Animation.Easing.Func()
	if err != nil {
		// 已在 validateBurstConfig 中检查过
		fn = easing.Linear
	}
	return flight.Tween{
		Duration: time.Duration(c.Animation.DurationMs) * time.Millisecond,
		Easing:   fn,
	}
}

// Interval 返回发射间隔
func (c *BurstConfig) Interval() time.Duration {
	return time.Duration(c.Spawn.IntervalMs) * time.Millisecond
}

// ParticleSize 返回粒子尺寸，0 表示图片原始尺寸
func (c *BurstConfig) ParticleSize() flight.Size {
	return flight.Size{Width: c.Particle.Size, Height: c.Particle.Size}
}

// SortByScale 是否按缩放排序
func (c *BurstConfig) SortByScale() bool {
	return c.Particle.SortByScale == nil || *c.Particle.SortByScale
}
