package scenes

import (
	"github.com/gonewx/burst/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// BurstSceneName 粒子爆发场景在 SceneManager 中的名称
const BurstSceneName = "burst"
