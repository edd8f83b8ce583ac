package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundPop 粒子发射音效的资源 ID
const SoundPop = "SOUND_POP"

// AudioManager 音频管理器
// 职责：
//   - 统一管理音效的播放
//   - 从 SettingsManager 读取音量和开关
//   - 通过资源ID播放，无需关心路径
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager         // 可为 nil，使用默认音量
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
	missing         map[string]bool          // 加载失败的资源ID，不再重试
}

// NewAudioManager 创建新的音频管理器
//
// sm 可为 nil，此时使用默认音量且音效始终开启。
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 播放音效，返回是否成功播放
// 同一音效连续触发时从头重新播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量并同步到所有已加载的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	volume = clampVolume(volume)
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取音效音量设置
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] || am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		// 只记录一次，避免每次发射都刷日志
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.missing[soundID] = true
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}
