package game

import (
	"path/filepath"
	"testing"
)

func newTestAudioManager(t *testing.T, sm *SettingsManager) *AudioManager {
	t.Helper()
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig(filepath.Join("..", "..", "assets", "config", "resources.yaml")); err != nil {
		t.Fatal(err)
	}
	// 资源路径相对于项目根目录
	for id, path := range rm.resourceMap {
		rm.resourceMap[id] = filepath.Join("..", "..", path)
	}
	return NewAudioManager(rm, sm)
}

func TestPlaySound(t *testing.T) {
	am := newTestAudioManager(t, NewSettingsManager(nil))

	if !am.PlaySound(SoundPop) {
		t.Error("PlaySound(SOUND_POP) = false, 期望 true")
	}
	// 连续触发复用同一个播放器
	if !am.PlaySound(SoundPop) || len(am.soundPlayers) != 1 {
		t.Errorf("players = %d, 期望 1", len(am.soundPlayers))
	}
}

func TestPlaySoundDisabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	am := newTestAudioManager(t, sm)

	if am.PlaySound(SoundPop) {
		t.Error("PlaySound should be a no-op when sound is disabled")
	}
}

func TestPlaySoundMissing(t *testing.T) {
	am := newTestAudioManager(t, nil)

	if am.PlaySound("SOUND_NOPE") {
		t.Error("PlaySound of an unknown sound should fail")
	}
	if !am.missing["SOUND_NOPE"] {
		t.Error("unknown sound should be remembered as missing")
	}
}

func TestAudioManagerVolume(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := newTestAudioManager(t, sm)
	am.PreloadSounds([]string{SoundPop})

	am.SetSoundVolume(1.7)
	if am.GetSoundVolume() != 1.0 || sm.GetSettings().SoundVolume != 1.0 {
		t.Errorf("volume = %v, 期望限制为 1.0", am.GetSoundVolume())
	}

	if v := NewAudioManager(nil, nil).GetSoundVolume(); v != DefaultSettings().SoundVolume {
		t.Errorf("default volume = %v", v)
	}
}
