package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene records the calls it receives.
type mockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	disposed     int
	layoutW      int
	layoutH      int
}

func (m *mockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *mockScene) Dispose() {
	m.disposed++
}

func (m *mockScene) SetLayout(w, h int) {
	m.layoutW, m.layoutH = w, h
}

// plainScene implements only Scene.
type plainScene struct{}

func (plainScene) Update(float64)     {}
func (plainScene) Draw(*ebiten.Image) {}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("Expected no scene initially")
	}
	// 没有场景时不应 panic
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Close()
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)

	sm.Update(0.016)
	sm.Draw(nil)

	if !scene.updateCalled || scene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded: %+v", scene)
	}
	if !scene.drawCalled {
		t.Error("Draw not forwarded")
	}
}

func TestSceneManagerSwitchDisposes(t *testing.T) {
	sm := NewSceneManager()
	first, second := &mockScene{}, &mockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	if first.disposed != 0 {
		t.Error("switching to the same scene must not dispose it")
	}

	sm.SwitchTo(second)
	if first.disposed != 1 {
		t.Errorf("first.disposed = %d, 期望 1", first.disposed)
	}

	sm.SwitchTo(plainScene{})
	if second.disposed != 1 {
		t.Errorf("second.disposed = %d, 期望 1", second.disposed)
	}
	sm.Close()
}

func TestSceneManagerLayout(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)

	sm.SetLayout(480, 800)
	if scene.layoutW != 480 || scene.layoutH != 800 {
		t.Errorf("layout = %dx%d", scene.layoutW, scene.layoutH)
	}

	// 新场景切入时立即收到当前尺寸
	next := &mockScene{}
	sm.SwitchTo(next)
	if next.layoutW != 480 || next.layoutH != 800 {
		t.Errorf("new scene layout = %dx%d", next.layoutW, next.layoutH)
	}
}

func TestSceneManagerLoad(t *testing.T) {
	sm := NewSceneManager()
	if sm.Load("burst") {
		t.Fatal("Load without factory should fail")
	}

	created := 0
	var last *mockScene
	sm.SetSceneFactory(func(name string) Scene {
		if name != "burst" {
			return nil
		}
		created++
		last = &mockScene{}
		return last
	})

	if !sm.Load("burst") || sm.CurrentName() != "burst" {
		t.Fatal("Load(burst) failed")
	}
	first := last

	// 重新加载会创建新实例并释放旧实例
	if !sm.Load("burst") {
		t.Fatal("reload failed")
	}
	if created != 2 || first.disposed != 1 || sm.GetCurrentScene() != last {
		t.Errorf("created=%d disposed=%d", created, first.disposed)
	}

	if sm.Load("missing") {
		t.Error("Load(missing) should fail")
	}
	if sm.GetCurrentScene() != last {
		t.Error("failed Load must keep the current scene")
	}

	sm.Close()
	if last.disposed != 1 || sm.GetCurrentScene() != nil {
		t.Error("Close should dispose the current scene")
	}
}
