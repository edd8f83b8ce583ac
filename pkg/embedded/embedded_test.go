package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func resetForTest(t *testing.T) {
	t.Helper()
	initialized = false
	assetsFS, dataFS = nil, nil
	t.Cleanup(func() {
		initialized = false
		assetsFS, dataFS = nil, nil
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	Init(fstest.MapFS{}, fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时访问资源
func TestNotInitialized(t *testing.T) {
	resetForTest(t)

	if _, err := Open("assets/test.png"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open error = %v, 期望 ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/burst.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile error = %v, 期望 ErrNotInitialized", err)
	}
	if Exists("data/burst.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

// TestPrefixDispatch 测试按前缀分发到不同的文件系统
func TestPrefixDispatch(t *testing.T) {
	resetForTest(t)

	Init(
		fstest.MapFS{"assets/images/dog.png": {Data: []byte("png")}},
		fstest.MapFS{"data/burst.yaml": {Data: []byte("spawn: {}")}},
	)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"资源文件", "assets/images/dog.png", "png"},
		{"数据文件", "data/burst.yaml", "spawn: {}"},
		{"带 ./ 前缀", "./data/burst.yaml", "spawn: {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, 期望 %q", tt.path, data, tt.want)
			}
		})
	}

	if _, err := ReadFile("config/burst.yaml"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
	if Exists("assets/burst.yaml") {
		t.Error("data file must not be visible under assets/")
	}
	if !Exists("assets/images/dog.png") {
		t.Error("Exists(assets/images/dog.png) = false")
	}
}
