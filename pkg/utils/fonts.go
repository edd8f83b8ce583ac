package utils

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	goRegularOnce   sync.Once
	goRegularSource *text.GoTextFaceSource
	goRegularErr    error
)

// GoRegularFace 返回指定字号的 Go Regular 字体，字体源只解析一次
func GoRegularFace(size float64) (*text.GoTextFace, error) {
	goRegularOnce.Do(func() {
		goRegularSource, goRegularErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if goRegularErr != nil {
		return nil, fmt.Errorf("failed to load Go Regular font: %w", goRegularErr)
	}
	return &text.GoTextFace{Source: goRegularSource, Size: size}, nil
}
