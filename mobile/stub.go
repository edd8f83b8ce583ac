//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// ebitenmobile 绑定代码在 mobile.go 和 embed.go 中，仅在 -tags mobile 时编译。
package mobile

// Dummy 保证 go build ./... 在桌面端也能编译此包
func Dummy() {}
