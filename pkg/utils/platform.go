//go:build !mobile

package utils

import "os"

// IsMobile 是否以移动端布局运行
// 桌面端设置 BURST_MOBILE_EMULATE=1 可以模拟移动端（全屏布局、触摸按钮尺寸）
func IsMobile() bool {
	return os.Getenv("BURST_MOBILE_EMULATE") == "1"
}
