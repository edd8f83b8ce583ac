//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	t.Setenv("BURST_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should be false on desktop")
	}
	t.Setenv("BURST_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honour BURST_MOBILE_EMULATE=1")
	}
}
