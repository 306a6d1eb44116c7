//go:build !windows

package overlay

// applyNativeOpacity is a no-op; the fill alpha alone gives translucency.
func (overlay *Window) applyNativeOpacity(uint8) {}
