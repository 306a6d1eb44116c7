package platform

import (
	"errors"

	"pawgate/internal/core/gate"
)

var (
	// ErrHookUnsupported indicates the platform has no low-level keyboard hook.
	ErrHookUnsupported = errors.New("low-level keyboard hook unsupported on this platform")
	// ErrHookInstalled indicates a keyboard hook is already active in this process.
	ErrHookInstalled = errors.New("keyboard hook already installed")
)

// NewHook returns the platform keyboard hook.
func NewHook() gate.Hook {
	return newHook()
}

// NewModifierReader returns a reader backed by the OS key-state query.
func NewModifierReader() gate.ModifierReader {
	return newModifierReader()
}
