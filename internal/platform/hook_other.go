//go:build !windows

package platform

import (
	"pawgate/internal/core/gate"
	"pawgate/internal/core/hotkey"
)

type unsupportedHook struct{}

func newHook() gate.Hook {
	return unsupportedHook{}
}

func (unsupportedHook) Install(func(gate.KeyEvent) gate.Verdict) error {
	return ErrHookUnsupported
}

func (unsupportedHook) Pump() bool { return false }

func (unsupportedHook) Uninstall() error { return nil }

type noModifiers struct{}

func newModifierReader() gate.ModifierReader {
	return noModifiers{}
}

func (noModifiers) Modifiers() hotkey.Modifiers { return 0 }
