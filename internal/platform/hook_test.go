//go:build !windows

package platform

import (
	"testing"

	"pawgate/internal/core/gate"
	"pawgate/internal/core/hotkey"
	"pawgate/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedHookFailsInstall(t *testing.T) {
	hook := NewHook()

	err := hook.Install(func(gate.KeyEvent) gate.Verdict { return gate.VerdictForward })

	assert.ErrorIs(t, err, ErrHookUnsupported)
	assert.False(t, hook.Pump())
	assert.NoError(t, hook.Uninstall())
}

func TestEngineDegradesWithoutHook(t *testing.T) {
	lock := &model.LockState{}
	engine := gate.New(hotkeyCtrlB(t), lock, &model.QuitSignal{}, NewModifierReader(), gate.Options{})

	err := engine.Run(NewHook())

	require.ErrorIs(t, err, gate.ErrInstall)
	require.ErrorIs(t, err, ErrHookUnsupported)
	assert.True(t, engine.Toggle(), "manual toggle keeps working")
}

func hotkeyCtrlB(t *testing.T) hotkey.Binding {
	t.Helper()
	binding, err := hotkey.Parse("ctrl+b")
	require.NoError(t, err)
	return binding
}
