package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingAutostart struct {
	enabled  map[string]string
	failWith error
}

func (autostart *recordingAutostart) Enabled(appName string) (bool, error) {
	_, ok := autostart.enabled[appName]
	return ok, nil
}

func (autostart *recordingAutostart) Enable(appName, execPath string) error {
	if autostart.failWith != nil {
		return autostart.failWith
	}
	autostart.enabled[appName] = execPath
	return nil
}

func (autostart *recordingAutostart) Disable(appName string) error {
	delete(autostart.enabled, appName)
	return nil
}

func TestApplyAutostart(t *testing.T) {
	autostart := &recordingAutostart{enabled: map[string]string{}}

	assert.NoError(t, ApplyAutostart(autostart, "PawGate", `C:\pawgate.exe`, true))
	assert.Equal(t, `C:\pawgate.exe`, autostart.enabled["PawGate"])

	assert.NoError(t, ApplyAutostart(autostart, "PawGate", "", false))
	assert.Empty(t, autostart.enabled)
}

func TestApplyAutostartValidates(t *testing.T) {
	autostart := &recordingAutostart{enabled: map[string]string{}}

	assert.Error(t, ApplyAutostart(autostart, "", `C:\pawgate.exe`, true))
	assert.Error(t, ApplyAutostart(autostart, "PawGate", "", true))
}

func TestApplyAutostartPropagatesErrors(t *testing.T) {
	failure := errors.New("registry denied")
	autostart := &recordingAutostart{enabled: map[string]string{}, failWith: failure}

	assert.ErrorIs(t, ApplyAutostart(autostart, "PawGate", `C:\pawgate.exe`, true), failure)
}
