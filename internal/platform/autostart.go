package platform

import (
	"errors"
	"fmt"
)

// ErrAutostartUnsupported indicates login autostart is not implemented here.
var ErrAutostartUnsupported = errors.New("autostart unsupported on this platform")

// Autostart registers the application to start at login.
type Autostart interface {
	Enabled(appName string) (bool, error)
	Enable(appName, execPath string) error
	Disable(appName string) error
}

// NewAutostart returns the platform implementation.
func NewAutostart() Autostart {
	return newAutostart()
}

// ApplyAutostart enables or disables autostart to match want.
func ApplyAutostart(autostart Autostart, appName, execPath string, want bool) error {
	if appName == "" {
		return fmt.Errorf("apply autostart: app name is empty")
	}
	if !want {
		return autostart.Disable(appName)
	}
	if execPath == "" {
		return fmt.Errorf("apply autostart: exec path is empty")
	}
	return autostart.Enable(appName, execPath)
}
