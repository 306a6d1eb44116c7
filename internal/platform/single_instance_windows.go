//go:build windows

package platform

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// acquireSingleInstance uses a session-local named mutex. The kernel
// releases it when the process dies.
func acquireSingleInstance(appName string) (*InstanceGuard, error) {
	name, err := windows.UTF16PtrFromString(`Local\` + appName + "-single-instance")
	if err != nil {
		return nil, fmt.Errorf("single instance: mutex name: %w", err)
	}
	handle, err := windows.CreateMutex(nil, true, name)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if handle != 0 {
			_ = windows.CloseHandle(handle)
		}
		return nil, ErrAlreadyRunning
	}
	if err != nil {
		if handle != 0 {
			_ = windows.CloseHandle(handle)
		}
		return nil, fmt.Errorf("single instance: CreateMutex: %w", err)
	}
	return &InstanceGuard{release: func() error {
		return windows.CloseHandle(handle)
	}}, nil
}
