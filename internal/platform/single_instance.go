package platform

import "errors"

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock until Release.
type InstanceGuard struct {
	release func() error
}

// AcquireSingleInstance takes the per-user instance lock for appName.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	if appName == "" {
		return nil, errors.New("single instance: app name is empty")
	}
	return acquireSingleInstance(appName)
}

// Release frees the lock. It is safe to call more than once.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.release == nil {
		return nil
	}
	release := guard.release
	guard.release = nil
	return release()
}
