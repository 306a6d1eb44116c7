package model

import "sync/atomic"

// LockState is the process-wide keyboard lock flag.
// The zero value is unlocked and ready to use; share it by pointer.
type LockState struct {
	locked atomic.Bool
}

// Locked reports whether the keyboard is currently locked.
func (state *LockState) Locked() bool {
	return state.locked.Load()
}

// Set stores the lock flag.
func (state *LockState) Set(locked bool) {
	state.locked.Store(locked)
}

// Toggle flips the lock flag and returns the new value.
// Concurrent toggles never collapse into one.
func (state *LockState) Toggle() bool {
	for {
		current := state.locked.Load()
		if state.locked.CompareAndSwap(current, !current) {
			return !current
		}
	}
}

// QuitSignal is a write-once shutdown request.
type QuitSignal struct {
	requested atomic.Bool
}

// Request sets the signal. It returns true only for the first caller.
func (signal *QuitSignal) Request() bool {
	return signal.requested.CompareAndSwap(false, true)
}

// Requested reports whether shutdown was requested.
func (signal *QuitSignal) Requested() bool {
	return signal.requested.Load()
}
