package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockStateStartsUnlocked(t *testing.T) {
	var state LockState
	assert.False(t, state.Locked())
}

func TestLockStateToggle(t *testing.T) {
	var state LockState

	assert.True(t, state.Toggle())
	assert.True(t, state.Locked())
	assert.False(t, state.Toggle())
	assert.False(t, state.Locked())
}

func TestLockStateConcurrentTogglesAreCounted(t *testing.T) {
	var state LockState
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state.Toggle()
		}()
	}
	wg.Wait()

	// An even number of flips lands back on the initial value.
	assert.False(t, state.Locked())
}

func TestQuitSignalRequestOnce(t *testing.T) {
	var signal QuitSignal

	assert.False(t, signal.Requested())
	assert.True(t, signal.Request())
	assert.False(t, signal.Request())
	assert.True(t, signal.Requested())
}
