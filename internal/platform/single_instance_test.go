package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireSingleInstance(t *testing.T) {
	const name = "PawGate-test-single-instance"

	first, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	second, err := AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Nil(t, second)

	require.NoError(t, first.Release())
	require.NoError(t, first.Release(), "release is idempotent")

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestAcquireSingleInstanceRequiresName(t *testing.T) {
	_, err := AcquireSingleInstance("")
	assert.Error(t, err)
}

func TestNilGuardRelease(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}
