package main

import (
	"testing"
	"time"

	"pawgate/internal/core/hotkey"
	"pawgate/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIDefaults(t *testing.T) {
	var cli CLI
	parser, err := newParser(&cli)
	require.NoError(t, err)

	_, err = parser.Parse(nil)
	require.NoError(t, err)
	assert.False(t, cli.Debug)
	assert.Empty(t, cli.Config)
	assert.Equal(t, 10*time.Millisecond, cli.PollInterval)
}

func TestCLIFlags(t *testing.T) {
	var cli CLI
	parser, err := newParser(&cli)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--debug", "--poll-interval=25ms"})
	require.NoError(t, err)
	assert.True(t, cli.Debug)
	assert.Equal(t, 25*time.Millisecond, cli.PollInterval)
}

func TestNeedsRestart(t *testing.T) {
	active, err := hotkey.Parse(preferences.DefaultHotkey)
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "same", text: "ctrl+b", want: false},
		{name: "same different spelling", text: "Control + B", want: false},
		{name: "different", text: "ctrl+shift+l", want: true},
		{name: "invalid falls back to active default", text: "ctrl++", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, needsRestart(tt.text, active))
		})
	}
}

func TestStatusAndNotificationText(t *testing.T) {
	assert.Equal(t, "keyboard locked", statusText(true))
	assert.Equal(t, "keyboard unlocked", statusText(false))
	assert.Equal(t, "Keyboard locked", notificationText(true))
	assert.Equal(t, "Keyboard unlocked", notificationText(false))
}
