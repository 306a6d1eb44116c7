package storage

import (
	"os"
	"path/filepath"
	"testing"

	"pawgate/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PawGate", settingsFileName)

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)

	_, err = os.Stat(path)
	require.NoError(t, err, "defaults are persisted on first run")

	reloaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, settings, reloaded)
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	want := preferences.Settings{
		Hotkey:               "ctrl+shift+l",
		OverlayOpacity:       0.5,
		OverlayColor:         "#FF6D00",
		NotificationsEnabled: false,
		Autostart:            true,
	}

	require.NoError(t, SaveSettings(path, want))
	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file is renamed away")
}

func TestLoadSettingsKeepsBadHotkey(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("hotkey: \"ctrl++\"\n"), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "ctrl++", settings.Hotkey)

	binding, err := settings.Binding()
	assert.Error(t, err)
	assert.Equal(t, "ctrl+b", binding.String())
}

func TestLoadSettingsFillsMissingAndInvalidFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	content := "overlay_opacity: 3.5\noverlay_color: purple\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.Hotkey, settings.Hotkey)
	assert.Equal(t, defaults.OverlayOpacity, settings.OverlayOpacity)
	assert.Equal(t, defaults.OverlayColor, settings.OverlayColor)
	assert.True(t, settings.NotificationsEnabled)
}

func TestLoadSettingsExplicitZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	content := "overlay_opacity: 0\nnotifications_enabled: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Zero(t, settings.OverlayOpacity)
	assert.False(t, settings.NotificationsEnabled)
}

func TestLoadSettingsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("hotkey: [unterminated\n"), 0o644))

	settings, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "unterminated", "a malformed file is never overwritten")
}
