package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pawgate/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Hotkey               *string  `yaml:"hotkey"`
	OverlayOpacity       *float64 `yaml:"overlay_opacity"`
	OverlayColor         string   `yaml:"overlay_color"`
	NotificationsEnabled *bool    `yaml:"notifications_enabled"`
	Autostart            bool     `yaml:"autostart"`
}

// LoadSettings reads user preferences from the YAML file at path.
// On first run, when the file does not exist, default settings are written
// to path and returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings, err := readSettings(path)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return preferences.DefaultSettings(), err
	}

	settings = preferences.DefaultSettings()
	if err := SaveSettings(path, settings); err != nil {
		return settings, fmt.Errorf("write default settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes user preferences to YAML. The file is replaced
// atomically so watchers never see a partial write.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	hotkey := settings.Hotkey
	opacity := settings.OverlayOpacity
	notifications := settings.NotificationsEnabled
	fileData := yamlSettings{
		Hotkey:               &hotkey,
		OverlayOpacity:       &opacity,
		OverlayColor:         settings.OverlayColor,
		NotificationsEnabled: &notifications,
		Autostart:            settings.Autostart,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

// ResolveConfigPath returns <user config dir>/<appName>/settings.yaml.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func readSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// applyYamlSettings keeps an explicit hotkey even when it does not parse;
// the hook falls back at runtime and the bad value stays visible to the user.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Hotkey != nil {
		settings.Hotkey = *fileData.Hotkey
	}
	if fileData.OverlayOpacity != nil && *fileData.OverlayOpacity >= 0 && *fileData.OverlayOpacity <= 1 {
		settings.OverlayOpacity = *fileData.OverlayOpacity
	}
	if _, err := preferences.ParseColor(fileData.OverlayColor); err == nil {
		settings.OverlayColor = fileData.OverlayColor
	}
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}
	settings.Autostart = fileData.Autostart
}
