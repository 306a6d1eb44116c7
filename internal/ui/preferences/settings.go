package preferences

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"pawgate/internal/core/hotkey"
)

// DefaultHotkey is used on first run and whenever the configured hotkey
// cannot be parsed.
const DefaultHotkey = "ctrl+b"

// Settings defines editable user preferences.
type Settings struct {
	Hotkey               string
	OverlayOpacity       float64
	OverlayColor         string
	NotificationsEnabled bool
	Autostart            bool
}

// DefaultSettings returns default settings for PawGate.
func DefaultSettings() Settings {
	return Settings{
		Hotkey:               DefaultHotkey,
		OverlayOpacity:       0.3,
		OverlayColor:         "#1B5E20",
		NotificationsEnabled: true,
		Autostart:            false,
	}
}

// ResolveBinding parses text, falling back to DefaultHotkey on failure.
// The parse error is returned alongside the fallback so it can be logged.
func ResolveBinding(text string) (hotkey.Binding, error) {
	binding, err := hotkey.Parse(text)
	if err == nil {
		return binding, nil
	}
	fallback, fallbackErr := hotkey.Parse(DefaultHotkey)
	if fallbackErr != nil {
		panic(fallbackErr)
	}
	return fallback, err
}

// Binding resolves the configured hotkey. See ResolveBinding.
func (settings Settings) Binding() (hotkey.Binding, error) {
	return ResolveBinding(settings.Hotkey)
}

// ParseColor reads "#RRGGBB" (the '#' is optional).
func ParseColor(value string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse color %q: want 6 hex digits", value)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, err)
	}
	return color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}, nil
}

// OverlayNRGBA returns the overlay fill with opacity applied, falling back
// to the default color when the configured one is invalid.
func (settings Settings) OverlayNRGBA() color.NRGBA {
	fill, err := ParseColor(settings.OverlayColor)
	if err != nil {
		fill, _ = ParseColor(DefaultSettings().OverlayColor)
	}
	fill.A = opacityToAlpha(settings.OverlayOpacity)
	return fill
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
