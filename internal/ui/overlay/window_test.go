package overlay

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestHintText(t *testing.T) {
	assert.Equal(t, "Press ctrl+b to unlock", HintText("ctrl+b"))
	assert.Equal(t, "Use the tray menu to unlock", HintText(""))
}

func TestWindowShowHide(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	fill := color.NRGBA{R: 0x1B, G: 0x5E, B: 0x20, A: 76}
	overlay := New(app, Config{Fill: fill, Hotkey: "ctrl+b"})
	assert.False(t, overlay.Visible())
	assert.Equal(t, fill, overlay.background.FillColor)
	assert.Equal(t, "Press ctrl+b to unlock", overlay.hint.Text)

	overlay.Show()
	assert.True(t, overlay.Visible())
	overlay.Show()
	assert.True(t, overlay.Visible())

	overlay.Hide()
	assert.False(t, overlay.Visible())
}

func TestWindowUpdateConfig(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	overlay := New(app, Config{Hotkey: "ctrl+b"})
	updated := color.NRGBA{R: 0xFF, G: 0x6D, A: 128}
	overlay.UpdateConfig(Config{Fill: updated, Hotkey: "alt+f9"})

	assert.Equal(t, updated, overlay.background.FillColor)
	assert.Equal(t, "Press alt+f9 to unlock", overlay.hint.Text)
}
