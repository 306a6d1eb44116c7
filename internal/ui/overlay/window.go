package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Config defines overlay visuals.
type Config struct {
	Fill   color.NRGBA
	Hotkey string
}

// Window manages the translucent lock overlay.
type Window struct {
	window     fyne.Window
	config     Config
	background *canvas.Rectangle
	title      *canvas.Text
	hint       *canvas.Text
	visible    bool
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden overlay window.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("PawGate")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(config.Fill)

	title := canvas.NewText("Keyboard locked", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 36

	hint := canvas.NewText("", color.NRGBA{R: 255, G: 255, B: 255, A: 220})
	hint.Alignment = fyne.TextAlignCenter
	hint.TextSize = 18

	labels := container.NewVBox(title, hint)
	root := container.NewStack(background, container.NewCenter(labels))
	window.SetContent(root)

	overlay := &Window{
		window:     window,
		background: background,
		title:      title,
		hint:       hint,
	}
	overlay.UpdateConfig(config)
	return overlay
}

// Show covers the screen. Call from the fyne goroutine.
func (overlay *Window) Show() {
	if overlay.visible {
		return
	}
	overlay.visible = true
	overlay.window.SetFullScreen(true)
	overlay.window.Show()
	overlay.applyNativeOpacity(overlay.config.Fill.A)
}

// Hide removes the overlay. Call from the fyne goroutine.
func (overlay *Window) Hide() {
	if !overlay.visible {
		return
	}
	overlay.visible = false
	overlay.window.SetFullScreen(false)
	overlay.window.Hide()
}

// Visible reports whether the overlay is shown.
func (overlay *Window) Visible() bool {
	return overlay.visible
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	overlay.background.FillColor = config.Fill
	overlay.hint.Text = HintText(config.Hotkey)
	canvas.Refresh(overlay.background)
	overlay.hint.Refresh()
	if overlay.visible {
		overlay.applyNativeOpacity(config.Fill.A)
	}
}

// HintText is the unlock instruction shown under the title.
func HintText(hotkey string) string {
	if hotkey == "" {
		return "Use the tray menu to unlock"
	}
	return "Press " + hotkey + " to unlock"
}
