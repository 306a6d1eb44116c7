package preferences

import (
	"fmt"

	"pawgate/internal/core/hotkey"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// RestartNotice tells the user when hotkey edits apply.
const RestartNotice = "Hotkey changes take effect after PawGate restarts."

// Window handles the settings UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	hotkeyEntry   *widget.Entry
	hotkeyError   *widget.Label
	opacity       *widget.Slider
	colorEntry    *widget.Entry
	notifications *widget.Check
	autostart     *widget.Check
	saveButton    *widget.Button
}

// New creates a settings window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("PawGate Settings")

	hotkeyEntry := widget.NewEntry()
	hotkeyEntry.SetPlaceHolder(DefaultHotkey)
	hotkeyError := widget.NewLabel("")
	hotkeyError.Importance = widget.DangerImportance

	opacity := widget.NewSlider(0, 1)
	opacity.Step = 0.05

	colorEntry := widget.NewEntry()
	colorEntry.SetPlaceHolder("#1B5E20")

	notifications := widget.NewCheck("Show lock notifications", nil)
	autostart := widget.NewCheck("Start PawGate at login", nil)

	notice := widget.NewLabel(RestartNotice)
	notice.Wrapping = fyne.TextWrapWord

	saveButton := widget.NewButton("Save", nil)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, saveButton)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Hotkey", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		hotkeyEntry,
		hotkeyError,
		notice,
		widget.NewLabelWithStyle("Overlay", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Opacity"),
		opacity,
		widget.NewLabel("Color"),
		colorEntry,
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		notifications,
		autostart,
	)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 460))

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		hotkeyEntry:   hotkeyEntry,
		hotkeyError:   hotkeyError,
		opacity:       opacity,
		colorEntry:    colorEntry,
		notifications: notifications,
		autostart:     autostart,
		saveButton:    saveButton,
	}

	hotkeyEntry.OnChanged = func(string) { prefs.validate() }
	colorEntry.OnChanged = func(string) { prefs.validate() }
	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.hotkeyEntry.SetText(settings.Hotkey)
	prefs.opacity.SetValue(settings.OverlayOpacity)
	prefs.colorEntry.SetText(settings.OverlayColor)
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.autostart.SetChecked(settings.Autostart)
	prefs.validate()
}

// validate reports the first problem and gates the Save button.
func (prefs *Window) validate() bool {
	problem := ""
	if _, err := hotkey.Parse(prefs.hotkeyEntry.Text); err != nil {
		problem = fmt.Sprintf("Invalid hotkey: %v", err)
	} else if _, err := ParseColor(prefs.colorEntry.Text); err != nil {
		problem = "Invalid color, use #RRGGBB"
	}

	prefs.hotkeyError.SetText(problem)
	if problem != "" {
		prefs.saveButton.Disable()
		return false
	}
	prefs.saveButton.Enable()
	return true
}

func (prefs *Window) handleSave() {
	if !prefs.validate() {
		return
	}
	binding, _ := hotkey.Parse(prefs.hotkeyEntry.Text)

	settings := prefs.settings
	settings.Hotkey = binding.String()
	settings.OverlayOpacity = prefs.opacity.Value
	settings.OverlayColor = prefs.colorEntry.Text
	settings.NotificationsEnabled = prefs.notifications.Checked
	settings.Autostart = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
