package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggleLock func()
	OnSettings   func()
	OnQuit       func()
}

// Icons are the tray icons for each lock state.
type Icons struct {
	Unlocked fyne.Resource
	Locked   fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	icons      Icons
	statusItem *fyne.MenuItem
	lockItem   *fyne.MenuItem
	callbacks  Callbacks
	locked     bool
	available  bool
	status     string
}

// New creates a tray manager with the provided callbacks. app may be nil
// when no system tray exists; the manager then only tracks state.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
		available: true,
		status:    "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.lockItem = fyne.NewMenuItem(LockLabel(false), func() {
		if manager.callbacks.OnToggleLock != nil {
			manager.callbacks.OnToggleLock()
		}
	})

	manager.refreshStatus()
	return manager
}

// LockLabel is the menu label offered in the given lock state.
func LockLabel(locked bool) string {
	if locked {
		return "Unlock Keyboard"
	}
	return "Lock Keyboard"
}

// SetLocked updates the lock item and icon.
func (manager *Manager) SetLocked(locked bool) {
	manager.locked = locked
	manager.lockItem.Label = LockLabel(locked)
	manager.refreshIcon()
	manager.refreshMenu()
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.status = status
	manager.refreshStatus()
}

// SetAvailable disables locking when the keyboard hook could not be installed.
func (manager *Manager) SetAvailable(available bool) {
	manager.available = available
	manager.lockItem.Disabled = !available
	manager.refreshStatus()
}

// Status returns the current status label text.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// LockItem exposes the lock menu item.
func (manager *Manager) LockItem() *fyne.MenuItem {
	return manager.lockItem
}

func (manager *Manager) refreshStatus() {
	status := manager.status
	if !manager.available {
		status = "keyboard lock unavailable"
	}
	manager.statusItem.Label = fmt.Sprintf("PawGate: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Unlocked
	if manager.locked {
		icon = manager.icons.Locked
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("PawGate",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.lockItem,
		fyne.NewMenuItem("Settings...", func() {
			if manager.callbacks.OnSettings != nil {
				manager.callbacks.OnSettings()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
