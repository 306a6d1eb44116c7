package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"pawgate/internal/core/gate"
	"pawgate/internal/core/hotkey"
	"pawgate/internal/core/model"
	"pawgate/internal/core/monitor"
	"pawgate/internal/logging"
	"pawgate/internal/platform"
	"pawgate/internal/storage"
	"pawgate/internal/ui/overlay"
	"pawgate/internal/ui/preferences"
	"pawgate/internal/ui/tray"
	"pawgate/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

const (
	appName     = "PawGate"
	logFileName = "pawgate.log"
	joinTimeout = 2 * time.Second

	restartStatus = "restart required to apply hotkey"
)

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	logPath := cli.LogFile
	if logPath == "" {
		if resolved, err := logging.DefaultPath(appName, logFileName); err == nil {
			logPath = resolved
		}
	}
	logger, err := logging.New(logging.Options{Path: logPath, Debug: cli.Debug})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logger.Info("another instance is already running, exiting")
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	configPath := cli.Config
	if configPath == "" {
		configPath, err = storage.ResolveConfigPath(appName)
		if err != nil {
			return err
		}
	}
	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		logger.Warn("load settings, using defaults", zap.String("path", configPath), zap.Error(err))
	}

	binding, err := preferences.ResolveBinding(settings.Hotkey)
	if err != nil {
		logger.Warn("invalid hotkey, using default",
			zap.String("hotkey", settings.Hotkey),
			zap.Stringer("fallback", binding),
			zap.Error(err),
		)
	}

	lock := &model.LockState{}
	quit := &model.QuitSignal{}
	engine := gate.New(binding, lock, quit, platform.NewModifierReader(), gate.Options{
		PollInterval: cli.PollInterval,
		Logger:       logger,
	})

	lockMonitor := monitor.New(lock, monitor.Config{Logger: logger})
	events := lockMonitor.Subscribe(8)
	lockMonitor.Start()

	engineDone := make(chan error, 1)
	go func() {
		err := engine.Run(platform.NewHook())
		if err != nil {
			logger.Error("keyboard engine stopped", zap.Error(err))
			if errors.Is(err, gate.ErrInstall) {
				lockMonitor.ReportHookFailure(err)
			}
		}
		engineDone <- err
	}()

	fyneApp := app.NewWithID("com.pawgate.app")
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))

	desktopApp, ok := fyneApp.(desktop.App)
	if ok {
		trayWindow := fyneApp.NewWindow(appName)
		trayWindow.SetContent(widget.NewLabel("PawGate is running in the system tray."))
		trayWindow.SetCloseIntercept(func() {
			trayWindow.Hide()
		})
		trayWindow.Hide()
		desktopApp.SetSystemTrayWindow(trayWindow)
	} else {
		logger.Warn("system tray unsupported on this platform")
	}

	overlayWindow := overlay.New(fyneApp, overlayConfig(settings, binding))
	autostart := platform.NewAutostart()

	var trayManager *tray.Manager
	restartPending := false
	refreshStatus := func() {
		if restartPending {
			trayManager.SetStatus(restartStatus)
			return
		}
		trayManager.SetStatus(statusText(lock.Locked()))
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(configPath, updated); err != nil {
			logger.Error("save settings", zap.String("path", configPath), zap.Error(err))
			trayManager.SetStatus("settings not saved")
			return
		}
		settings = updated
		overlayWindow.UpdateConfig(overlayConfig(settings, binding))
		applyAutostart(logger, autostart, settings.Autostart)
		restartPending = needsRestart(settings.Hotkey, binding)
		refreshStatus()
	})

	trayManager = tray.New(desktopApp, tray.Icons{
		Unlocked: resources.MustIcon(resources.UnlockedIcon),
		Locked:   resources.MustIcon(resources.LockedIcon),
	}, tray.Callbacks{
		OnToggleLock: func() {
			engine.Toggle()
		},
		OnSettings: prefsWindow.Show,
		OnQuit: func() {
			quit.Request()
			fyneApp.Quit()
		},
	})
	trayManager.SetLocked(false)
	refreshStatus()

	go func() {
		for event := range events {
			fyne.Do(func() {
				switch event.Type {
				case monitor.EventLockChange:
					if event.Locked {
						overlayWindow.Show()
					} else {
						overlayWindow.Hide()
					}
					trayManager.SetLocked(event.Locked)
					refreshStatus()
					if settings.NotificationsEnabled {
						fyneApp.SendNotification(fyne.NewNotification(appName, notificationText(event.Locked)))
					}
				case monitor.EventHookFailure:
					trayManager.SetAvailable(false)
				}
			})
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher, err := storage.NewWatcher(configPath, logger)
	if err != nil {
		logger.Warn("settings watcher unavailable", zap.Error(err))
	} else {
		defer func() {
			_ = watcher.Close()
		}()
		go func() {
			err := watcher.Run(ctx, func(reloaded preferences.Settings) {
				fyne.Do(func() {
					settings = reloaded
					overlayWindow.UpdateConfig(overlayConfig(settings, binding))
					prefsWindow.UpdateSettings(settings)
					restartPending = needsRestart(settings.Hotkey, binding)
					refreshStatus()
				})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("settings watcher stopped", zap.Error(err))
			}
		}()
	}

	if desktopApp == nil {
		prefsWindow.Show()
	}
	fyneApp.Run()

	quit.Request()
	cancel()
	select {
	case <-engineDone:
	case <-time.After(joinTimeout):
		logger.Warn("keyboard engine did not stop in time", zap.Duration("timeout", joinTimeout))
	}
	lockMonitor.Stop()
	logger.Info("exiting")
	return nil
}

func overlayConfig(settings preferences.Settings, binding hotkey.Binding) overlay.Config {
	return overlay.Config{
		Fill:   settings.OverlayNRGBA(),
		Hotkey: binding.String(),
	}
}

// needsRestart reports whether the saved hotkey resolves to a binding
// other than the one the running engine was built with.
func needsRestart(text string, active hotkey.Binding) bool {
	saved, _ := preferences.ResolveBinding(text)
	return saved != active
}

func statusText(locked bool) string {
	if locked {
		return "keyboard locked"
	}
	return "keyboard unlocked"
}

func notificationText(locked bool) string {
	if locked {
		return "Keyboard locked"
	}
	return "Keyboard unlocked"
}

func applyAutostart(logger *zap.Logger, autostart platform.Autostart, want bool) {
	execPath, err := os.Executable()
	if err != nil {
		logger.Warn("resolve executable path", zap.Error(err))
		return
	}
	err = platform.ApplyAutostart(autostart, appName, execPath, want)
	switch {
	case errors.Is(err, platform.ErrAutostartUnsupported):
		logger.Info("autostart unsupported on this platform")
	case err != nil:
		logger.Warn("apply autostart", zap.Bool("enabled", want), zap.Error(err))
	}
}
