package gate

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"pawgate/internal/core/hotkey"
	"pawgate/internal/core/model"

	"go.uber.org/zap"
)

var (
	// ErrInstall wraps any failure to register the keyboard hook.
	ErrInstall = errors.New("install keyboard hook")
	// ErrAlreadyRunning is returned when Run is called on a running engine.
	ErrAlreadyRunning = errors.New("engine already running")
)

// DefaultPollInterval bounds how long the pump sleeps when idle.
const DefaultPollInterval = 10 * time.Millisecond

// Hook is the OS interception point. All methods are called from the
// goroutine running Engine.Run.
type Hook interface {
	// Install registers handler for every keyboard event.
	Install(handler func(KeyEvent) Verdict) error
	// Pump dispatches pending OS messages and reports whether any were found.
	Pump() bool
	// Uninstall removes the hook. No handler calls happen after it returns.
	Uninstall() error
}

// ModifierReader reports which modifiers are physically held right now.
type ModifierReader interface {
	Modifiers() hotkey.Modifiers
}

// Options contains runtime settings for Engine.
type Options struct {
	PollInterval time.Duration
	Logger       *zap.Logger
}

// Engine applies the lock policy to keyboard events.
type Engine struct {
	binding   hotkey.Binding
	lock      *model.LockState
	quit      *model.QuitSignal
	modifiers ModifierReader
	options   Options
	logger    *zap.Logger
	running   atomic.Bool
}

// New creates an engine. binding is fixed for the engine's lifetime.
func New(binding hotkey.Binding, lock *model.LockState, quit *model.QuitSignal, modifiers ModifierReader, options Options) *Engine {
	if options.PollInterval <= 0 {
		options.PollInterval = DefaultPollInterval
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		binding:   binding,
		lock:      lock,
		quit:      quit,
		modifiers: modifiers,
		options:   options,
		logger:    logger.Named("gate"),
	}
}

// Binding returns the hotkey the engine reacts to.
func (engine *Engine) Binding() hotkey.Binding {
	return engine.binding
}

// HandleKey is the hook callback. It runs on the hook thread for every
// keyboard event and must stay fast: no logging, no locks, no I/O.
func (engine *Engine) HandleKey(event KeyEvent) Verdict {
	var live hotkey.Modifiers
	if event.Code >= 0 && event.Down && !hotkey.IsModifierKey(event.Key) {
		live = engine.modifiers.Modifiers()
	}
	decision := Decide(engine.binding, event, engine.lock.Locked(), live)
	if decision.Toggle {
		engine.lock.Toggle()
	}
	return decision.Verdict
}

// Toggle flips the lock exactly like a hotkey match and returns the new state.
func (engine *Engine) Toggle() bool {
	return engine.lock.Toggle()
}

// Run installs hook and pumps messages until the quit signal is set, then
// uninstalls. The calling goroutine is pinned to its OS thread because
// low-level hooks are delivered to the installing thread's message queue.
func (engine *Engine) Run(hook Hook) error {
	if !engine.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer engine.running.Store(false)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := hook.Install(engine.HandleKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInstall, err)
	}
	engine.logger.Info("keyboard hook installed",
		zap.Stringer("hotkey", engine.binding),
		zap.Duration("poll_interval", engine.options.PollInterval),
	)

	for !engine.quit.Requested() {
		if !hook.Pump() {
			time.Sleep(engine.options.PollInterval)
		}
	}

	if err := hook.Uninstall(); err != nil {
		engine.logger.Warn("uninstall keyboard hook", zap.Error(err))
		return fmt.Errorf("uninstall keyboard hook: %w", err)
	}
	engine.logger.Info("keyboard hook removed")
	return nil
}
