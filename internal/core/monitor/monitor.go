// Package monitor turns the shared lock flag into change events for the UI.
package monitor

import (
	"sync"
	"time"

	"pawgate/internal/core/model"

	"go.uber.org/zap"
)

// DefaultInterval is the redraw cadence used when none is configured.
const DefaultInterval = 16 * time.Millisecond

// Config contains runtime options for Monitor.
type Config struct {
	Interval time.Duration
	Logger   *zap.Logger
}

// Monitor polls a LockState and notifies subscribers when it flips.
type Monitor struct {
	mu       sync.Mutex
	lock     *model.LockState
	config   Config
	logger   *zap.Logger
	events   []chan Event
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	lastSeen bool
}

// New creates a monitor for lock.
func New(lock *model.LockState, config Config) *Monitor {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		lock:   lock,
		config: config,
		logger: logger.Named("monitor"),
	}
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than stall the poll loop.
func (monitor *Monitor) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	monitor.mu.Lock()
	monitor.events = append(monitor.events, ch)
	monitor.mu.Unlock()
	return ch
}

// Start launches the polling loop.
func (monitor *Monitor) Start() {
	monitor.mu.Lock()
	if monitor.running {
		monitor.mu.Unlock()
		return
	}
	monitor.running = true
	monitor.stopCh = make(chan struct{})
	monitor.doneCh = make(chan struct{})
	monitor.lastSeen = monitor.lock.Locked()
	monitor.mu.Unlock()

	go monitor.run(monitor.stopCh, monitor.doneCh)
}

// Stop terminates the polling loop and closes observers.
func (monitor *Monitor) Stop() {
	monitor.mu.Lock()
	if !monitor.running {
		monitor.mu.Unlock()
		return
	}
	monitor.running = false
	close(monitor.stopCh)
	done := monitor.doneCh
	monitor.mu.Unlock()

	<-done

	monitor.mu.Lock()
	events := monitor.events
	monitor.events = nil
	monitor.mu.Unlock()
	for _, ch := range events {
		close(ch)
	}
}

// ReportHookFailure tells observers the keyboard hook is unavailable.
func (monitor *Monitor) ReportHookFailure(err error) {
	monitor.emit(Event{
		Type:    EventHookFailure,
		Locked:  monitor.lock.Locked(),
		Message: err.Error(),
		At:      time.Now(),
	})
}

func (monitor *Monitor) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	ticker := time.NewTicker(monitor.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			monitor.poll(tickTime)
		}
	}
}

func (monitor *Monitor) poll(now time.Time) {
	locked := monitor.lock.Locked()

	monitor.mu.Lock()
	changed := locked != monitor.lastSeen
	monitor.lastSeen = locked
	monitor.mu.Unlock()

	if !changed {
		return
	}
	monitor.logger.Info("lock state changed", zap.Bool("locked", locked))
	monitor.emit(Event{
		Type:   EventLockChange,
		Locked: locked,
		At:     now,
	})
}

func (monitor *Monitor) emit(event Event) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	for _, ch := range monitor.events {
		select {
		case ch <- event:
		default:
		}
	}
}
