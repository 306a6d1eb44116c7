package monitor

import "time"

// EventType defines the type of monitor event.
type EventType string

const (
	EventLockChange  EventType = "lock_change"
	EventHookFailure EventType = "hook_failure"
)

// Event represents a lock update for observers.
type Event struct {
	Type    EventType
	Locked  bool
	Message string
	At      time.Time
}
