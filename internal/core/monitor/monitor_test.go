package monitor

import (
	"errors"
	"testing"
	"time"

	"pawgate/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestMonitorEmitsLockChanges(t *testing.T) {
	lock := &model.LockState{}
	monitor := New(lock, Config{Interval: time.Millisecond})
	events := monitor.Subscribe(4)
	monitor.Start()
	defer monitor.Stop()

	lock.Toggle()
	event := receive(t, events)
	assert.Equal(t, EventLockChange, event.Type)
	assert.True(t, event.Locked)

	lock.Toggle()
	event = receive(t, events)
	assert.False(t, event.Locked)
}

func TestMonitorIgnoresInitialState(t *testing.T) {
	lock := &model.LockState{}
	lock.Set(true)
	monitor := New(lock, Config{Interval: time.Millisecond})
	events := monitor.Subscribe(1)
	monitor.Start()

	time.Sleep(10 * time.Millisecond)
	monitor.Stop()

	_, open := <-events
	assert.False(t, open, "no change means no event, only the close")
}

func TestMonitorReportsHookFailure(t *testing.T) {
	monitor := New(&model.LockState{}, Config{})
	events := monitor.Subscribe(1)

	monitor.ReportHookFailure(errors.New("access denied"))

	event := receive(t, events)
	assert.Equal(t, EventHookFailure, event.Type)
	assert.Equal(t, "access denied", event.Message)
}

func TestMonitorStopClosesSubscribers(t *testing.T) {
	monitor := New(&model.LockState{}, Config{Interval: time.Millisecond})
	first := monitor.Subscribe(1)
	second := monitor.Subscribe(1)
	monitor.Start()
	monitor.Stop()
	monitor.Stop()

	_, open := <-first
	require.False(t, open)
	_, open = <-second
	require.False(t, open)
}

func TestMonitorDropsEventsForSlowSubscribers(t *testing.T) {
	lock := &model.LockState{}
	monitor := New(lock, Config{})
	events := monitor.Subscribe(1)

	monitor.poll(time.Now())
	lock.Toggle()
	monitor.poll(time.Now())
	lock.Toggle()
	monitor.poll(time.Now())

	event := receive(t, events)
	assert.True(t, event.Locked)
	select {
	case extra := <-events:
		t.Fatalf("unexpected buffered event %+v", extra)
	default:
	}
}
