package gate

import "pawgate/internal/core/hotkey"

// Verdict is what the hook tells the OS to do with an event.
type Verdict int

const (
	// VerdictForward passes the event on to the next hook.
	VerdictForward Verdict = iota
	// VerdictSwallow suppresses the event.
	VerdictSwallow
)

func (verdict Verdict) String() string {
	if verdict == VerdictSwallow {
		return "swallow"
	}
	return "forward"
}

// KeyEvent is one low-level keyboard event as delivered by the hook.
type KeyEvent struct {
	// Code is the hook code. Negative codes belong to other layers.
	Code int32
	Key  hotkey.Key
	Down bool
}

// Decision is the outcome of Decide.
type Decision struct {
	Verdict Verdict
	Toggle  bool
}

// Decide applies the lock policy to a single event. live is only consulted
// for non-modifier key downs.
//
// Modifier keys always pass so the unlock chord can be held. A matching
// key down toggles the lock and is swallowed either way. Anything else is
// swallowed while locked and forwarded while unlocked.
func Decide(binding hotkey.Binding, event KeyEvent, locked bool, live hotkey.Modifiers) Decision {
	if event.Code < 0 || hotkey.IsModifierKey(event.Key) {
		return Decision{Verdict: VerdictForward}
	}
	if event.Down && hotkey.IsHotkey(binding, event.Key, live) {
		return Decision{Verdict: VerdictSwallow, Toggle: true}
	}
	if locked {
		return Decision{Verdict: VerdictSwallow}
	}
	return Decision{Verdict: VerdictForward}
}
