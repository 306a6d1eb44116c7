package hotkey

import (
	"errors"
	"fmt"
	"strings"
)

// Modifiers is a set of modifier roles.
type Modifiers uint8

const (
	Control Modifiers = 1 << iota
	Shift
	Alt
	Meta
)

// modifierOrder fixes the order used when formatting.
var modifierOrder = []struct {
	modifier Modifiers
	name     string
}{
	{Control, "ctrl"},
	{Shift, "shift"},
	{Alt, "alt"},
	{Meta, "win"},
}

var modifierTokens = map[string]Modifiers{
	"ctrl":    Control,
	"control": Control,
	"shift":   Shift,
	"alt":     Alt,
	"win":     Meta,
	"windows": Meta,
	"meta":    Meta,
	"super":   Meta,
}

// Has reports whether every modifier in other is in the set.
func (mods Modifiers) Has(other Modifiers) bool {
	return mods&other == other
}

// String joins the set in canonical order, e.g. "ctrl+shift".
func (mods Modifiers) String() string {
	parts := make([]string, 0, len(modifierOrder))
	for _, entry := range modifierOrder {
		if mods.Has(entry.modifier) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, "+")
}

var (
	// ErrUnknownKey reports a token that is neither a modifier nor a known key.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDuplicateKey reports more than one non-modifier token.
	ErrDuplicateKey = errors.New("more than one trigger key")
	// ErrNoKey reports hotkey text without a trigger key.
	ErrNoKey = errors.New("no trigger key")
)

// Binding is a modifier set plus one trigger key.
// The zero value is the absent binding.
type Binding struct {
	Modifiers Modifiers
	Key       Key
}

// IsZero reports whether the binding has no trigger key.
func (binding Binding) IsZero() bool {
	return binding.Key == KeyNone
}

// String formats the binding as hotkey text that Parse accepts.
func (binding Binding) String() string {
	if binding.IsZero() {
		return ""
	}
	mods := binding.Modifiers.String()
	if mods == "" {
		return binding.Key.Name()
	}
	return mods + "+" + binding.Key.Name()
}

// Parse reads "ctrl+shift+l" style text. Tokens are case-insensitive and
// separated by '+'. Any error leaves the returned binding absent; picking a
// fallback is up to the caller.
func Parse(text string) (Binding, error) {
	var binding Binding
	for _, raw := range strings.Split(text, "+") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if modifier, ok := modifierTokens[token]; ok {
			binding.Modifiers |= modifier
			continue
		}
		key, ok := KeyFromName(token)
		if !ok {
			return Binding{}, fmt.Errorf("parse hotkey %q: %w: %q", text, ErrUnknownKey, token)
		}
		if binding.Key != KeyNone {
			return Binding{}, fmt.Errorf("parse hotkey %q: %w", text, ErrDuplicateKey)
		}
		binding.Key = key
	}
	if binding.Key == KeyNone {
		return Binding{}, fmt.Errorf("parse hotkey %q: %w", text, ErrNoKey)
	}
	return binding, nil
}
