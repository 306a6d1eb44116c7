package hotkey

// ModifiersMatch reports whether the live modifiers are exactly the
// required ones. Extra held modifiers reject the match, so ctrl+b does not
// fire on ctrl+shift+b.
func ModifiersMatch(required, live Modifiers) bool {
	return required == live
}

// IsHotkey reports whether pressing key with live modifiers held completes
// the binding.
func IsHotkey(binding Binding, key Key, live Modifiers) bool {
	if binding.IsZero() || key != binding.Key {
		return false
	}
	return ModifiersMatch(binding.Modifiers, live)
}
