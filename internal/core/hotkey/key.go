// Package hotkey parses hotkey text and decides whether a key press
// completes the configured chord.
//
// Key identifiers are Windows virtual-key codes. Everything here is pure:
// live modifier state is passed in by the caller.
package hotkey

import "fmt"

// Key is a Windows virtual-key code.
type Key uint32

// KeyNone marks an absent trigger key.
const KeyNone Key = 0

// Modifier virtual-key codes, unified and left/right forms.
const (
	KeyShift    Key = 0x10
	KeyControl  Key = 0x11
	KeyAlt      Key = 0x12 // VK_MENU
	KeyLeftWin  Key = 0x5B
	KeyRightWin Key = 0x5C
	KeyLShift   Key = 0xA0
	KeyRShift   Key = 0xA1
	KeyLControl Key = 0xA2
	KeyRControl Key = 0xA3
	KeyLAlt     Key = 0xA4
	KeyRAlt     Key = 0xA5
)

// Named trigger keys.
const (
	KeyBackspace   Key = 0x08
	KeyTab         Key = 0x09
	KeyEnter       Key = 0x0D
	KeyPause       Key = 0x13
	KeyEscape      Key = 0x1B
	KeySpace       Key = 0x20
	KeyPageUp      Key = 0x21
	KeyPageDown    Key = 0x22
	KeyEnd         Key = 0x23
	KeyHome        Key = 0x24
	KeyLeft        Key = 0x25
	KeyUp          Key = 0x26
	KeyRight       Key = 0x27
	KeyDown        Key = 0x28
	KeyPrintScreen Key = 0x2C
	KeyInsert      Key = 0x2D
	KeyDelete      Key = 0x2E
	KeyNumLock     Key = 0x90
	KeyScrollLock  Key = 0x91
)

// Ranges for letters, digits and function keys.
const (
	Key0   Key = 0x30
	Key9   Key = 0x39
	KeyA   Key = 0x41
	KeyB   Key = 0x42
	KeyL   Key = 0x4C
	KeyZ   Key = 0x5A
	KeyF1  Key = 0x70
	KeyF24 Key = 0x87
)

type namedKey struct {
	name    string
	key     Key
	aliases []string
}

// namedKeys lists the special keys a hotkey may use. The first name is canonical.
var namedKeys = []namedKey{
	{name: "space", key: KeySpace},
	{name: "enter", key: KeyEnter, aliases: []string{"return"}},
	{name: "escape", key: KeyEscape, aliases: []string{"esc"}},
	{name: "tab", key: KeyTab},
	{name: "backspace", key: KeyBackspace},
	{name: "delete", key: KeyDelete, aliases: []string{"del"}},
	{name: "insert", key: KeyInsert, aliases: []string{"ins"}},
	{name: "home", key: KeyHome},
	{name: "end", key: KeyEnd},
	{name: "pageup", key: KeyPageUp, aliases: []string{"pgup"}},
	{name: "pagedown", key: KeyPageDown, aliases: []string{"pgdn"}},
	{name: "up", key: KeyUp},
	{name: "down", key: KeyDown},
	{name: "left", key: KeyLeft},
	{name: "right", key: KeyRight},
	{name: "numlock", key: KeyNumLock},
	{name: "scrolllock", key: KeyScrollLock},
	{name: "pause", key: KeyPause},
	{name: "printscreen", key: KeyPrintScreen, aliases: []string{"prtsc"}},
}

var (
	keysByName = buildKeysByName()
	namesByKey = buildNamesByKey()
)

func buildKeysByName() map[string]Key {
	byName := make(map[string]Key, len(namedKeys)*2)
	for _, entry := range namedKeys {
		byName[entry.name] = entry.key
		for _, alias := range entry.aliases {
			byName[alias] = entry.key
		}
	}
	return byName
}

func buildNamesByKey() map[Key]string {
	byKey := make(map[Key]string, len(namedKeys))
	for _, entry := range namedKeys {
		byKey[entry.key] = entry.name
	}
	return byKey
}

// NamedKeys returns the canonical names of the special keys.
func NamedKeys() []string {
	names := make([]string, 0, len(namedKeys))
	for _, entry := range namedKeys {
		names = append(names, entry.name)
	}
	return names
}

// KeyFromName resolves a lower-case, trimmed token to a trigger key.
func KeyFromName(name string) (Key, bool) {
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return KeyA + Key(c-'a'), true
		case c >= '0' && c <= '9':
			return Key0 + Key(c-'0'), true
		}
		return KeyNone, false
	}
	if key, ok := functionKey(name); ok {
		return key, true
	}
	key, ok := keysByName[name]
	return key, ok
}

func functionKey(name string) (Key, bool) {
	if len(name) < 2 || len(name) > 3 || name[0] != 'f' {
		return KeyNone, false
	}
	number := 0
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return KeyNone, false
		}
		number = number*10 + int(c-'0')
	}
	if name[1] == '0' || number < 1 || number > 24 {
		return KeyNone, false
	}
	return KeyF1 + Key(number-1), true
}

// Name returns the canonical hotkey token for key, or a hex form for
// keys outside the table.
func (key Key) Name() string {
	switch {
	case key >= KeyA && key <= KeyZ:
		return string(rune('a' + (key - KeyA)))
	case key >= Key0 && key <= Key9:
		return string(rune('0' + (key - Key0)))
	case key >= KeyF1 && key <= KeyF24:
		return fmt.Sprintf("f%d", key-KeyF1+1)
	}
	if name, ok := namesByKey[key]; ok {
		return name
	}
	return fmt.Sprintf("vk%#02x", uint32(key))
}

// IsModifierKey reports whether key is a Control, Shift, Alt or Meta key,
// in its unified or left/right form.
func IsModifierKey(key Key) bool {
	_, ok := ModifierOf(key)
	return ok
}

// ModifierOf maps a modifier key to its role.
func ModifierOf(key Key) (Modifiers, bool) {
	switch key {
	case KeyControl, KeyLControl, KeyRControl:
		return Control, true
	case KeyShift, KeyLShift, KeyRShift:
		return Shift, true
	case KeyAlt, KeyLAlt, KeyRAlt:
		return Alt, true
	case KeyLeftWin, KeyRightWin:
		return Meta, true
	}
	return 0, false
}

// ModifierKeys lists every key IsModifierKey accepts.
func ModifierKeys() []Key {
	return []Key{
		KeyControl, KeyLControl, KeyRControl,
		KeyShift, KeyLShift, KeyRShift,
		KeyAlt, KeyLAlt, KeyRAlt,
		KeyLeftWin, KeyRightWin,
	}
}
