//go:build windows

package platform

import (
	"fmt"
	"sync"
	"sync/atomic"
	"syscall"
	"unsafe"

	"pawgate/internal/core/gate"
	"pawgate/internal/core/hotkey"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procPeekMessageW        = user32.NewProc("PeekMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procGetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
)

const (
	whKeyboardLL  = 13
	wmKeyDown     = 0x0100
	wmSysKeyDown  = 0x0104
	pmRemove      = 0x0001
	keyStateHeld  = 0x8000
	swallowResult = 1
)

type kbdllHookStruct struct {
	VkCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type message struct {
	Hwnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       struct{ X, Y int32 }
	LPrivate uint32
}

// The OS passes no user context to a low-level hook procedure, so the
// installed handler lives here. Only one hook per process is allowed.
var (
	activeHandler atomic.Pointer[func(gate.KeyEvent) gate.Verdict]
	hookProc      = sync.OnceValue(func() uintptr {
		return syscall.NewCallback(lowLevelKeyboardProc)
	})
)

func lowLevelKeyboardProc(nCode, wParam, lParam uintptr) uintptr {
	code := int32(nCode)
	if code >= 0 {
		if handler := activeHandler.Load(); handler != nil {
			info := (*kbdllHookStruct)(unsafe.Pointer(lParam))
			event := gate.KeyEvent{
				Code: code,
				Key:  hotkey.Key(info.VkCode),
				Down: wParam == wmKeyDown || wParam == wmSysKeyDown,
			}
			if (*handler)(event) == gate.VerdictSwallow {
				return swallowResult
			}
		}
	}
	result, _, _ := procCallNextHookEx.Call(0, nCode, wParam, lParam)
	return result
}

type windowsHook struct {
	handle uintptr
}

func newHook() gate.Hook {
	return &windowsHook{}
}

func (hook *windowsHook) Install(handler func(gate.KeyEvent) gate.Verdict) error {
	if hook.handle != 0 {
		return ErrHookInstalled
	}
	if !activeHandler.CompareAndSwap(nil, &handler) {
		return ErrHookInstalled
	}

	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		module = 0
	}

	handle, _, err := procSetWindowsHookExW.Call(whKeyboardLL, hookProc(), uintptr(module), 0)
	if handle == 0 {
		activeHandler.Store(nil)
		return fmt.Errorf("SetWindowsHookExW: %w", err)
	}
	hook.handle = handle
	return nil
}

func (hook *windowsHook) Pump() bool {
	var msg message
	found := false
	for {
		result, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, pmRemove)
		if result == 0 {
			return found
		}
		found = true
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

func (hook *windowsHook) Uninstall() error {
	if hook.handle == 0 {
		return nil
	}
	result, _, err := procUnhookWindowsHookEx.Call(hook.handle)
	hook.handle = 0
	activeHandler.Store(nil)
	if result == 0 {
		return fmt.Errorf("UnhookWindowsHookEx: %w", err)
	}
	return nil
}

// sidedModifierKeys are queried individually; the unified codes would
// hide which side is held.
var sidedModifierKeys = [...]hotkey.Key{
	hotkey.KeyLControl, hotkey.KeyRControl,
	hotkey.KeyLShift, hotkey.KeyRShift,
	hotkey.KeyLAlt, hotkey.KeyRAlt,
	hotkey.KeyLeftWin, hotkey.KeyRightWin,
}

type asyncKeyState struct{}

func newModifierReader() gate.ModifierReader {
	return asyncKeyState{}
}

func (asyncKeyState) Modifiers() hotkey.Modifiers {
	var held hotkey.Modifiers
	for _, key := range sidedModifierKeys {
		state, _, _ := procGetAsyncKeyState.Call(uintptr(key))
		if uint16(state)&keyStateHeld == 0 {
			continue
		}
		if modifier, ok := hotkey.ModifierOf(key); ok {
			held |= modifier
		}
	}
	return held
}
