// SPDX-License-Identifier: Unlicense OR MIT

package display

import (
	"strconv"

	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyNames = map[glfw.Key]key.Name{
	glfw.KeyEscape:    key.NameEscape,
	glfw.KeyEnter:     key.NameReturn,
	glfw.KeyKPEnter:   key.NameEnter,
	glfw.KeySpace:     key.NameSpace,
	glfw.KeyTab:       key.NameTab,
	glfw.KeyBackspace: key.NameDeleteBackward,
	glfw.KeyDelete:    key.NameDeleteForward,
	glfw.KeyLeft:      key.NameLeftArrow,
	glfw.KeyRight:     key.NameRightArrow,
	glfw.KeyUp:        key.NameUpArrow,
	glfw.KeyDown:      key.NameDownArrow,
	glfw.KeyHome:      key.NameHome,
	glfw.KeyEnd:       key.NameEnd,
	glfw.KeyPageUp:    key.NamePageUp,
	glfw.KeyPageDown:  key.NamePageDown,
}

// convertKey translates a GLFW key action. Keys without a Gio name are
// dropped; repeats are reported as presses.
func convertKey(k glfw.Key, action glfw.Action, mods glfw.ModifierKey) (key.Event, bool) {
	name, ok := keyName(k)
	if !ok {
		return key.Event{}, false
	}
	e := key.Event{Name: name, Modifiers: convertMods(mods)}
	switch action {
	case glfw.Press, glfw.Repeat:
		e.State = key.Press
	case glfw.Release:
		e.State = key.Release
	default:
		return key.Event{}, false
	}
	return e, true
}

func keyName(k glfw.Key) (key.Name, bool) {
	if n, ok := keyNames[k]; ok {
		return n, true
	}
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return key.Name(rune('A' + k - glfw.KeyA)), true
	case k >= glfw.Key0 && k <= glfw.Key9:
		return key.Name(rune('0' + k - glfw.Key0)), true
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return key.Name("F" + strconv.Itoa(int(k-glfw.KeyF1)+1)), true
	}
	return "", false
}

func convertMods(mods glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= key.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= key.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= key.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= key.ModSuper
	}
	return m
}

func convertButton(b glfw.MouseButton) pointer.Buttons {
	switch b {
	case glfw.MouseButtonLeft:
		return pointer.ButtonPrimary
	case glfw.MouseButtonRight:
		return pointer.ButtonSecondary
	case glfw.MouseButtonMiddle:
		return pointer.ButtonTertiary
	default:
		return 0
	}
}

// IsQuit reports whether e asks the program to exit: a close request
// or an Escape key press.
func IsQuit(e any) bool {
	switch e := e.(type) {
	case CloseEvent:
		return true
	case key.Event:
		return e.Name == key.NameEscape && e.State == key.Press
	}
	return false
}
