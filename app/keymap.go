// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/glintgl/glint/io/input"
	"github.com/glintgl/glint/io/key"
)

// MapKey maps a platform virtual key code to a normalized key.
// Codes without a normalized equivalent map to key.Unknown.
func MapKey(code VirtualKey) key.Key {
	switch code {
	case Vk0:
		return key.D0
	case Vk1:
		return key.D1
	case Vk2:
		return key.D2
	case Vk3:
		return key.D3
	case Vk4:
		return key.D4
	case Vk5:
		return key.D5
	case Vk6:
		return key.D6
	case Vk7:
		return key.D7
	case Vk8:
		return key.D8
	case Vk9:
		return key.D9
	case VkA:
		return key.A
	case VkB:
		return key.B
	case VkC:
		return key.C
	case VkD:
		return key.D
	case VkE:
		return key.E
	case VkF:
		return key.F
	case VkG:
		return key.G
	case VkH:
		return key.H
	case VkI:
		return key.I
	case VkJ:
		return key.J
	case VkK:
		return key.K
	case VkL:
		return key.L
	case VkM:
		return key.M
	case VkN:
		return key.N
	case VkO:
		return key.O
	case VkP:
		return key.P
	case VkQ:
		return key.Q
	case VkR:
		return key.R
	case VkS:
		return key.S
	case VkT:
		return key.T
	case VkU:
		return key.U
	case VkV:
		return key.V
	case VkW:
		return key.W
	case VkX:
		return key.X
	case VkY:
		return key.Y
	case VkZ:
		return key.Z
	case VkBack:
		return key.Backspace
	case VkBackslash:
		return key.Backslash
	case VkComma:
		return key.Comma
	case VkDelete:
		return key.Delete
	case VkDown:
		return key.Down
	case VkEnd:
		return key.End
	case VkEquals:
		return key.Equals
	case VkEscape:
		return key.Escape
	case VkF1:
		return key.F1
	case VkF2:
		return key.F2
	case VkF3:
		return key.F3
	case VkF4:
		return key.F4
	case VkF5:
		return key.F5
	case VkF6:
		return key.F6
	case VkF7:
		return key.F7
	case VkF8:
		return key.F8
	case VkF9:
		return key.F9
	case VkF10:
		return key.F10
	case VkF11:
		return key.F11
	case VkF12:
		return key.F12
	case VkF13:
		return key.F13
	case VkF14:
		return key.F14
	case VkF15:
		return key.F15
	case VkF16:
		return key.F16
	case VkF17:
		return key.F17
	case VkF18:
		return key.F18
	case VkF19:
		return key.F19
	case VkF20:
		return key.F20
	case VkF21:
		return key.F21
	case VkF22:
		return key.F22
	case VkF23:
		return key.F23
	case VkF24:
		return key.F24
	case VkHome:
		return key.Home
	case VkInsert:
		return key.Insert
	case VkLAlt:
		return key.LAlt
	case VkLBracket:
		return key.LeftBracket
	case VkLControl:
		return key.LCtrl
	case VkLShift:
		return key.LShift
	case VkLeft:
		return key.Left
	case VkMinus:
		return key.Minus
	case VkNumlock:
		return key.NumLockClear
	case VkNumpad0:
		return key.NumPad0
	case VkNumpad1:
		return key.NumPad1
	case VkNumpad2:
		return key.NumPad2
	case VkNumpad3:
		return key.NumPad3
	case VkNumpad4:
		return key.NumPad4
	case VkNumpad5:
		return key.NumPad5
	case VkNumpad6:
		return key.NumPad6
	case VkNumpad7:
		return key.NumPad7
	case VkNumpad8:
		return key.NumPad8
	case VkNumpad9:
		return key.NumPad9
	case VkNumpadAdd:
		return key.NumPadPlus
	case VkNumpadComma:
		return key.NumPadDecimal
	case VkNumpadDivide:
		return key.NumPadDivide
	case VkNumpadEnter:
		return key.NumPadEnter
	case VkNumpadEquals:
		return key.NumPadEquals
	case VkNumpadMultiply:
		return key.NumPadMultiply
	case VkNumpadSubtract:
		return key.NumPadMinus
	case VkPageDown:
		return key.PageDown
	case VkPageUp:
		return key.PageUp
	case VkPause:
		return key.Pause
	case VkPeriod:
		return key.Period
	case VkRAlt:
		return key.RAlt
	case VkRBracket:
		return key.RightBracket
	case VkRControl:
		return key.RCtrl
	case VkRShift:
		return key.RShift
	case VkReturn:
		return key.Return
	case VkRight:
		return key.Right
	case VkScroll:
		return key.ScrollLock
	case VkSemicolon:
		return key.Semicolon
	case VkSlash:
		return key.Slash
	case VkSnapshot:
		return key.PrintScreen
	case VkSpace:
		return key.Space
	case VkTab:
		return key.Tab
	case VkUp:
		return key.Up
	default:
		return key.Unknown
	}
}

// MapMouse maps a platform mouse button code to a normalized
// mouse button. Codes without a normalized equivalent map to
// input.MouseUnknown.
func MapMouse(button NativeMouseButton) input.MouseButton {
	switch button {
	case NativeMouseLeft:
		return input.MouseLeft
	case NativeMouseRight:
		return input.MouseRight
	case NativeMouseMiddle:
		return input.MouseMiddle
	case NativeMouseOther(0):
		return input.MouseX1
	case NativeMouseOther(1):
		return input.MouseX2
	case NativeMouseOther(2):
		return input.MouseButton6
	case NativeMouseOther(3):
		return input.MouseButton7
	case NativeMouseOther(4):
		return input.MouseButton8
	default:
		return input.MouseUnknown
	}
}
