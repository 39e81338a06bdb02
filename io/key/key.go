// SPDX-License-Identifier: Unlicense OR MIT

// Package key defines the normalized keyboard key codes.
package key

import "strconv"

// Key identifies a keyboard key independently of the platform
// key code space. Unknown is the sentinel for platform keys
// that have no normalized equivalent.
type Key uint16

const (
	Unknown Key = iota

	// Digits on the main keyboard row.
	D0
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9

	// Letters.
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	// Editing and navigation.
	Backslash
	Backspace
	Comma
	Delete
	Down
	End
	Equals
	Escape
	Home
	Insert
	Left
	LeftBracket
	Minus
	PageDown
	PageUp
	Pause
	Period
	PrintScreen
	Return
	Right
	RightBracket
	ScrollLock
	Semicolon
	Slash
	Space
	Tab
	Up

	// Function keys.
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	// Keypad.
	NumLockClear
	NumPad0
	NumPad1
	NumPad2
	NumPad3
	NumPad4
	NumPad5
	NumPad6
	NumPad7
	NumPad8
	NumPad9
	NumPadDecimal
	NumPadDivide
	NumPadEnter
	NumPadEquals
	NumPadMinus
	NumPadMultiply
	NumPadPlus

	// Modifiers.
	LShift
	LCtrl
	LAlt
	RShift
	RCtrl
	RAlt
)

var names = map[Key]string{
	Unknown:        "Unknown",
	D0:             "0",
	D1:             "1",
	D2:             "2",
	D3:             "3",
	D4:             "4",
	D5:             "5",
	D6:             "6",
	D7:             "7",
	D8:             "8",
	D9:             "9",
	A:              "A",
	B:              "B",
	C:              "C",
	D:              "D",
	E:              "E",
	F:              "F",
	G:              "G",
	H:              "H",
	I:              "I",
	J:              "J",
	K:              "K",
	L:              "L",
	M:              "M",
	N:              "N",
	O:              "O",
	P:              "P",
	Q:              "Q",
	R:              "R",
	S:              "S",
	T:              "T",
	U:              "U",
	V:              "V",
	W:              "W",
	X:              "X",
	Y:              "Y",
	Z:              "Z",
	Backslash:      "Backslash",
	Backspace:      "Backspace",
	Comma:          "Comma",
	Delete:         "Delete",
	Down:           "Down",
	End:            "End",
	Equals:         "Equals",
	Escape:         "Escape",
	Home:           "Home",
	Insert:         "Insert",
	Left:           "Left",
	LeftBracket:    "LeftBracket",
	Minus:          "Minus",
	PageDown:       "PageDown",
	PageUp:         "PageUp",
	Pause:          "Pause",
	Period:         "Period",
	PrintScreen:    "PrintScreen",
	Return:         "Return",
	Right:          "Right",
	RightBracket:   "RightBracket",
	ScrollLock:     "ScrollLock",
	Semicolon:      "Semicolon",
	Slash:          "Slash",
	Space:          "Space",
	Tab:            "Tab",
	Up:             "Up",
	F1:             "F1",
	F2:             "F2",
	F3:             "F3",
	F4:             "F4",
	F5:             "F5",
	F6:             "F6",
	F7:             "F7",
	F8:             "F8",
	F9:             "F9",
	F10:            "F10",
	F11:            "F11",
	F12:            "F12",
	F13:            "F13",
	F14:            "F14",
	F15:            "F15",
	F16:            "F16",
	F17:            "F17",
	F18:            "F18",
	F19:            "F19",
	F20:            "F20",
	F21:            "F21",
	F22:            "F22",
	F23:            "F23",
	F24:            "F24",
	NumLockClear:   "NumLockClear",
	NumPad0:        "NumPad0",
	NumPad1:        "NumPad1",
	NumPad2:        "NumPad2",
	NumPad3:        "NumPad3",
	NumPad4:        "NumPad4",
	NumPad5:        "NumPad5",
	NumPad6:        "NumPad6",
	NumPad7:        "NumPad7",
	NumPad8:        "NumPad8",
	NumPad9:        "NumPad9",
	NumPadDecimal:  "NumPadDecimal",
	NumPadDivide:   "NumPadDivide",
	NumPadEnter:    "NumPadEnter",
	NumPadEquals:   "NumPadEquals",
	NumPadMinus:    "NumPadMinus",
	NumPadMultiply: "NumPadMultiply",
	NumPadPlus:     "NumPadPlus",
	LShift:         "LShift",
	LCtrl:          "LCtrl",
	LAlt:           "LAlt",
	RShift:         "RShift",
	RCtrl:          "RCtrl",
	RAlt:           "RAlt",
}

func (k Key) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}
