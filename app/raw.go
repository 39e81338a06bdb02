// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"github.com/glintgl/glint/f64"
)

// RawEvent is an event delivered by the native windowing layer.
//
// The variants form a fixed allow-list of fully ownable payloads.
// Native events whose payloads borrow platform state (modifier
// changes, scale-factor changes, IME composition, touchpad
// gestures) have no variant here and are invisible to consumers.
type RawEvent interface {
	ImplementsRawEvent()
}

// RawResized reports a new drawable size in physical pixels.
type RawResized struct {
	Size image.Point
}

// RawMoved reports a new window position in physical coordinates.
type RawMoved struct {
	Position f64.Point
}

// RawCloseRequested reports that the user asked to close the
// window.
type RawCloseRequested struct{}

// RawDestroyed reports that the native window is gone.
type RawDestroyed struct{}

// RawChar is a unit of text input.
type RawChar struct {
	Char rune
}

// RawFocused reports a focus change.
type RawFocused struct {
	Focused bool
}

// RawKey is a keyboard key state change.
type RawKey struct {
	Pressed  bool
	Code     VirtualKey
	Scancode uint32
}

// RawCursorMoved reports the pointer position in physical
// coordinates.
type RawCursorMoved struct {
	Position f64.Point
}

// RawCursorEntered reports the pointer entering the window.
type RawCursorEntered struct{}

// RawCursorLeft reports the pointer leaving the window.
type RawCursorLeft struct{}

// RawScrollPixels is a scroll delta in physical pixels.
type RawScrollPixels struct {
	Delta f64.Point
}

// RawScrollLines is a scroll delta in lines.
type RawScrollLines struct {
	DX, DY float64
}

// RawMouseButton is a mouse button state change.
type RawMouseButton struct {
	Pressed bool
	Button  NativeMouseButton
}

// TouchPhase is the phase of a raw touch.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// RawTouch is a touch point change in physical coordinates.
type RawTouch struct {
	ID       int64
	Phase    TouchPhase
	Position f64.Point
}

// RawHoveredFile reports a file hovering over the window.
type RawHoveredFile struct {
	Path string
}

// RawDroppedFile reports a file dropped on the window.
type RawDroppedFile struct {
	Path string
}

// RawHoverCancelled reports that a file hover left the window.
type RawHoverCancelled struct{}

// RawAxisMotion is analog axis motion from an input device.
type RawAxisMotion struct {
	Axis  uint32
	Value float64
}

// RawWake is the synchronization marker injected through a Waker.
// It bounds a drain of the source and unblocks timed waits.
type RawWake struct{}

func (RawResized) ImplementsRawEvent()        {}
func (RawMoved) ImplementsRawEvent()          {}
func (RawCloseRequested) ImplementsRawEvent() {}
func (RawDestroyed) ImplementsRawEvent()      {}
func (RawChar) ImplementsRawEvent()           {}
func (RawFocused) ImplementsRawEvent()        {}
func (RawKey) ImplementsRawEvent()            {}
func (RawCursorMoved) ImplementsRawEvent()    {}
func (RawCursorEntered) ImplementsRawEvent()  {}
func (RawCursorLeft) ImplementsRawEvent()     {}
func (RawScrollPixels) ImplementsRawEvent()   {}
func (RawScrollLines) ImplementsRawEvent()    {}
func (RawMouseButton) ImplementsRawEvent()    {}
func (RawTouch) ImplementsRawEvent()          {}
func (RawHoveredFile) ImplementsRawEvent()    {}
func (RawDroppedFile) ImplementsRawEvent()    {}
func (RawHoverCancelled) ImplementsRawEvent() {}
func (RawAxisMotion) ImplementsRawEvent()     {}
func (RawWake) ImplementsRawEvent()           {}

// NativeMouseButton is a platform mouse button code.
type NativeMouseButton uint16

const (
	NativeMouseLeft NativeMouseButton = iota
	NativeMouseRight
	NativeMouseMiddle
	nativeMouseOther
)

// NativeMouseOther returns the code for extra button n, counted
// from zero past the three standard buttons.
func NativeMouseOther(n uint8) NativeMouseButton {
	return nativeMouseOther + NativeMouseButton(n)
}

// VirtualKey is a platform virtual key code.
type VirtualKey uint16

const (
	Vk0 VirtualKey = iota
	Vk1
	Vk2
	Vk3
	Vk4
	Vk5
	Vk6
	Vk7
	Vk8
	Vk9
	VkA
	VkB
	VkC
	VkD
	VkE
	VkF
	VkG
	VkH
	VkI
	VkJ
	VkK
	VkL
	VkM
	VkN
	VkO
	VkP
	VkQ
	VkR
	VkS
	VkT
	VkU
	VkV
	VkW
	VkX
	VkY
	VkZ
	VkApostrophe
	VkBack
	VkBackslash
	VkCapsLock
	VkComma
	VkDelete
	VkDown
	VkEnd
	VkEquals
	VkEscape
	VkF1
	VkF2
	VkF3
	VkF4
	VkF5
	VkF6
	VkF7
	VkF8
	VkF9
	VkF10
	VkF11
	VkF12
	VkF13
	VkF14
	VkF15
	VkF16
	VkF17
	VkF18
	VkF19
	VkF20
	VkF21
	VkF22
	VkF23
	VkF24
	VkGrave
	VkHome
	VkInsert
	VkLAlt
	VkLBracket
	VkLControl
	VkLShift
	VkLeft
	VkMenu
	VkMinus
	VkNumlock
	VkNumpad0
	VkNumpad1
	VkNumpad2
	VkNumpad3
	VkNumpad4
	VkNumpad5
	VkNumpad6
	VkNumpad7
	VkNumpad8
	VkNumpad9
	VkNumpadAdd
	VkNumpadComma
	VkNumpadDivide
	VkNumpadEnter
	VkNumpadEquals
	VkNumpadMultiply
	VkNumpadSubtract
	VkPageDown
	VkPageUp
	VkPause
	VkPeriod
	VkRAlt
	VkRBracket
	VkRControl
	VkRShift
	VkReturn
	VkRight
	VkScroll
	VkSemicolon
	VkSlash
	VkSnapshot
	VkSpace
	VkTab
	VkUp
	VkWorld1
	VkWorld2
)
