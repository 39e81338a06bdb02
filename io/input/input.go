// SPDX-License-Identifier: Unlicense OR MIT

// Package input defines the normalized input events delivered to
// the game loop. Every event type implements event.Event; consumers
// switch on the concrete type.
package input

import (
	"fmt"
	"image"

	"github.com/glintgl/glint/f64"
	"github.com/glintgl/glint/io/key"
)

// State is the state of a button during an event.
type State uint8

const (
	// Press is the state of a pressed button.
	Press State = iota
	// Release is the state of a button that has been released.
	Release
)

// Button identifies the source of a ButtonEvent. It is either
// a Keyboard or a Mouse value.
type Button interface {
	ImplementsButton()
}

// Keyboard is a keyboard button.
type Keyboard struct {
	// Key is the normalized key code.
	Key key.Key
	// Scancode is the platform scancode of the key.
	Scancode int32
}

// Mouse is a mouse button.
type Mouse MouseButton

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	// MouseUnknown is a mouse button the platform reports
	// but the mapper does not recognize.
	MouseUnknown MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2
	MouseButton6
	MouseButton7
	MouseButton8
)

// A ButtonEvent is generated when a keyboard key or mouse button
// changes state.
type ButtonEvent struct {
	State  State
	Button Button
}

// Motion is the payload of a MoveEvent: an absolute cursor
// position, a relative cursor delta, a scroll delta or a touch.
type Motion interface {
	ImplementsMotion()
}

// MouseCursor is an absolute cursor position in logical window
// coordinates.
type MouseCursor f64.Point

// MouseRelative is a cursor delta in logical window coordinates.
type MouseRelative f64.Point

// MouseScroll is a scroll delta. For pixel-based devices it is in
// logical window coordinates, for line-based devices it is in lines.
type MouseScroll f64.Point

// TouchPhase is the phase of a touch.
type TouchPhase uint8

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// Touch is a single touch point.
type Touch struct {
	// Device is the id of the touch device.
	Device int
	// ID distinguishes concurrent touches on the same device.
	ID int64
	// Position is in logical window coordinates.
	Position f64.Point
	// Pressure of the touch, in the range [0, 1].
	Pressure float64
	Phase    TouchPhase
}

// A MoveEvent is generated by cursor, scroll and touch motion.
type MoveEvent struct {
	Motion Motion
}

// A TextEvent is generated when the platform delivers text input.
// Control characters yield an event with an empty Text.
type TextEvent struct {
	Text string
}

// A ResizeEvent is generated when the window changes size.
type ResizeEvent struct {
	// WindowSize is the new window size in logical units.
	WindowSize [2]float64
	// DrawSize is the new size of the drawable surface in
	// physical pixels.
	DrawSize image.Point
}

// A FocusEvent is generated when the window gains or loses focus.
type FocusEvent struct {
	Focused bool
}

// A CursorEvent is generated when the cursor enters or leaves
// the window.
type CursorEvent struct {
	Entered bool
}

// FileDragKind is the stage of a file drag-and-drop gesture.
type FileDragKind uint8

const (
	// DragHover means a file is hovering over the window.
	DragHover FileDragKind = iota
	// DragDrop means a file was dropped on the window.
	DragDrop
	// DragCancel means the hover left the window without a drop.
	DragCancel
)

// A FileDragEvent is generated during file drag-and-drop.
// Path is empty for DragCancel.
type FileDragEvent struct {
	Kind FileDragKind
	Path string
}

// A CloseEvent is generated when closing the window is requested.
type CloseEvent struct{}

func (ButtonEvent) ImplementsEvent()   {}
func (MoveEvent) ImplementsEvent()     {}
func (TextEvent) ImplementsEvent()     {}
func (ResizeEvent) ImplementsEvent()   {}
func (FocusEvent) ImplementsEvent()    {}
func (CursorEvent) ImplementsEvent()   {}
func (FileDragEvent) ImplementsEvent() {}
func (CloseEvent) ImplementsEvent()    {}

func (Keyboard) ImplementsButton() {}
func (Mouse) ImplementsButton()    {}

func (MouseCursor) ImplementsMotion()   {}
func (MouseRelative) ImplementsMotion() {}
func (MouseScroll) ImplementsMotion()   {}
func (Touch) ImplementsMotion()         {}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseX1:
		return "X1"
	case MouseX2:
		return "X2"
	case MouseButton6:
		return "Button6"
	case MouseButton7:
		return "Button7"
	case MouseButton8:
		return "Button8"
	default:
		return "Unknown"
	}
}

func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "Start"
	case TouchMove:
		return "Move"
	case TouchEnd:
		return "End"
	case TouchCancel:
		return "Cancel"
	default:
		panic("invalid TouchPhase")
	}
}

func (k FileDragKind) String() string {
	switch k {
	case DragHover:
		return "Hover"
	case DragDrop:
		return "Drop"
	case DragCancel:
		return "Cancel"
	default:
		panic("invalid FileDragKind")
	}
}

func (b Keyboard) String() string {
	return fmt.Sprintf("Keyboard(%v)", b.Key)
}

func (b Mouse) String() string {
	return fmt.Sprintf("Mouse(%v)", MouseButton(b))
}
