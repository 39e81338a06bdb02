// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"github.com/glintgl/glint/f64"
	"github.com/glintgl/glint/glapi"
)

// Size is a window size in logical units.
type Size struct {
	Width, Height float64
}

// EventSource is the interface to the native windowing layer.
//
// Implementations deliver raw events one at a time from Recv and
// must support wake injection from other goroutines through the
// Waker. Everything else is queries and commands on the native
// window.
type EventSource interface {
	// Recv blocks until the next raw event is available and
	// returns it. Wake markers injected through a Waker are
	// delivered as RawWake events.
	Recv() RawEvent

	// Waker returns a handle that injects a RawWake event into
	// the source. Unlike the rest of the interface, a Waker may
	// be used from any goroutine.
	Waker() Waker

	// ScaleFactor is the live mapping from logical units to
	// physical pixels.
	ScaleFactor() float64

	// InnerSize is the size of the window's drawable area in
	// physical pixels.
	InnerSize() image.Point

	// OuterPosition is the position of the window's top-left
	// corner in physical coordinates.
	OuterPosition() (f64.Point, error)

	// SetOuterPosition moves the window. The position is in
	// logical coordinates.
	SetOuterPosition(pos f64.Point)

	// SetInnerSize resizes the drawable area. Width and height
	// are in logical units.
	SetInnerSize(width, height float64)

	SetTitle(title string)
	SetVisible(visible bool)
	SetCursorVisible(visible bool)

	// SetCursorPosition warps the pointer to pos, in logical
	// coordinates. The platform may refuse.
	SetCursorPosition(pos f64.Point) error
}

// Waker injects wake markers into an EventSource. It is safe for
// concurrent use.
type Waker interface {
	// Wake delivers one RawWake event. It fails only when the
	// source has been torn down.
	Wake() error
}

// ContextBackend creates GL contexts for a window.
type ContextBackend interface {
	// NewContext creates a context and a drawable surface sized
	// to the window for the requested API version.
	NewContext(api glapi.Version) (GraphicsContext, error)
}

// GraphicsContext is a GL context together with its drawable
// surface.
type GraphicsContext interface {
	// Resize resizes the surface to size physical pixels. Both
	// dimensions must be non-zero.
	Resize(size image.Point)

	// SwapBuffers presents the back buffer.
	SwapBuffers() error

	// SetSwapInterval sets the number of vertical blanks to wait
	// for on each swap. 1 enables vsync.
	SetSwapInterval(interval int) error

	MakeCurrent() error
	IsCurrent() bool

	// ProcAddress resolves a GL function pointer by name.
	ProcAddress(name string) uintptr

	// Release frees the context and surface.
	Release()
}
