// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"image"

	"github.com/kataras/golog"

	"github.com/glintgl/glint/f64"
	"github.com/glintgl/glint/glapi"
	"github.com/glintgl/glint/io/key"
)

var logger = golog.Child("[glint/app]")

// Window combines a native window with a GL context and delivers
// normalized input events to a game loop.
type Window struct {
	src EventSource
	ctx GraphicsContext

	// The native layer does not remember the title.
	title          string
	exitOnEsc      bool
	shouldClose    bool
	automaticClose bool

	// Capture of the cursor is faked to get relative mouse
	// events; see fakeCapture.
	capturing bool
	// Last known cursor position in logical coordinates.
	lastCursor    f64.Point
	hasLastCursor bool
	// Relative motion to emit on the next poll.
	relMotion    f64.Point
	hasRelMotion bool
	// Cursor position to emit on the next poll, for moves
	// generated while another event is being handled.
	pendingCursor    f64.Point
	hasPendingCursor bool

	// Single-slot filter for repeated key presses. It does not
	// affect text repeat.
	lastKey    key.Key
	hasLastKey bool

	events []RawEvent
}

// NewWindow builds a window from settings and the two native
// collaborators. The context is created with a fallback chain:
// the requested version, then any OpenGL ES version, then legacy
// OpenGL 2.1.
func NewWindow(settings Settings, src EventSource, backend ContextBackend) (*Window, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	api := settings.api()
	if api.API != glapi.APIOpenGL {
		return nil, &glapi.UnsupportedAPIError{
			Found:    api.API,
			Expected: []string{glapi.APIOpenGL},
		}
	}
	ctx, err := newContext(backend, api)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	if err := ctx.MakeCurrent(); err != nil {
		ctx.Release()
		return nil, fmt.Errorf("make context current: %w", err)
	}
	if settings.Vsync {
		if err := ctx.SetSwapInterval(1); err != nil {
			ctx.Release()
			return nil, fmt.Errorf("enable vsync: %w", err)
		}
	}
	return &Window{
		src:            src,
		ctx:            ctx,
		title:          settings.Title,
		exitOnEsc:      settings.ExitOnEsc,
		automaticClose: settings.AutomaticClose,
	}, nil
}

func newContext(backend ContextBackend, api glapi.Version) (GraphicsContext, error) {
	ctx, err := backend.NewContext(api)
	if err == nil {
		return ctx, nil
	}
	if ctx, err := backend.NewContext(glapi.OpenGLES(0, 0)); err == nil {
		return ctx, nil
	}
	return backend.NewContext(glapi.OpenGL(2, 1))
}

// Size returns the drawable area in logical units.
func (w *Window) Size() Size {
	phys := w.src.InnerSize()
	scale := w.src.ScaleFactor()
	return Size{
		Width:  float64(phys.X) / scale,
		Height: float64(phys.Y) / scale,
	}
}

// DrawSize returns the drawable area in physical pixels.
func (w *Window) DrawSize() image.Point {
	return w.src.InnerSize()
}

// ShouldClose reports whether closing the window was requested,
// either by the consumer, by the close button with AutomaticClose
// set, or by Escape with ExitOnEsc set.
func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

// SetShouldClose overrides the close flag.
func (w *Window) SetShouldClose(value bool) {
	w.shouldClose = value
}

// Title returns the current window title.
func (w *Window) Title() string {
	return w.title
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.src.SetTitle(title)
}

// ExitOnEsc reports whether Escape closes the window.
func (w *Window) ExitOnEsc() bool {
	return w.exitOnEsc
}

// SetExitOnEsc changes whether Escape closes the window.
func (w *Window) SetExitOnEsc(value bool) {
	w.exitOnEsc = value
}

// AutomaticClose reports whether a native close request sets the
// close flag.
func (w *Window) AutomaticClose() bool {
	return w.automaticClose
}

// SetAutomaticClose changes whether a native close request sets
// the close flag.
func (w *Window) SetAutomaticClose(value bool) {
	w.automaticClose = value
}

// SetCaptureCursor enables or disables cursor capture. There is
// no real pointer lock: capture hides the cursor and keeps it
// recentered while emitting only relative motion.
func (w *Window) SetCaptureCursor(capture bool) {
	w.capturing = capture
	w.src.SetCursorVisible(!capture)
	if capture {
		w.fakeCapture()
		// Re-arm seeding so the next move is absorbed as the
		// new reference point.
		w.hasLastCursor = false
	}
}

// Show makes the window visible.
func (w *Window) Show() {
	w.src.SetVisible(true)
}

// Hide makes the window invisible.
func (w *Window) Hide() {
	w.src.SetVisible(false)
}

// Position returns the window position in logical coordinates.
// It reports false when the platform cannot provide one.
func (w *Window) Position() (f64.Point, bool) {
	pos, err := w.src.OuterPosition()
	if err != nil {
		return f64.Point{}, false
	}
	return pos.Div(w.src.ScaleFactor()), true
}

// SetPosition moves the window. The position is in logical
// coordinates.
func (w *Window) SetPosition(pos f64.Point) {
	w.src.SetOuterPosition(pos)
}

// SetSize resizes the drawable area to width times height logical
// units.
func (w *Window) SetSize(width, height float64) {
	w.src.SetInnerSize(width, height)
}

// SwapBuffers presents the back buffer. Failures cost at most one
// frame and are ignored.
func (w *Window) SwapBuffers() {
	if err := w.ctx.SwapBuffers(); err != nil {
		logger.Debugf("swap buffers: %v", err)
	}
}

// MakeCurrent makes the GL context current on the calling
// goroutine's thread. Failures are ignored.
func (w *Window) MakeCurrent() {
	if err := w.ctx.MakeCurrent(); err != nil {
		logger.Debugf("make current: %v", err)
	}
}

// IsCurrent reports whether the GL context is current.
func (w *Window) IsCurrent() bool {
	return w.ctx.IsCurrent()
}

// ProcAddress resolves a GL function pointer by name.
func (w *Window) ProcAddress(name string) uintptr {
	return w.ctx.ProcAddress(name)
}

// logical converts a physical position to logical coordinates
// using the live scale factor.
func (w *Window) logical(pos f64.Point) f64.Point {
	return pos.Div(w.src.ScaleFactor())
}
