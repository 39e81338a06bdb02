// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"time"

	"github.com/glintgl/glint/f64"
	"github.com/glintgl/glint/io/event"
	"github.com/glintgl/glint/io/input"
	"github.com/glintgl/glint/io/key"
)

// PollEvent returns the next normalized input event without
// blocking. It reports false when no event is available.
func (w *Window) PollEvent() (event.Event, bool) {
	// Loop to skip events that normalize to nothing.
	for {
		if e, ok := w.prePopEvent(); ok {
			return e, true
		}

		if len(w.events) == 0 {
			w.pump()
		}
		ev, present := w.popFront()

		if w.capturing && !w.hasLastCursor {
			if mv, ok := ev.(RawCursorMoved); ok {
				// Absorb this move: cursor positions are not
				// emitted while capturing, the position only
				// seeds the reference for relative motion.
				w.lastCursor = w.logical(mv.Position)
				w.hasLastCursor = true

				if len(w.events) == 0 {
					w.pump()
				}
				ev, present = w.popFront()
			}
		}

		e, unknown := w.classify(ev, present)
		if unknown {
			continue
		}
		if e == nil {
			return nil, false
		}
		return e, true
	}
}

// WaitEvent blocks until a normalized input event is available
// and returns it.
func (w *Window) WaitEvent() event.Event {
	// First check for and handle any pending events.
	if e, ok := w.PollEvent(); ok {
		return e
	}
	for {
		w.events = append(w.events, w.src.Recv())
		if e, ok := w.PollEvent(); ok {
			return e
		}
	}
}

// WaitEventTimeout blocks until a normalized input event is
// available, but no longer than roughly timeout. It reports false
// when the wait expired without an event.
func (w *Window) WaitEventTimeout(timeout time.Duration) (event.Event, bool) {
	// First check for and handle any pending events.
	if e, ok := w.PollEvent(); ok {
		return e, true
	}
	// Schedule a wake-up for when time is out. The timer is
	// detached on purpose; a late wake merely primes the next
	// drain.
	waker := w.src.Waker()
	time.AfterFunc(timeout, func() {
		if err := waker.Wake(); err != nil {
			logger.Debugf("timeout wake: %v", err)
		}
	})
	w.events = append(w.events, w.src.Recv())
	return w.PollEvent()
}

// pump drains everything currently queued in the native source
// into the internal buffer. A wake marker is injected first so
// the drain terminates even when the source is idle.
func (w *Window) pump() {
	if err := w.src.Waker().Wake(); err != nil {
		logger.Debugf("pump wake: %v", err)
		return
	}
	for {
		ev := w.src.Recv()
		w.events = append(w.events, ev)
		if _, ok := ev.(RawWake); ok {
			return
		}
	}
}

func (w *Window) popFront() (RawEvent, bool) {
	if len(w.events) == 0 {
		return nil, false
	}
	ev := w.events[0]
	copy(w.events, w.events[1:])
	w.events = w.events[:len(w.events)-1]
	return ev, true
}

// prePopEvent returns a synthesized event that must be delivered
// before the next raw event is examined.
func (w *Window) prePopEvent() (event.Event, bool) {
	// Check for a pending cursor move.
	if w.hasPendingCursor {
		w.hasPendingCursor = false
		return input.MoveEvent{Motion: input.MouseCursor(w.pendingCursor)}, true
	}
	// Check for pending relative motion.
	if w.hasRelMotion {
		w.hasRelMotion = false
		return input.MoveEvent{Motion: input.MouseRelative(w.relMotion)}, true
	}
	return nil, false
}

// classify converts one raw event into at most one normalized
// event, updating window state as needed.
//
// unknown is reported when the event contributes nothing; the
// caller must then examine the next raw event instead of treating
// the poll as exhausted. When unknown is true the event is nil.
func (w *Window) classify(ev RawEvent, present bool) (e event.Event, unknown bool) {
	if !present {
		if w.capturing {
			w.fakeCapture()
		}
		return nil, false
	}
	switch ev := ev.(type) {
	case RawResized:
		size := w.Size()
		// Some platforms require the surface to resize with the
		// window. A zero dimension would violate the surface's
		// precondition, so such sizes are skipped.
		if ev.Size.X > 0 && ev.Size.Y > 0 {
			w.ctx.Resize(ev.Size)
		}
		return input.ResizeEvent{
			WindowSize: [2]float64{size.Width, size.Height},
			DrawSize:   ev.Size,
		}, false
	case RawChar:
		var text string
		switch ev.Char {
		// Control characters yield an empty Text event instead
		// of no event.
		case '\u007f', '\u001b', '\b', '\r', '\n', '\t':
		default:
			text = string(ev.Char)
		}
		return input.TextEvent{Text: text}, false
	case RawFocused:
		return input.FocusEvent{Focused: ev.Focused}, false
	case RawKey:
		return w.classifyKey(ev)
	case RawTouch:
		var phase input.TouchPhase
		switch ev.Phase {
		case TouchStarted:
			phase = input.TouchStart
		case TouchMoved:
			phase = input.TouchMove
		case TouchEnded:
			phase = input.TouchEnd
		case TouchCancelled:
			phase = input.TouchCancel
		}
		return input.MoveEvent{Motion: input.Touch{
			Device:   0,
			ID:       ev.ID,
			Position: w.logical(ev.Position),
			Pressure: 1.0,
			Phase:    phase,
		}}, false
	case RawCursorMoved:
		return w.classifyCursorMoved(ev), false
	case RawCursorEntered:
		return input.CursorEvent{Entered: true}, false
	case RawCursorLeft:
		return input.CursorEvent{Entered: false}, false
	case RawScrollPixels:
		delta := w.logical(ev.Delta)
		return input.MoveEvent{Motion: input.MouseScroll(delta)}, false
	case RawScrollLines:
		return input.MoveEvent{Motion: input.MouseScroll(f64.Pt(ev.DX, ev.DY))}, false
	case RawMouseButton:
		state := input.Release
		if ev.Pressed {
			state = input.Press
		}
		return input.ButtonEvent{
			State:  state,
			Button: input.Mouse(MapMouse(ev.Button)),
		}, false
	case RawHoveredFile:
		return input.FileDragEvent{Kind: input.DragHover, Path: ev.Path}, false
	case RawDroppedFile:
		return input.FileDragEvent{Kind: input.DragDrop, Path: ev.Path}, false
	case RawHoverCancelled:
		return input.FileDragEvent{Kind: input.DragCancel}, false
	case RawCloseRequested:
		if w.automaticClose {
			w.shouldClose = true
		}
		return input.CloseEvent{}, false
	case RawWake:
		return nil, false
	default:
		return nil, true
	}
}

func (w *Window) classifyKey(ev RawKey) (event.Event, bool) {
	k := MapKey(ev.Code)
	if !ev.Pressed {
		if w.hasLastKey && w.lastKey == k {
			w.hasLastKey = false
		}
		return input.ButtonEvent{
			State:  input.Release,
			Button: input.Keyboard{Key: k, Scancode: int32(ev.Scancode)},
		}, false
	}
	if w.exitOnEsc && k == key.Escape {
		w.shouldClose = true
	}
	// Ignore OS key repeat: a second press of the held key
	// contributes nothing.
	if w.hasLastKey && w.lastKey == k {
		return nil, true
	}
	w.lastKey, w.hasLastKey = k, true
	return input.ButtonEvent{
		State:  input.Press,
		Button: input.Keyboard{Key: k, Scancode: int32(ev.Scancode)},
	}, false
}

func (w *Window) classifyCursorMoved(ev RawCursorMoved) event.Event {
	pos := w.logical(ev.Position)
	if w.hasLastCursor {
		delta := pos.Sub(w.lastCursor)
		if w.capturing {
			w.lastCursor = pos
			w.fakeCapture()
			// Skip normal mouse movement and emit relative
			// motion only.
			return input.MoveEvent{Motion: input.MouseRelative(delta)}
		}
		// Send relative mouse movement next time.
		w.relMotion, w.hasRelMotion = delta, true
	}
	w.lastCursor, w.hasLastCursor = pos, true
	return input.MoveEvent{Motion: input.MouseCursor(pos)}
}

// fakeCapture recenters the pointer to fake capturing of the
// cursor. Recenter failures leave the reference point unchanged.
func (w *Window) fakeCapture() {
	if !w.hasLastCursor {
		return
	}
	size := w.Size()
	center := f64.Pt(size.Width/2, size.Height/2)
	delta := center.Sub(w.lastCursor)
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	if err := w.src.SetCursorPosition(center); err != nil {
		logger.Debugf("cursor recenter: %v", err)
		return
	}
	w.lastCursor = center
}
