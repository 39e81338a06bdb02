// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintgl/glint/f64"
	"github.com/glintgl/glint/glapi"
)

// fakeSource is an in-memory EventSource driven by tests.
type fakeSource struct {
	ch    chan RawEvent
	scale float64
	inner image.Point

	outerPos f64.Point
	outerErr error

	mu            sync.Mutex
	closed        bool
	cursorWarps   []f64.Point
	cursorWarpErr error
	cursorVisible []bool
	titles        []string
	visible       []bool
	moves         []f64.Point
	resizes       [][2]float64
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		ch:    make(chan RawEvent, 256),
		scale: 1,
		inner: image.Pt(800, 600),
	}
}

func (s *fakeSource) push(evs ...RawEvent) {
	for _, ev := range evs {
		s.ch <- ev
	}
}

func (s *fakeSource) Recv() RawEvent { return <-s.ch }

func (s *fakeSource) Waker() Waker { return fakeWaker{s} }

type fakeWaker struct {
	s *fakeSource
}

func (w fakeWaker) Wake() error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	if w.s.closed {
		return errors.New("event source is gone")
	}
	w.s.ch <- RawWake{}
	return nil
}

func (s *fakeSource) ScaleFactor() float64   { return s.scale }
func (s *fakeSource) InnerSize() image.Point { return s.inner }

func (s *fakeSource) OuterPosition() (f64.Point, error) {
	return s.outerPos, s.outerErr
}

func (s *fakeSource) SetOuterPosition(pos f64.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moves = append(s.moves, pos)
}

func (s *fakeSource) SetInnerSize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resizes = append(s.resizes, [2]float64{width, height})
}

func (s *fakeSource) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles = append(s.titles, title)
}

func (s *fakeSource) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = append(s.visible, visible)
}

func (s *fakeSource) SetCursorVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorVisible = append(s.cursorVisible, visible)
}

func (s *fakeSource) SetCursorPosition(pos f64.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursorWarpErr != nil {
		return s.cursorWarpErr
	}
	s.cursorWarps = append(s.cursorWarps, pos)
	return nil
}

func (s *fakeSource) lastCursorWarp() (f64.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cursorWarps) == 0 {
		return f64.Point{}, false
	}
	return s.cursorWarps[len(s.cursorWarps)-1], true
}

// fakeContext records GraphicsContext calls.
type fakeContext struct {
	api glapi.Version

	resizes      []image.Point
	swaps        int
	swapErr      error
	swapInterval int
	intervalErr  error
	current      bool
	currentErr   error
	released     bool
}

func (c *fakeContext) Resize(size image.Point) { c.resizes = append(c.resizes, size) }

func (c *fakeContext) SwapBuffers() error {
	c.swaps++
	return c.swapErr
}

func (c *fakeContext) SetSwapInterval(interval int) error {
	if c.intervalErr != nil {
		return c.intervalErr
	}
	c.swapInterval = interval
	return nil
}

func (c *fakeContext) MakeCurrent() error {
	if c.currentErr != nil {
		return c.currentErr
	}
	c.current = true
	return nil
}

func (c *fakeContext) IsCurrent() bool { return c.current }

func (c *fakeContext) ProcAddress(name string) uintptr {
	if name == "" {
		return 0
	}
	return uintptr(len(name))
}

func (c *fakeContext) Release() { c.released = true }

// fakeBackend hands out fakeContexts, optionally rejecting some
// API versions.
type fakeBackend struct {
	reject func(glapi.Version) bool
	calls  []glapi.Version
	ctx    *fakeContext
}

func (b *fakeBackend) NewContext(api glapi.Version) (GraphicsContext, error) {
	b.calls = append(b.calls, api)
	if b.reject != nil && b.reject(api) {
		return nil, errors.New("no matching config")
	}
	if b.ctx == nil {
		b.ctx = &fakeContext{}
	}
	b.ctx.api = api
	return b.ctx, nil
}

func newTestWindow(t *testing.T, settings Settings) (*Window, *fakeSource, *fakeContext) {
	t.Helper()
	src := newFakeSource()
	backend := &fakeBackend{}
	w, err := NewWindow(settings, src, backend)
	require.NoError(t, err)
	return w, src, backend.ctx
}
