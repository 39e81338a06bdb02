// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app turns the raw event stream of a native windowing layer
into normalized input events with the blocking semantics a game
loop needs.

The native layer is an external collaborator behind the EventSource
interface; the GL context and surface are behind ContextBackend and
GraphicsContext. A Window owns both, together with the session state
used to normalize events: key-repeat suppression, close-on-escape,
and the fake cursor capture that synthesizes relative motion by
recentering the pointer every cycle.

Events are retrieved with PollEvent (non-blocking), WaitEvent
(blocking) and WaitEventTimeout. All three drain the native source
into an internal buffer up to an injected wake marker, so draining
terminates even though the source itself only blocks.

The Window is not safe for concurrent use; all methods must be
called from the goroutine that owns it.
*/
package app
