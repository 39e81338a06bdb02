// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the marker type for normalized input events.
package event

// Event is the marker interface for normalized input events
// delivered to the game loop.
type Event interface {
	ImplementsEvent()
}
