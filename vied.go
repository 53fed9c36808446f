// Package vied defines the contract between the terminal event loop and an
// editor application. The event loop itself — reading input, driving
// resize, calling paint and flushing frames — is intentionally out of
// scope; see spec.md's Non-goals. This package exists only so a caller
// assembling one from the terminal/render/ansi packages has a named shape
// to implement against.
package vied

import "github.com/lixenwraith/vied/render"

// Application is what an event loop drives each iteration. Grounded on
// spec.md §6's App contract (on_event/on_resize/paint/cursor).
type Application interface {
	// OnEvent handles one input occurrence and reports whether the loop
	// should continue or quit.
	OnEvent(event any) LoopAction

	// OnResize is advisory: the loop has already reshaped the framebuffer
	// by the time this is called.
	OnResize(width, height int)

	// Paint fills the framebuffer for the current frame.
	Paint(frame *render.FrameBuffer)

	// Cursor reports the hardware cursor's position and shape for the
	// current frame, or ok=false to hide it.
	Cursor() (pos CursorPosition, shape CursorShape, ok bool)
}

// LoopAction is an Application's verdict after handling one event.
type LoopAction uint8

const (
	Continue LoopAction = iota
	Quit
)

// CursorPosition is a 0-indexed screen cell.
type CursorPosition struct {
	X, Y int
}

// CursorShape selects the hardware cursor's on-screen appearance, mirroring
// ansi.CursorShape so callers never need to import ansi just to implement
// Application.
type CursorShape uint8

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeBlockBlink
	CursorShapeUnderline
	CursorShapeUnderlineBlink
	CursorShapeBar
	CursorShapeBarBlink
)

// PaintFunc adapts a plain function to Application's Paint method for
// callers that don't need the rest of the interface (e.g. in tests).
type PaintFunc func(frame *render.FrameBuffer)

// Paint calls f with frame.
func (f PaintFunc) Paint(frame *render.FrameBuffer) { f(frame) }
