package service

import (
	"time"

	"dbgvis/internal/vis"
)

// FrameFunc is invoked by a Backend once per frame on the consumer
// goroutine, before the tree is rendered. delta is the time since the
// previous frame. A false return tells the backend to leave its loop.
type FrameFunc func(delta time.Duration) bool

// Backend is the rendering and platform collaborator driving the consumer
// loop. Run blocks on the calling goroutine until the frame function returns
// false, the user requests close, or initialization fails; it renders every
// visible window of the tree after each frame and must route the user's
// "window closed" action back into the window's visible flag.
//
// RequestClose may be called from any goroutine and wakes the loop promptly
// so a pending stop is observed within one frame interval.
type Backend interface {
	Run(root *vis.Visualizer, frame FrameFunc) error
	RequestClose()
}
