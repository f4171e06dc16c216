// Package tui renders the visualizer tree in the terminal with bubbletea.
// The bubbletea program's event loop is the consumer goroutine: a frame tick
// message drives the service's drain-and-apply step, key handling feeds
// window-close and navigation actions back into the tree, and View draws
// every visible window tile.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dbgvis/internal/service"
	"dbgvis/internal/vis"
)

// Options configure the terminal backend.
type Options struct {
	// FrameInterval is the tick cadence driving queue drains and redraws.
	// Defaults to 33ms (roughly 30 fps).
	FrameInterval time.Duration
}

// Backend implements service.Backend on top of a bubbletea program.
type Backend struct {
	opts Options

	mu   sync.Mutex
	prog *tea.Program
}

var _ service.Backend = (*Backend)(nil)

// New creates a terminal backend.
func New(opts Options) *Backend {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 33 * time.Millisecond
	}
	return &Backend{opts: opts}
}

// Run owns the terminal until the program quits. A nil error means the user
// or the service requested close; an error means the terminal could not be
// set up, which the service treats as an initialization failure.
func (b *Backend) Run(root *vis.Visualizer, frame service.FrameFunc) error {
	p := tea.NewProgram(newModel(root, frame, b.opts.FrameInterval), tea.WithAltScreen())

	b.mu.Lock()
	b.prog = p
	b.mu.Unlock()

	_, err := p.Run()

	b.mu.Lock()
	b.prog = nil
	b.mu.Unlock()
	return err
}

// RequestClose wakes the program so a pending stop is observed promptly.
// Safe from any goroutine and before Run; in that case the next frame tick
// observes the service's close flag instead.
func (b *Backend) RequestClose() {
	b.mu.Lock()
	p := b.prog
	b.mu.Unlock()
	if p != nil {
		p.Send(closeRequestMsg{})
	}
}
