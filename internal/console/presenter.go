// Package console provides a headless render backend: a fixed-interval
// consumer loop with optional periodic text snapshots of the visualizer
// tree. It serves TTY-less environments and tests, mirroring what the TUI
// backend draws without owning a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fatih/color"

	"dbgvis/internal/service"
	"dbgvis/internal/vis"
)

// Options configure a Presenter.
type Options struct {
	// FrameInterval is the consumer loop cadence. Defaults to 50ms.
	FrameInterval time.Duration
	// SnapshotInterval is how often a tree snapshot is written. Zero
	// disables snapshots; the loop still drains the command queue.
	SnapshotInterval time.Duration
	// Out receives snapshots. Defaults to os.Stdout.
	Out io.Writer
}

// Presenter is a service.Backend that renders to a writer instead of a
// terminal.
type Presenter struct {
	opts           Options
	closeRequested atomic.Bool

	titleStyle *color.Color
	tabStyle   *color.Color
	keyStyle   *color.Color
	mutedStyle *color.Color
}

var _ service.Backend = (*Presenter)(nil)

// New creates a Presenter.
func New(opts Options) *Presenter {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 50 * time.Millisecond
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Presenter{
		opts:       opts,
		titleStyle: color.New(color.FgCyan, color.Bold),
		tabStyle:   color.New(color.FgYellow, color.Bold),
		keyStyle:   color.New(color.FgGreen),
		mutedStyle: color.New(color.FgHiBlack),
	}
}

// RequestClose asks the loop to exit at its next frame boundary.
func (p *Presenter) RequestClose() {
	p.closeRequested.Store(true)
}

// Run drives the consumer loop until the frame function or a close request
// ends it.
func (p *Presenter) Run(root *vis.Visualizer, frame service.FrameFunc) error {
	p.closeRequested.Store(false)
	ticker := time.NewTicker(p.opts.FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	var sinceSnapshot time.Duration
	for {
		if p.closeRequested.Load() {
			return nil
		}
		now := time.Now()
		delta := now.Sub(last)
		last = now

		if !frame(delta) {
			return nil
		}

		if p.opts.SnapshotInterval > 0 {
			sinceSnapshot += delta
			if sinceSnapshot >= p.opts.SnapshotInterval {
				sinceSnapshot = 0
				p.WriteSnapshot(root)
			}
		}

		<-ticker.C
	}
}

// WriteSnapshot renders every visible window of the tree as indented text.
func (p *Presenter) WriteSnapshot(root *vis.Visualizer) {
	if root.Visible() {
		p.writeWindow(root, 0)
	}
	p.writeTiles(root, 0)
}

func (p *Presenter) writeTiles(v *vis.Visualizer, depth int) {
	for _, tile := range v.Tiles() {
		if tile.Visible() {
			p.writeWindow(tile, depth)
		}
		p.writeTiles(tile, depth+1)
	}
}

func (p *Presenter) writeWindow(v *vis.Visualizer, depth int) {
	indent := strings.Repeat("  ", depth)
	p.titleStyle.Fprintf(p.opts.Out, "%s== %s ==\n", indent, v.Title())
	for _, tab := range v.Tabs() {
		p.writeTab(tab, depth+1)
	}
}

func (p *Presenter) writeTab(t *vis.Tab, depth int) {
	indent := strings.Repeat("  ", depth)
	if t.Empty() {
		return
	}
	p.tabStyle.Fprintf(p.opts.Out, "%s[%s]\n", indent, t.Title())
	inner := indent + "  "
	for _, key := range t.ScalarKeys() {
		value, _ := t.GetScalar(key)
		p.keyStyle.Fprintf(p.opts.Out, "%s%s", inner, key)
		fmt.Fprintf(p.opts.Out, ": %s\n", value)
	}
	for _, key := range t.GraphKeys() {
		g := t.FindGraph(key)
		min, max := g.Bounds()
		p.keyStyle.Fprintf(p.opts.Out, "%s%s", inner, key)
		fmt.Fprintf(p.opts.Out, ": latest=%.3f samples=%d range=[%.3f, %.3f]\n",
			g.Latest(), g.Len(), min, max)
	}
	for _, key := range t.StructureKeys() {
		node, ok := t.GetStructure(key)
		if !ok {
			continue
		}
		p.keyStyle.Fprintf(p.opts.Out, "%s%s", inner, key)
		fmt.Fprintln(p.opts.Out, ":")
		for _, child := range node.Children {
			p.writeStructureNode(child, depth+2)
		}
	}
}

func (p *Presenter) writeStructureNode(node vis.StructureNode, depth int) {
	indent := strings.Repeat("  ", depth)
	switch {
	case len(node.Children) > 0:
		p.mutedStyle.Fprintf(p.opts.Out, "%s%s\n", indent, node.Label)
		if node.Value.IsSet() {
			fmt.Fprintf(p.opts.Out, "%s  %s\n", indent, node.Value)
		}
		for _, child := range node.Children {
			p.writeStructureNode(child, depth+1)
		}
	case node.Value.IsSet():
		fmt.Fprintf(p.opts.Out, "%s%s: %s\n", indent, node.Label, node.Value)
	default:
		fmt.Fprintf(p.opts.Out, "%s%s\n", indent, node.Label)
	}
}
