package console

import (
	"bytes"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbgvis/internal/vis"
)

func init() {
	// Snapshot assertions compare plain text.
	color.NoColor = true
}

func demoTree() *vis.Visualizer {
	root := vis.New()
	root.SetVisible(false)

	main := root.AddTile("Main", "Game Debug")
	tab := main.Tab("Telemetry")
	tab.UpdateValue("score", vis.Int(42))
	tab.UpdateValue("mode", vis.Text("combat"))
	tab.AddGraph("fps", vis.GraphConfig{MaxSamples: 4, AutoScale: true})
	tab.AddGraphSamples("fps", []float64{60, 58, 59, 61, 62})
	tab.UpdateStructure("player", func(b *vis.StructureBuilder) {
		b.Int("health", 97)
		pos := b.Nested("position")
		pos.Float("x", 1.5)
	})

	ai := main.AddTile("ai", "AI Debug")
	ai.Tab("state").UpdateValue("state", vis.Text("tracking"))
	return root
}

func TestWriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	p := New(Options{Out: &buf})

	p.WriteSnapshot(demoTree())
	out := buf.String()

	// The hidden root container is not rendered; its visible tiles are.
	assert.NotContains(t, out, "== Debug Window ==")
	assert.Contains(t, out, "== Game Debug ==")
	assert.Contains(t, out, "== AI Debug ==")

	assert.Contains(t, out, "[Telemetry]")
	assert.Contains(t, out, "score: 42")
	assert.Contains(t, out, "mode: combat")
	assert.Contains(t, out, "fps: latest=62.000 samples=4 range=[58.000, 62.000]")
	assert.Contains(t, out, "player:")
	assert.Contains(t, out, "health: 97")
	assert.Contains(t, out, "position")
	assert.Contains(t, out, "x: 1.500")
	assert.Contains(t, out, "state: tracking")
}

func TestWriteSnapshotSkipsEmptyTabs(t *testing.T) {
	var buf bytes.Buffer
	p := New(Options{Out: &buf})

	root := vis.New()
	root.Tab("empty")
	root.UpdateValue("score", vis.Int(1))

	p.WriteSnapshot(root)
	out := buf.String()

	assert.Contains(t, out, "[overview]")
	assert.NotContains(t, out, "[empty]")
}

func TestWriteSnapshotHiddenWindowStillShowsVisibleChildren(t *testing.T) {
	var buf bytes.Buffer
	p := New(Options{Out: &buf})

	root := vis.New()
	root.SetVisible(false)
	hidden := root.AddTile("hidden", "Hidden")
	hidden.SetVisible(false)
	hidden.UpdateValue("x", vis.Int(1))
	child := hidden.AddTile("child", "Child")
	child.UpdateValue("y", vis.Int(2))

	p.WriteSnapshot(root)
	out := buf.String()

	assert.NotContains(t, out, "== Hidden ==")
	assert.Contains(t, out, "== Child ==")
}

func TestRunStopsOnCloseRequest(t *testing.T) {
	p := New(Options{FrameInterval: time.Millisecond})
	root := vis.New()

	var frames atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- p.Run(root, func(delta time.Duration) bool {
			frames.Add(1)
			return true
		})
	}()

	require.Eventually(t, func() bool {
		return frames.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)
	p.RequestClose()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after RequestClose")
	}
}

func TestRunStopsWhenFrameReturnsFalse(t *testing.T) {
	p := New(Options{FrameInterval: time.Millisecond})
	root := vis.New()

	var frames int
	err := p.Run(root, func(delta time.Duration) bool {
		frames++
		return frames < 3
	})

	require.NoError(t, err)
	assert.Equal(t, 3, frames)
}

func TestRunWritesPeriodicSnapshots(t *testing.T) {
	var buf bytes.Buffer
	p := New(Options{
		FrameInterval:    time.Millisecond,
		SnapshotInterval: 2 * time.Millisecond,
		Out:              &buf,
	})
	root := vis.New()
	root.UpdateValue("score", vis.Int(42))

	var frames int
	err := p.Run(root, func(delta time.Duration) bool {
		frames++
		return frames < 50
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "score: 42")
}
