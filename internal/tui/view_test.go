package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbgvis/internal/vis"
)

func TestSparkline(t *testing.T) {
	assert.Empty(t, sparkline(nil, 0, 1, 10))
	assert.Empty(t, sparkline([]float64{1}, 0, 1, 0))

	// Endpoints map onto the lowest and highest block runes.
	line := sparkline([]float64{0, 1}, 0, 1, 10)
	runes := []rune(line)
	require.Len(t, runes, 2)
	assert.Equal(t, sparkLevels[0], runes[0])
	assert.Equal(t, sparkLevels[len(sparkLevels)-1], runes[1])

	// Only the trailing samples fit a narrow plot.
	line = sparkline([]float64{0, 0, 0, 1, 1}, 0, 1, 2)
	runes = []rune(line)
	require.Len(t, runes, 2)
	assert.Equal(t, sparkLevels[len(sparkLevels)-1], runes[0])

	// Samples outside manual bounds clamp to the edge runes.
	line = sparkline([]float64{-5, 10}, 0, 1, 10)
	runes = []rune(line)
	assert.Equal(t, sparkLevels[0], runes[0])
	assert.Equal(t, sparkLevels[len(sparkLevels)-1], runes[1])

	// A zero span never divides by zero.
	assert.NotEmpty(t, sparkline([]float64{3, 3}, 3, 3, 10))
}

func telemetryTab() *vis.Tab {
	v := vis.New()
	tab := v.AddTab("telemetry", "Telemetry")
	tab.UpdateValue("score", vis.Int(42))
	tab.UpdateValue("mode", vis.Text("combat"))
	tab.AddGraph("fps", vis.GraphConfig{MaxSamples: 4, AutoScale: true})
	tab.AddGraphSamples("fps", []float64{60, 58, 59, 61, 62})
	tab.UpdateStructure("player", func(b *vis.StructureBuilder) {
		b.Int("health", 97)
		pos := b.Nested("position")
		pos.Float("x", 1.5)
	})
	return tab
}

func TestRenderTab(t *testing.T) {
	out := renderTab(telemetryTab(), 60)

	assert.Contains(t, out, "score")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "mode")
	assert.Contains(t, out, "combat")
	assert.Contains(t, out, "fps")
	assert.Contains(t, out, "62.000")
	assert.Contains(t, out, "▾ player")
	assert.Contains(t, out, "health: 97")
	assert.Contains(t, out, "▸ position")
	assert.Contains(t, out, "x: 1.500")
}

func TestRenderTabEmpty(t *testing.T) {
	v := vis.New()
	out := renderTab(v.Tab("empty"), 60)
	assert.Contains(t, out, "no data yet")
}

func TestRenderWindowBorderless(t *testing.T) {
	root := vis.New()
	w := root.AddTile("Main", "Game Debug")
	w.UpdateValue("score", vis.Int(1))

	m := newModel(root, nil, 0)
	ref := windowRef{path: "Main", vis: w}

	bordered := m.renderWindow(ref, false, 40)
	assert.Contains(t, bordered, "╭")

	w.SetWindowFlags(vis.WindowFlagBorderless)
	borderless := m.renderWindow(ref, false, 40)
	assert.NotContains(t, borderless, "╭")
	assert.Contains(t, borderless, "Game Debug")
}

func TestRenderWindowTabStrip(t *testing.T) {
	root := vis.New()
	w := root.AddTile("Main", "Game Debug")
	w.AddTab("perf", "Perf")

	m := newModel(root, nil, 0)
	out := m.renderWindow(windowRef{path: "Main", vis: w}, true, 40)

	assert.Contains(t, out, "overview")
	assert.Contains(t, out, "Perf")

	// With the flag set and only the default tab left, the strip is hidden.
	w.RemoveTab("perf")
	w.SetWindowFlags(vis.WindowFlagNoTabStrip)
	out = m.renderWindow(windowRef{path: "Main", vis: w}, true, 40)
	assert.NotContains(t, out, "overview")
}

func TestTabAsText(t *testing.T) {
	out := tabAsText(telemetryTab())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Telemetry", lines[0])
	assert.Contains(t, out, "mode: combat\n")
	assert.Contains(t, out, "score: 42\n")
	assert.Contains(t, out, "fps: latest=62.000 samples=4\n")
	assert.Contains(t, out, "player\n")
	assert.Contains(t, out, "  health: 97\n")
	assert.Contains(t, out, "  position\n")
	assert.Contains(t, out, "    x: 1.500\n")
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newModel(vis.New(), nil, 0)
	assert.Contains(t, m.View(), "starting")
}

func TestViewRendersAllVisibleWindows(t *testing.T) {
	root := vis.New()
	root.SetVisible(false)
	root.AddTile("Main", "Game Debug").UpdateValue("score", vis.Int(42))
	root.AddTile("net", "Network")

	m := newModel(root, nil, 0)
	m.width = 80
	m.height = 24

	out := m.View()
	assert.Contains(t, out, "Game Debug")
	assert.Contains(t, out, "Network")
	assert.Contains(t, out, "q: quit")
}

func TestViewWithNoVisibleWindows(t *testing.T) {
	root := vis.New()
	root.SetVisible(false)

	m := newModel(root, nil, 0)
	m.width = 80

	assert.Contains(t, m.View(), "no visible windows")
}
