package vis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVisualizerHasDefaultTab(t *testing.T) {
	v := New()

	assert.True(t, v.Visible())
	assert.Equal(t, []string{DefaultTabID}, v.TabIDs())
	assert.Same(t, v.DefaultTab(), v.Tab(DefaultTabID))
}

func TestVisualizerTabGetOrCreate(t *testing.T) {
	v := New()

	perf := v.AddTab("perf", "Performance")
	perf.UpdateValue("fps", Float(60))

	// Get-or-create with a new title updates the title, not the contents.
	again := v.AddTab("perf", "Perf")
	assert.Same(t, perf, again)
	assert.Equal(t, "Perf", again.Title())
	_, ok := again.GetScalar("fps")
	assert.True(t, ok)

	// Plain Tab access never disturbs the title.
	assert.Same(t, perf, v.Tab("perf"))
	assert.Equal(t, "Perf", perf.Title())

	assert.Nil(t, v.FindTab("missing"))
}

func TestVisualizerDefaultTabIsProtected(t *testing.T) {
	v := New()
	v.AddTab("perf", "")

	assert.False(t, v.RemoveTab(DefaultTabID))
	assert.True(t, v.RemoveTab("perf"))
	assert.False(t, v.RemoveTab("perf"))

	assert.Equal(t, []string{DefaultTabID}, v.TabIDs())
}

func TestVisualizerTabInsertionOrder(t *testing.T) {
	v := New()
	v.Tab("zeta")
	v.Tab("alpha")
	v.Tab("mid")

	assert.Equal(t, []string{DefaultTabID, "zeta", "alpha", "mid"}, v.TabIDs())
	tabs := v.Tabs()
	require.Len(t, tabs, 4)
	assert.Equal(t, "zeta", tabs[1].ID())
}

func TestVisualizerTiles(t *testing.T) {
	v := New()

	ai := v.AddTile("ai", "AI Debug")
	assert.Equal(t, "AI Debug", ai.Title())
	assert.True(t, ai.Visible())

	// Untitled tiles are titled by their id.
	net := v.Tile("net")
	assert.Equal(t, "net", net.Title())

	assert.Same(t, ai, v.FindTile("ai"))
	assert.Same(t, ai, v.AddTile("ai", "AI"))
	assert.Equal(t, "AI", ai.Title())

	assert.Equal(t, []string{"ai", "net"}, v.TileIDs())
	require.True(t, v.RemoveTile("ai"))
	assert.False(t, v.RemoveTile("ai"))
	assert.Nil(t, v.FindTile("ai"))
	assert.Equal(t, []string{"net"}, v.TileIDs())
}

func TestVisualizerClearIsRecursive(t *testing.T) {
	v := New()
	v.UpdateValue("score", Int(1))
	child := v.Tile("ai")
	child.Tab("state").UpdateValue("mode", Text("idle"))

	v.Clear()

	_, ok := v.GetScalar("score")
	assert.False(t, ok)
	_, ok = child.Tab("state").GetScalar("mode")
	assert.False(t, ok)

	// Identity is retained: tabs and tiles survive a clear.
	assert.Equal(t, []string{"ai"}, v.TileIDs())
	assert.Contains(t, child.TabIDs(), "state")
}

func TestVisualizerWindowFlags(t *testing.T) {
	v := New()
	assert.Equal(t, WindowFlagNone, v.WindowFlags())

	v.SetWindowFlags(WindowFlagBorderless | WindowFlagNoTabStrip)
	assert.NotZero(t, v.WindowFlags()&WindowFlagBorderless)
	assert.NotZero(t, v.WindowFlags()&WindowFlagNoTabStrip)
}

// End-to-end walk over one window: scalars, a bounded graph, a structure
// snapshot and a child tile.
func TestVisualizerScenario(t *testing.T) {
	v := New()

	v.UpdateValue("score", Int(42))
	got, ok := v.GetScalar("score")
	require.True(t, ok)
	i, _ := got.Int()
	assert.Equal(t, int64(42), i)

	v.DefaultTab().AddGraph("fps", GraphConfig{MaxSamples: 4, AutoScale: true})
	for _, s := range []float64{60, 58, 59, 61, 62} {
		v.PushGraphSample("fps", s)
	}
	assert.Equal(t, []float64{58, 59, 61, 62}, v.GetGraphSamples("fps"))

	v.UpdateStructure("player", func(b *StructureBuilder) {
		b.Int("health", 97)
		b.Int("mana", 44)
		pos := b.Nested("position")
		pos.Float("x", 1)
		pos.Float("y", 2)
		pos.Float("z", 3)
	})
	root, ok := v.GetStructure("player")
	require.True(t, ok)
	assert.Len(t, root.Children, 3)

	ai := v.AddTile("ai", "AI Debug")
	ai.Tab("state").UpdateValue("mode", Text("tracking"))
	assert.Equal(t, []string{"ai"}, v.TileIDs())

	require.True(t, v.RemoveTile("ai"))
	assert.Empty(t, v.TileIDs())
}
