package vis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabTitleDefaultsToID(t *testing.T) {
	tab := newTab("overview", "")
	assert.Equal(t, "overview", tab.ID())
	assert.Equal(t, "overview", tab.Title())

	tab.SetTitle("Overview")
	assert.Equal(t, "Overview", tab.Title())

	// Empty titles never reset an existing one.
	tab.SetTitle("")
	assert.Equal(t, "Overview", tab.Title())
}

func TestTabScalarLastWriteWins(t *testing.T) {
	tab := newTab("overview", "")

	tab.UpdateValue("score", Int(42))
	tab.UpdateValue("score", Int(43))
	tab.UpdateValue("score", Text("n/a"))

	v, ok := tab.GetScalar("score")
	require.True(t, ok)
	assert.Equal(t, KindText, v.Kind())
	s, _ := v.Text()
	assert.Equal(t, "n/a", s)
}

func TestTabGraphGetOrCreate(t *testing.T) {
	tab := newTab("overview", "")

	g := tab.Graph("fps")
	require.NotNil(t, g)
	assert.Equal(t, DefaultGraphConfig(), g.Config())
	assert.Same(t, g, tab.Graph("fps"))
	assert.Same(t, g, tab.FindGraph("fps"))

	assert.Nil(t, tab.FindGraph("missing"))
}

func TestTabAddGraphReconfiguresOnChange(t *testing.T) {
	tab := newTab("overview", "")

	g := tab.AddGraph("fps", GraphConfig{MaxSamples: 8, AutoScale: true})
	g.AddSamples([]float64{1, 2, 3})

	// Same config: the graph and its history are untouched.
	same := tab.AddGraph("fps", GraphConfig{MaxSamples: 8, AutoScale: true})
	assert.Same(t, g, same)
	assert.Equal(t, []float64{1, 2, 3}, g.Samples())

	// Changed config: reconfigured in place, history re-trimmed.
	tab.AddGraph("fps", GraphConfig{MaxSamples: 2, AutoScale: true})
	assert.Equal(t, []float64{2, 3}, g.Samples())
}

func TestTabPushGraphSampleCreatesDefaultGraph(t *testing.T) {
	tab := newTab("overview", "")

	tab.PushGraphSample("fps", 60)
	tab.AddGraphSamples("fps", []float64{61, 62})

	assert.Equal(t, []float64{60, 61, 62}, tab.GetGraphSamples("fps"))
	assert.Equal(t, DefaultGraphConfig(), tab.FindGraph("fps").Config())
}

func TestTabGetGraphSamplesReturnsCopy(t *testing.T) {
	tab := newTab("overview", "")
	tab.PushGraphSample("fps", 1)

	got := tab.GetGraphSamples("fps")
	got[0] = 99

	assert.Equal(t, []float64{1}, tab.GetGraphSamples("fps"))
	assert.Nil(t, tab.GetGraphSamples("missing"))
}

func TestTabLookupMisses(t *testing.T) {
	tab := newTab("overview", "")

	_, ok := tab.GetScalar("missing")
	assert.False(t, ok)
	assert.Nil(t, tab.GetGraphSamples("missing"))
	_, ok = tab.GetStructure("missing")
	assert.False(t, ok)
}

func TestTabClear(t *testing.T) {
	tab := newTab("overview", "")
	tab.UpdateValue("score", Int(42))
	tab.PushGraphSample("fps", 60)
	tab.UpdateStructure("player", func(b *StructureBuilder) {
		b.Int("health", 100)
	})
	require.False(t, tab.Empty())

	tab.Clear()

	assert.True(t, tab.Empty())
	assert.Empty(t, tab.ScalarKeys())
	assert.Empty(t, tab.GraphKeys())
	assert.Empty(t, tab.StructureKeys())
}

func TestTabKeysAreSorted(t *testing.T) {
	tab := newTab("overview", "")
	tab.UpdateValue("zeta", Int(1))
	tab.UpdateValue("alpha", Int(2))
	tab.PushGraphSample("b", 0)
	tab.PushGraphSample("a", 0)

	assert.Equal(t, []string{"alpha", "zeta"}, tab.ScalarKeys())
	assert.Equal(t, []string{"a", "b"}, tab.GraphKeys())
}
