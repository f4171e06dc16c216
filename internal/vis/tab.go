package vis

import "sort"

// Tab is a named grouping of scalars, graphs and structures inside a
// Visualizer window. Tabs are created lazily on first access and their ids
// are unique within the owning Visualizer.
type Tab struct {
	id         string
	title      string
	scalars    map[string]ScalarValue
	graphs     map[string]*Graph
	structures map[string]*StructureEntry
}

func newTab(id, title string) *Tab {
	if title == "" {
		title = id
	}
	return &Tab{
		id:         id,
		title:      title,
		scalars:    make(map[string]ScalarValue),
		graphs:     make(map[string]*Graph),
		structures: make(map[string]*StructureEntry),
	}
}

// ID returns the tab's immutable identifier.
func (t *Tab) ID() string { return t.id }

// Title returns the display title.
func (t *Tab) Title() string { return t.title }

// SetTitle updates the display title. Empty titles are ignored so that
// repeat get-or-create calls without a title never reset an existing one.
func (t *Tab) SetTitle(title string) {
	if title != "" {
		t.title = title
	}
}

// UpdateValue stores a scalar under key. Last write wins.
func (t *Tab) UpdateValue(key string, value ScalarValue) {
	t.scalars[key] = value
}

// Graph returns the graph stored under key, creating it with the default
// configuration when absent.
func (t *Tab) Graph(key string) *Graph {
	if g, ok := t.graphs[key]; ok {
		return g
	}
	g := NewGraph(DefaultGraphConfig())
	t.graphs[key] = g
	return g
}

// AddGraph returns the graph stored under key, creating it with the given
// configuration. An existing graph is reconfigured when the supplied
// configuration differs from its current one.
func (t *Tab) AddGraph(key string, config GraphConfig) *Graph {
	if g, ok := t.graphs[key]; ok {
		if g.Config() != config {
			g.Configure(config)
		}
		return g
	}
	g := NewGraph(config)
	t.graphs[key] = g
	return g
}

// FindGraph returns the graph stored under key, or nil.
func (t *Tab) FindGraph(key string) *Graph { return t.graphs[key] }

// PushGraphSample pushes one sample onto the graph under key, creating it
// with the default configuration when absent.
func (t *Tab) PushGraphSample(key string, sample float64) {
	t.Graph(key).Push(sample)
}

// AddGraphSamples pushes samples in order onto the graph under key, creating
// it with the default configuration when absent.
func (t *Tab) AddGraphSamples(key string, samples []float64) {
	t.Graph(key).AddSamples(samples)
}

// UpdateStructure rebuilds the structure stored under key. A fresh child
// list is allocated, build runs synchronously against a builder bound to it,
// and the result replaces any prior content wholesale. A nil or empty build
// leaves the entry without content.
func (t *Tab) UpdateStructure(key string, build func(*StructureBuilder)) {
	entry, ok := t.structures[key]
	if !ok {
		entry = &StructureEntry{}
		t.structures[key] = entry
	}
	entry.Root = StructureNode{Label: key}
	if build != nil {
		build(NewStructureBuilder(&entry.Root.Children))
	}
	entry.HasContent = len(entry.Root.Children) > 0
}

// GetScalar returns the scalar stored under key.
func (t *Tab) GetScalar(key string) (ScalarValue, bool) {
	v, ok := t.scalars[key]
	return v, ok
}

// GetGraphSamples returns a copy of the history of the graph under key, or
// nil when no such graph exists.
func (t *Tab) GetGraphSamples(key string) []float64 {
	g, ok := t.graphs[key]
	if !ok {
		return nil
	}
	return append([]float64(nil), g.Samples()...)
}

// GetStructure returns the root of the structure under key. Entries whose
// last rebuild produced no children read as absent.
func (t *Tab) GetStructure(key string) (StructureNode, bool) {
	entry, ok := t.structures[key]
	if !ok || !entry.HasContent {
		return StructureNode{}, false
	}
	return entry.Root, true
}

// Clear empties all scalars, graphs and structures. The tab itself is
// retained.
func (t *Tab) Clear() {
	t.scalars = make(map[string]ScalarValue)
	t.graphs = make(map[string]*Graph)
	t.structures = make(map[string]*StructureEntry)
}

// Empty reports whether the tab holds no data at all.
func (t *Tab) Empty() bool {
	return len(t.scalars) == 0 && len(t.graphs) == 0 && len(t.structures) == 0
}

// ScalarKeys returns the scalar keys in sorted order.
func (t *Tab) ScalarKeys() []string { return sortedKeys(t.scalars) }

// GraphKeys returns the graph keys in sorted order.
func (t *Tab) GraphKeys() []string { return sortedKeys(t.graphs) }

// StructureKeys returns the keys of structures with content, sorted.
func (t *Tab) StructureKeys() []string {
	keys := make([]string, 0, len(t.structures))
	for key, entry := range t.structures {
		if entry.HasContent {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
