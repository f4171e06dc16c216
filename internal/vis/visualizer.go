package vis

// DefaultTabID is the id of the protected tab every Visualizer starts with.
const DefaultTabID = "overview"

// WindowFlag is a bitmask of rendering hints a backend may honor.
type WindowFlag uint8

const (
	WindowFlagNone WindowFlag = 0
	// WindowFlagBorderless asks the backend to skip the window frame.
	WindowFlagBorderless WindowFlag = 1 << 0
	// WindowFlagNoTabStrip hides the tab strip when only the default tab exists.
	WindowFlagNoTabStrip WindowFlag = 1 << 1
)

// Visualizer is one window of telemetry: an ordered set of owned Tabs plus
// an ordered set of owned child Visualizers ("window tiles"), nested to any
// depth. Ownership is a strict tree; removing a tile discards its entire
// subtree. After handoff to a render service, only the consumer goroutine
// may touch a Visualizer.
type Visualizer struct {
	title   string
	flags   WindowFlag
	visible bool
	tabs    []*Tab
	tiles   []tileEntry
}

type tileEntry struct {
	id  string
	vis *Visualizer
}

// New creates a visible Visualizer with the protected default tab.
func New() *Visualizer {
	v := &Visualizer{
		title:   "Debug Window",
		visible: true,
	}
	v.Tab(DefaultTabID)
	return v
}

// Title returns the window title.
func (v *Visualizer) Title() string { return v.title }

// SetTitle replaces the window title.
func (v *Visualizer) SetTitle(title string) { v.title = title }

// Visible reports whether the window should be drawn.
func (v *Visualizer) Visible() bool { return v.visible }

// SetVisible toggles whether the window should be drawn. Backends route the
// user's "window closed" action back through here.
func (v *Visualizer) SetVisible(visible bool) { v.visible = visible }

// WindowFlags returns the rendering hints.
func (v *Visualizer) WindowFlags() WindowFlag { return v.flags }

// SetWindowFlags replaces the rendering hints.
func (v *Visualizer) SetWindowFlags(flags WindowFlag) { v.flags = flags }

// Tab returns the tab with the given id, creating it when absent. The
// display title of a freshly created tab defaults to its id.
func (v *Visualizer) Tab(id string) *Tab {
	return v.ensureTab(id, "")
}

// AddTab returns the tab with the given id, creating it when absent. A
// non-empty title updates the display title of an existing tab; its contents
// are never touched.
func (v *Visualizer) AddTab(id, title string) *Tab {
	return v.ensureTab(id, title)
}

// FindTab returns the tab with the given id, or nil.
func (v *Visualizer) FindTab(id string) *Tab {
	for _, t := range v.tabs {
		if t.id == id {
			return t
		}
	}
	return nil
}

// RemoveTab deletes the tab with the given id. Removing the default tab
// always fails and reports false, as does removing an unknown id.
func (v *Visualizer) RemoveTab(id string) bool {
	if id == DefaultTabID {
		return false
	}
	for i, t := range v.tabs {
		if t.id == id {
			v.tabs = append(v.tabs[:i], v.tabs[i+1:]...)
			return true
		}
	}
	return false
}

// TabIDs returns the tab ids in insertion order.
func (v *Visualizer) TabIDs() []string {
	ids := make([]string, len(v.tabs))
	for i, t := range v.tabs {
		ids[i] = t.id
	}
	return ids
}

// Tabs returns the owned tabs in insertion order.
func (v *Visualizer) Tabs() []*Tab {
	return append([]*Tab(nil), v.tabs...)
}

// DefaultTab returns the protected default tab, recreating it if the
// Visualizer was constructed without one.
func (v *Visualizer) DefaultTab() *Tab {
	return v.ensureTab(DefaultTabID, "")
}

func (v *Visualizer) ensureTab(id, title string) *Tab {
	if existing := v.FindTab(id); existing != nil {
		existing.SetTitle(title)
		return existing
	}
	t := newTab(id, title)
	v.tabs = append(v.tabs, t)
	return t
}

// Tile returns the child Visualizer with the given id, creating it when
// absent. A new tile is visible and titled by its id.
func (v *Visualizer) Tile(id string) *Visualizer {
	return v.ensureTile(id, "")
}

// AddTile returns the child Visualizer with the given id, creating it when
// absent. A non-empty title updates the window title of an existing tile.
func (v *Visualizer) AddTile(id, title string) *Visualizer {
	return v.ensureTile(id, title)
}

// FindTile returns the child Visualizer with the given id, or nil.
func (v *Visualizer) FindTile(id string) *Visualizer {
	for _, entry := range v.tiles {
		if entry.id == id {
			return entry.vis
		}
	}
	return nil
}

// RemoveTile deletes the child Visualizer with the given id along with its
// whole subtree of tabs and nested tiles. Reports false for unknown ids.
func (v *Visualizer) RemoveTile(id string) bool {
	for i, entry := range v.tiles {
		if entry.id == id {
			v.tiles = append(v.tiles[:i], v.tiles[i+1:]...)
			return true
		}
	}
	return false
}

// TileIDs returns the child ids in insertion order.
func (v *Visualizer) TileIDs() []string {
	ids := make([]string, len(v.tiles))
	for i, entry := range v.tiles {
		ids[i] = entry.id
	}
	return ids
}

// Tiles returns the owned child Visualizers in insertion order.
func (v *Visualizer) Tiles() []*Visualizer {
	out := make([]*Visualizer, len(v.tiles))
	for i, entry := range v.tiles {
		out[i] = entry.vis
	}
	return out
}

func (v *Visualizer) ensureTile(id, title string) *Visualizer {
	if existing := v.FindTile(id); existing != nil {
		if title != "" && existing.title != title {
			existing.title = title
		}
		return existing
	}
	child := New()
	if title == "" {
		title = id
	}
	child.title = title
	v.tiles = append(v.tiles, tileEntry{id: id, vis: child})
	return child
}

// Clear recursively empties every tab and nested tile without removing any
// tab or tile identity.
func (v *Visualizer) Clear() {
	for _, t := range v.tabs {
		t.Clear()
	}
	for _, entry := range v.tiles {
		entry.vis.Clear()
	}
}

// UpdateValue stores a scalar on the default tab.
func (v *Visualizer) UpdateValue(key string, value ScalarValue) {
	v.DefaultTab().UpdateValue(key, value)
}

// PushGraphSample pushes one sample onto a graph of the default tab.
func (v *Visualizer) PushGraphSample(key string, sample float64) {
	v.DefaultTab().PushGraphSample(key, sample)
}

// AddGraphSamples pushes samples onto a graph of the default tab.
func (v *Visualizer) AddGraphSamples(key string, samples []float64) {
	v.DefaultTab().AddGraphSamples(key, samples)
}

// UpdateStructure rebuilds a structure on the default tab.
func (v *Visualizer) UpdateStructure(key string, build func(*StructureBuilder)) {
	v.DefaultTab().UpdateStructure(key, build)
}

// GetScalar reads a scalar from the default tab.
func (v *Visualizer) GetScalar(key string) (ScalarValue, bool) {
	return v.DefaultTab().GetScalar(key)
}

// GetGraphSamples reads a graph history from the default tab.
func (v *Visualizer) GetGraphSamples(key string) []float64 {
	return v.DefaultTab().GetGraphSamples(key)
}

// GetStructure reads a structure from the default tab.
func (v *Visualizer) GetStructure(key string) (StructureNode, bool) {
	return v.DefaultTab().GetStructure(key)
}
