package service

import "dbgvis/internal/vis"

// DefaultTab is the conventional tab id used when the typed update surface
// is called with an empty tab id.
const DefaultTab = "Telemetry"

// All typed updates address (tabID, key) on the service's main window tile,
// enqueue a command capturing copied arguments, and return immediately.

func (s *Service) mainTab(root *vis.Visualizer, tabID string) *vis.Tab {
	if tabID == "" {
		tabID = DefaultTab
	}
	return root.Tile(s.opts.MainTile).Tab(tabID)
}

// SetValue stores a scalar under key on the given tab.
func (s *Service) SetValue(tabID, key string, value vis.ScalarValue) {
	s.Post(func(root *vis.Visualizer) {
		s.mainTab(root, tabID).UpdateValue(key, value)
	})
}

// SetInt stores an integer scalar under key on the given tab.
func (s *Service) SetInt(tabID, key string, v int64) { s.SetValue(tabID, key, vis.Int(v)) }

// SetFloat stores a float scalar under key on the given tab.
func (s *Service) SetFloat(tabID, key string, v float64) { s.SetValue(tabID, key, vis.Float(v)) }

// SetBool stores a bool scalar under key on the given tab.
func (s *Service) SetBool(tabID, key string, v bool) { s.SetValue(tabID, key, vis.Bool(v)) }

// SetText stores a text scalar under key on the given tab.
func (s *Service) SetText(tabID, key, v string) { s.SetValue(tabID, key, vis.Text(v)) }

// PushSample pushes one sample onto the graph under key, creating the graph
// with the default configuration when absent.
func (s *Service) PushSample(tabID, key string, sample float64) {
	s.Post(func(root *vis.Visualizer) {
		s.mainTab(root, tabID).PushGraphSample(key, sample)
	})
}

// PushSamples pushes samples in order onto the graph under key. The slice is
// copied before enqueueing, so the caller may reuse it immediately.
func (s *Service) PushSamples(tabID, key string, samples []float64) {
	copied := append([]float64(nil), samples...)
	s.Post(func(root *vis.Visualizer) {
		s.mainTab(root, tabID).AddGraphSamples(key, copied)
	})
}

// ConfigureGraph creates or reconfigures the graph under key. Updates are
// applied in FIFO order, so configuring before pushing behaves as written at
// the call site.
func (s *Service) ConfigureGraph(tabID, key string, config vis.GraphConfig) {
	s.Post(func(root *vis.Visualizer) {
		s.mainTab(root, tabID).AddGraph(key, config)
	})
}

// UpdateStructure rebuilds the structure under key. The builder callback
// runs synchronously on the consumer goroutine during the drain; it must not
// touch producer-side state without its own synchronization.
func (s *Service) UpdateStructure(tabID, key string, build func(*vis.StructureBuilder)) {
	s.Post(func(root *vis.Visualizer) {
		s.mainTab(root, tabID).UpdateStructure(key, build)
	})
}

// ClearTab empties all scalars, graphs and structures of the given tab.
func (s *Service) ClearTab(tabID string) {
	s.Post(func(root *vis.Visualizer) {
		s.mainTab(root, tabID).Clear()
	})
}

// SetWindowTitle retitles the main window tile.
func (s *Service) SetWindowTitle(title string) {
	s.Post(func(root *vis.Visualizer) {
		root.Tile(s.opts.MainTile).SetTitle(title)
	})
}

// ShowWindow toggles the visibility of the main window tile.
func (s *Service) ShowWindow(visible bool) {
	s.Post(func(root *vis.Visualizer) {
		root.Tile(s.opts.MainTile).SetVisible(visible)
	})
}
