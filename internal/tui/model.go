package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dbgvis/internal/service"
	"dbgvis/internal/vis"
	"dbgvis/pkg/logging"
)

// frameTickMsg drives one consumer frame: drain the queue, apply commands,
// redraw.
type frameTickMsg time.Time

// closeRequestMsg is sent by the service to wake the program during Stop.
type closeRequestMsg struct{}

// clearStatusMsg clears the transient status line; Gen guards against a
// newer status being wiped by an older timer.
type clearStatusMsg struct{ Gen int }

// windowRef addresses one visible window within the tree. The path is the
// tile id chain, e.g. "Main" or "Main/ai".
type windowRef struct {
	path string
	vis  *vis.Visualizer
}

type model struct {
	root     *vis.Visualizer
	frame    service.FrameFunc
	interval time.Duration
	last     time.Time

	width  int
	height int

	focus     int
	activeTab map[string]int

	status    string
	statusGen int

	keys KeyMap
}

func newModel(root *vis.Visualizer, frame service.FrameFunc, interval time.Duration) model {
	return model{
		root:      root,
		frame:     frame,
		interval:  interval,
		activeTab: make(map[string]int),
		keys:      DefaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameTickMsg:
		now := time.Time(msg)
		delta := m.interval
		if !m.last.IsZero() {
			delta = now.Sub(m.last)
		}
		m.last = now
		if !m.frame(delta) {
			return m, tea.Quit
		}
		return m, m.tick()

	case closeRequestMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearStatusMsg:
		if msg.Gen == m.statusGen {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	windows := collectWindows(m.root)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextWindow):
		if len(windows) > 0 {
			m.focus = (m.focus + 1) % len(windows)
		}

	case key.Matches(msg, m.keys.PrevWindow):
		if len(windows) > 0 {
			m.focus = (m.focus - 1 + len(windows)) % len(windows)
		}

	case key.Matches(msg, m.keys.NextTab):
		if w, ok := m.focusedWindow(windows); ok {
			m.cycleTab(w, 1)
		}

	case key.Matches(msg, m.keys.PrevTab):
		if w, ok := m.focusedWindow(windows); ok {
			m.cycleTab(w, -1)
		}

	case key.Matches(msg, m.keys.CloseWindow):
		// Runs on the consumer goroutine, so flipping visibility directly
		// is within the tree's threading contract.
		if w, ok := m.focusedWindow(windows); ok {
			w.vis.SetVisible(false)
			if m.focus > 0 {
				m.focus--
			}
		}

	case key.Matches(msg, m.keys.CopyTab):
		if w, ok := m.focusedWindow(windows); ok {
			tab := m.currentTab(w)
			if tab == nil {
				break
			}
			if err := clipboard.WriteAll(tabAsText(tab)); err != nil {
				logging.Warn("tui", "clipboard copy failed: %v", err)
				return m.setStatus("copy failed")
			}
			return m.setStatus("copied " + tab.Title())
		}
	}
	return m, nil
}

func (m model) focusedWindow(windows []windowRef) (windowRef, bool) {
	if len(windows) == 0 {
		return windowRef{}, false
	}
	if m.focus >= len(windows) {
		m.focus = len(windows) - 1
	}
	return windows[m.focus], true
}

func (m model) cycleTab(w windowRef, step int) {
	tabs := w.vis.Tabs()
	if len(tabs) == 0 {
		return
	}
	idx := m.activeTab[w.path]
	idx = (idx + step + len(tabs)) % len(tabs)
	m.activeTab[w.path] = idx
}

// currentTab returns the active tab of a window, clamped to the tab count.
func (m model) currentTab(w windowRef) *vis.Tab {
	tabs := w.vis.Tabs()
	if len(tabs) == 0 {
		return nil
	}
	idx := m.activeTab[w.path]
	if idx >= len(tabs) {
		idx = len(tabs) - 1
	}
	return tabs[idx]
}

func (m model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusGen++
	gen := m.statusGen
	return m, tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearStatusMsg{Gen: gen}
	})
}

// collectWindows flattens the visible windows of the tree in render order.
// A hidden window still contributes its visible children.
func collectWindows(root *vis.Visualizer) []windowRef {
	var out []windowRef
	var walk func(v *vis.Visualizer, path string)
	walk = func(v *vis.Visualizer, path string) {
		for _, id := range v.TileIDs() {
			tile := v.FindTile(id)
			childPath := id
			if path != "" {
				childPath = path + "/" + id
			}
			if tile.Visible() {
				out = append(out, windowRef{path: childPath, vis: tile})
			}
			walk(tile, childPath)
		}
	}
	if root.Visible() {
		out = append(out, windowRef{path: "", vis: root})
	}
	walk(root, "")
	return out
}
