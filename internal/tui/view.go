package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"dbgvis/internal/vis"
)

const (
	defaultContentWidth = 60
	sparklineHeight     = 1
	minPlotWidth        = 8
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

func (m model) View() string {
	if m.width == 0 {
		return "starting…"
	}

	windows := collectWindows(m.root)
	if len(windows) == 0 {
		return mutedStyle.Render("no visible windows") + "\n" + m.helpView()
	}

	contentWidth := m.width - 4
	if contentWidth < minPlotWidth {
		contentWidth = minPlotWidth
	}
	if contentWidth > defaultContentWidth {
		contentWidth = defaultContentWidth
	}

	focus := m.focus
	if focus >= len(windows) {
		focus = len(windows) - 1
	}

	blocks := make([]string, 0, len(windows)+1)
	for i, w := range windows {
		blocks = append(blocks, m.renderWindow(w, i == focus, contentWidth))
	}
	blocks = append(blocks, m.helpView())
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m model) renderWindow(w windowRef, focused bool, width int) string {
	v := w.vis
	flags := v.WindowFlags()

	var sb strings.Builder
	sb.WriteString(windowTitleStyle.Render(runewidth.Truncate(v.Title(), width, "…")))
	sb.WriteByte('\n')

	tabs := v.Tabs()
	active := m.activeTab[w.path]
	if active >= len(tabs) {
		active = len(tabs) - 1
	}

	showStrip := len(tabs) > 1 || flags&vis.WindowFlagNoTabStrip == 0
	if showStrip && len(tabs) > 0 {
		strip := make([]string, len(tabs))
		for i, t := range tabs {
			if i == active {
				strip[i] = activeTabStyle.Render(t.Title())
			} else {
				strip[i] = inactiveTabStyle.Render(t.Title())
			}
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strip...))
		sb.WriteByte('\n')
	}

	if len(tabs) > 0 {
		sb.WriteString(renderTab(tabs[active], width))
	}

	content := strings.TrimRight(sb.String(), "\n")
	if flags&vis.WindowFlagBorderless != 0 {
		return content
	}
	style := windowStyle
	if focused {
		style = focusedWindowStyle
	}
	return style.Width(width + 2).Render(content)
}

// renderTab draws scalar rows, one plot per graph and a collapsible-style
// tree per structure with content.
func renderTab(t *vis.Tab, width int) string {
	if t.Empty() {
		return mutedStyle.Render("no data yet")
	}

	var sb strings.Builder

	scalarKeys := t.ScalarKeys()
	if len(scalarKeys) > 0 {
		keyWidth := 0
		for _, key := range scalarKeys {
			if w := runewidth.StringWidth(key); w > keyWidth {
				keyWidth = w
			}
		}
		for _, key := range scalarKeys {
			value, _ := t.GetScalar(key)
			sb.WriteString(scalarKeyStyle.Render(runewidth.FillRight(key, keyWidth)))
			sb.WriteString("  ")
			sb.WriteString(runewidth.Truncate(value.String(), width-keyWidth-2, "…"))
			sb.WriteByte('\n')
		}
	}

	for _, key := range t.GraphKeys() {
		g := t.FindGraph(key)
		min, max := g.Bounds()
		sb.WriteString(scalarKeyStyle.Render(key))
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %.3f  [%.3f, %.3f]", g.Latest(), min, max)))
		sb.WriteByte('\n')
		if line := sparkline(g.Samples(), min, max, width); line != "" {
			sb.WriteString(graphStyle.Render(line))
			sb.WriteByte('\n')
		}
	}

	for _, key := range t.StructureKeys() {
		node, ok := t.GetStructure(key)
		if !ok {
			continue
		}
		sb.WriteString(groupLabelStyle.Render("▾ " + key))
		sb.WriteByte('\n')
		for _, child := range node.Children {
			renderStructureNode(&sb, child, 1)
		}
	}

	return sb.String()
}

func renderStructureNode(sb *strings.Builder, node vis.StructureNode, depth int) {
	indent := strings.Repeat("  ", depth)
	switch {
	case len(node.Children) > 0:
		sb.WriteString(indent)
		sb.WriteString(groupLabelStyle.Render("▸ " + node.Label))
		sb.WriteByte('\n')
		if node.Value.IsSet() {
			sb.WriteString(indent)
			sb.WriteString("  ")
			sb.WriteString(node.Value.String())
			sb.WriteByte('\n')
		}
		for _, child := range node.Children {
			renderStructureNode(sb, child, depth+1)
		}
	case node.Value.IsSet():
		sb.WriteString(indent)
		sb.WriteString(node.Label)
		sb.WriteString(": ")
		sb.WriteString(node.Value.String())
		sb.WriteByte('\n')
	default:
		sb.WriteString(indent)
		sb.WriteString(node.Label)
		sb.WriteByte('\n')
	}
}

// sparkline maps the trailing samples onto one row of block runes within the
// given bounds. Samples outside manual bounds clamp to the edge runes.
func sparkline(samples []float64, min, max float64, width int) string {
	if len(samples) == 0 || width <= 0 {
		return ""
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}
	span := max - min
	if span <= 0 {
		span = 1
	}
	var sb strings.Builder
	for _, s := range samples {
		norm := (s - min) / span
		if norm < 0 {
			norm = 0
		}
		if norm > 1 {
			norm = 1
		}
		sb.WriteRune(sparkLevels[int(norm*float64(len(sparkLevels)-1)+0.5)])
	}
	return sb.String()
}

// tabAsText flattens a tab for the clipboard.
func tabAsText(t *vis.Tab) string {
	var sb strings.Builder
	sb.WriteString(t.Title())
	sb.WriteByte('\n')
	for _, key := range t.ScalarKeys() {
		value, _ := t.GetScalar(key)
		fmt.Fprintf(&sb, "%s: %s\n", key, value)
	}
	for _, key := range t.GraphKeys() {
		g := t.FindGraph(key)
		fmt.Fprintf(&sb, "%s: latest=%.3f samples=%d\n", key, g.Latest(), g.Len())
	}
	for _, key := range t.StructureKeys() {
		node, ok := t.GetStructure(key)
		if !ok {
			continue
		}
		sb.WriteString(key)
		sb.WriteByte('\n')
		var flatten func(node vis.StructureNode, depth int)
		flatten = func(node vis.StructureNode, depth int) {
			indent := strings.Repeat("  ", depth)
			if node.Value.IsSet() {
				fmt.Fprintf(&sb, "%s%s: %s\n", indent, node.Label, node.Value)
			} else {
				fmt.Fprintf(&sb, "%s%s\n", indent, node.Label)
			}
			for _, child := range node.Children {
				flatten(child, depth+1)
			}
		}
		for _, child := range node.Children {
			flatten(child, 1)
		}
	}
	return sb.String()
}

func (m model) helpView() string {
	help := "tab: tabs • ←/→: windows • x: close • c: copy • q: quit"
	if m.status != "" {
		return statusStyle.Render(m.status) + "  " + mutedStyle.Render(help)
	}
	return mutedStyle.Render(help)
}
