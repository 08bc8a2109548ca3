package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"wallmap/internal/export"
	"wallmap/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If the list is filtering, keys belong to it
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				markup := strings.TrimSpace(m.ta.Value())
				if markup == "" {
					m.status = "paste: empty"
					return m, nil
				}
				d, err := geom.LoadStream(strings.NewReader(markup), m.opts, m.scale)
				if err != nil {
					m.status = "parse error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				m.setData(d, "pasted SVG")
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showClosed = !m.showClosed
			m.status = fmt.Sprintf("closed walls: %v", m.showClosed)
		case "2":
			m.showOpen = !m.showOpen
			m.status = fmt.Sprintf("open walls: %v", m.showOpen)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "e":
			if len(m.data.Walls) == 0 {
				m.status = "nothing to export"
				break
			}
			out := m.exportName()
			if err := export.WritePNG(out, m.data, 800); err != nil {
				m.status = "export error: " + err.Error()
			} else {
				m.status = "wrote " + out
			}
		case "i":
			m.inspectPopup = m.buildInspect()
			m.status = "inspect popup"
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over the plan canvas; layout must match View
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			if x, y, ok := m.cellToPlanXY(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
				m.hoverHasPos = true
				m.hoverX = x
				m.hoverY = y
			} else {
				m.hoverHasPos = false
			}
			bx, by, found := m.nearestVertexMicro(m.hoverCellX*2, m.hoverCellY*4, mapWidth, mapHeight)
			if found {
				m.hoverMicX, m.hoverMicY = bx, by
			} else {
				m.hoverMicX, m.hoverMicY = m.hoverCellX*2, m.hoverCellY*4
			}
		} else {
			m.hovering = false
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// buildInspect summarizes the current plan: source, bbox, wall counts,
// and a sample of up to three raw records.
func (m Model) buildInspect() string {
	if len(m.data.Walls) == 0 {
		return "no walls detected"
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	closed := 0
	for _, w := range m.data.Walls {
		if w.Closed {
			closed++
		}
	}
	bb := m.data.BBox
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("bbox: [%.2f, %.2f, %.2f, %.2f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
		fmt.Sprintf("walls: %d (closed=%d open=%d)", len(m.data.Walls), closed, len(m.data.Walls)-closed),
	}
	for _, w := range m.data.Sample(3) {
		id := w.ID
		if id == "" {
			id = "(none)"
		}
		meta = append(meta, fmt.Sprintf("sample: id=%s stroke=%g d=%s", id, w.StrokeWidth, truncate(w.D, 36)))
	}
	return strings.Join(meta, "\n")
}

func (m Model) exportName() string {
	if m.selPath == "" {
		return "walls.png"
	}
	base := filepath.Base(m.selPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "-walls.png"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
