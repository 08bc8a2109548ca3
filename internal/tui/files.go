package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"wallmap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.ToLower(filepath.Ext(name)) == ".svg" {
			items = append(items, fileItem{title: name, desc: ".svg", path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .svg files in current directory"
	}
}

// loadPath extracts wall geometry from an SVG floor plan into the model.
func (m *Model) loadPath(p string) {
	m.selPath = p
	d, err := geom.Load(p, m.opts, m.scale)
	if err != nil {
		m.status = "parse error: " + err.Error()
		return
	}
	m.setData(d, "loaded: "+filepath.Base(p))
}

// setData installs freshly extracted geometry and resets the viewport.
func (m *Model) setData(d geom.Data, src string) {
	m.data = d
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.showClosed = true
	m.showOpen = true
	m.status = fmt.Sprintf("%s  walls=%d", src, len(d.Walls))
	if m.showAttrs {
		m.refreshAttrs()
	}
}
