package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"wallmap/internal/geom"
	"wallmap/internal/svg"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// extraction parameters
	opts  svg.Options
	scale float64

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Detected plan geometry
	data geom.Data

	// last rendered canvas size (for inspect and hover)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showClosed bool
	showOpen   bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasPos bool
	hoverX      float64
	hoverY      float64

	// wall attributes table
	showAttrs bool
	tbl       table.Model
}

// New builds an empty viewer with the given extraction thresholds and
// coordinate scale.
func New(opts svg.Options, scale float64) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "wallmap ready",
		opts:        opts,
		scale:       scale,
		showClosed:  true,
		showOpen:    true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Floor plans"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste SVG markup here. Press Enter to extract walls; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a floor plan at launch.
func NewWithPath(path string, opts svg.Options, scale float64) Model {
	m := New(opts, scale)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
