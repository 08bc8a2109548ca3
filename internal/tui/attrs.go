package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the attributes table: one row per detected wall.
func (m *Model) refreshAttrs() {
	if len(m.data.Walls) == 0 {
		m.showAttrs = false
		m.status = "no walls to list"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 16},
		{Title: "stroke-w", Width: 9},
		{Title: "vertices", Width: 9},
		{Title: "closed", Width: 7},
	}
	rows := make([]table.Row, 0, len(m.data.Walls))
	for i, w := range m.data.Walls {
		id := w.ID
		if id == "" {
			id = "(none)"
		}
		closed := "no"
		if w.Closed {
			closed = "yes"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			id,
			fmt.Sprintf("%g", w.StrokeWidth),
			fmt.Sprintf("%d", len(w.Points)),
			closed,
		})
	}
	// clear rows first to avoid a transient column/row mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
