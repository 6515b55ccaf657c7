package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"heron-explorer/internal/view"
)

// GridRenderer draws bordered tables with lipgloss.
type GridRenderer struct {
	opts Options
}

// Components writes a bold label line and a bordered table per component.
func (r *GridRenderer) Components(w io.Writer, views []view.ComponentView) error {
	label := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	for _, v := range views {
		if _, err := fmt.Fprintln(w, label.Render(componentLabel(v.Name))); err != nil {
			return err
		}
		if err := r.Table(w, v.Table); err != nil {
			return err
		}
	}
	return nil
}

// Table writes t inside a normal border.
func (r *GridRenderer) Table(w io.Writer, t view.Table) error {
	lr := lipgloss.NewRenderer(w)
	headerStyle := lr.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lr.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = truncateCell(c, r.opts.MaxCellWidth)
		}
		rows = append(rows, cells)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lr.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(t.Header...).
		Rows(rows...)
	if r.opts.Width > 0 {
		tbl = tbl.Width(r.opts.Width)
	}
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}
