package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"heron-explorer/internal/view"
)

const ellipsis = "…"

// PlainRenderer prints aligned columns with a dashed rule under the header.
type PlainRenderer struct {
	opts Options
}

// Components writes a label line and a table per component.
func (r *PlainRenderer) Components(w io.Writer, views []view.ComponentView) error {
	for _, v := range views {
		if _, err := fmt.Fprintln(w, componentLabel(v.Name)); err != nil {
			return err
		}
		if err := r.Table(w, v.Table); err != nil {
			return err
		}
	}
	return nil
}

// Table writes t as tab-aligned columns.
func (r *PlainRenderer) Table(w io.Writer, t view.Table) error {
	header := r.cells(t.Header)
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, r.cells(row))
	}

	rule := make([]string, len(header))
	for i, h := range header {
		width := ansi.PrintableRuneWidth(h)
		for _, row := range rows {
			if i < len(row) {
				width = max(width, ansi.PrintableRuneWidth(row[i]))
			}
		}
		rule[i] = strings.Repeat("-", width)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(rule, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(padRow(row, len(header)), "\t"))
	}
	return tw.Flush()
}

// padRow extends a short row with empty cells so every line keeps the same
// tab-terminated columns and tabwriter aligns them as one block.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func (r *PlainRenderer) cells(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = truncateCell(c, r.opts.MaxCellWidth)
	}
	return out
}

func truncateCell(s string, width int) string {
	if width <= 0 || ansi.PrintableRuneWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}
