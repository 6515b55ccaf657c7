// Package view projects a topology's physical plan and metrics into tables.
package view

import (
	"heron-explorer/internal/catalog"
	"heron-explorer/internal/topology"
)

// Table is a renderer-agnostic grid of rows under a header.
// Rows may be shorter than the header when metric data is sparse.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

const instanceColumn = "container id"

// Pivot turns a field -> instance -> value result into one row per instance.
//
// Rows are taken from the instances of the first field in m only; instances
// that appear solely under later fields are dropped. A field missing for an
// instance is left out of that row rather than padded, so rows can differ in
// length. The header lists only catalog fields present in m, in catalog order.
func Pivot(c catalog.Catalog, m topology.MetricsResult) Table {
	fields := c.QueryFields()
	header := []string{instanceColumn}
	for _, f := range fields {
		if m.Has(f) {
			header = append(header, c.DisplayName(f))
		}
	}
	if len(m) == 0 {
		return Table{Header: header, Rows: [][]string{}}
	}

	rows := make([][]string, 0, len(m[0].Samples))
	for _, s := range m[0].Samples {
		row := []string{s.Instance}
		for _, f := range fields {
			if v, ok := m.Lookup(f, s.Instance); ok {
				row = append(row, v)
			}
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}
}
