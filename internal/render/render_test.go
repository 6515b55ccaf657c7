package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"heron-explorer/internal/view"
)

var metricsTable = view.Table{
	Header: []string{"container id", "F1", "F2"},
	Rows:   [][]string{{"i1", "5", "9"}, {"i2", "7"}},
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New("xml", Options{}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	for _, f := range []string{"", "plain", "grid", "json"} {
		if _, err := New(f, Options{}); err != nil {
			t.Fatalf("format %q: %v", f, err)
		}
	}
}

func TestPlainTable(t *testing.T) {
	buf := &bytes.Buffer{}
	r, _ := New("plain", Options{})
	if err := r.Table(buf, metricsTable); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "container id  F1  F2" {
		t.Fatalf("unexpected header line %q", lines[0])
	}
	if lines[1] != "------------  --  --" {
		t.Fatalf("unexpected rule line %q", lines[1])
	}
	if strings.TrimSpace(lines[3]) != "i2            7" {
		t.Fatalf("short row should not be padded with values: %q", lines[3])
	}
}

func TestPlainTableAlignsRowsAfterShortRow(t *testing.T) {
	tbl := view.Table{
		Header: []string{"container id", "execute-latency", "fail-count"},
		Rows:   [][]string{{"i1", "5", "9"}, {"i2", "7"}, {"i3", "8", "4"}},
	}
	buf := &bytes.Buffer{}
	r, _ := New("plain", Options{})
	if err := r.Table(buf, tbl); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), buf.String())
	}
	latency := strings.Index(lines[0], "execute-latency")
	failCount := strings.Index(lines[0], "fail-count")
	for _, line := range []string{lines[2], lines[4]} {
		fields := strings.Fields(line)
		if got := strings.Index(line, " "+fields[1]) + 1; got != latency {
			t.Fatalf("latency value at %d, header at %d: %q", got, latency, line)
		}
		if got := strings.LastIndex(line, fields[2]); got != failCount {
			t.Fatalf("fail-count value at %d, header at %d: %q", got, failCount, line)
		}
	}
	if strings.Fields(lines[3])[1] != "7" || len(strings.Fields(lines[3])) != 2 {
		t.Fatalf("short row should keep its cells only: %q", lines[3])
	}
}

func TestPlainComponentsLabels(t *testing.T) {
	buf := &bytes.Buffer{}
	r, _ := New("plain", Options{})
	views := []view.ComponentView{{Name: "word", Table: metricsTable}, {Name: "count", Table: view.Table{Header: []string{"container id"}}}}
	if err := r.Components(buf, views); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	first := strings.Index(out, "'word' metrics:")
	second := strings.Index(out, "'count' metrics:")
	if first != 0 || second <= first {
		t.Fatalf("labels missing or out of order: %q", out)
	}
}

func TestPlainTruncatesCells(t *testing.T) {
	buf := &bytes.Buffer{}
	r, _ := New("plain", Options{MaxCellWidth: 6})
	tbl := view.Table{Header: []string{"container id"}, Rows: [][]string{{"container_1_word_2"}}}
	if err := r.Table(buf, tbl); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "container_1_word_2") {
		t.Fatalf("expected truncated cell: %q", buf.String())
	}
	if !strings.Contains(buf.String(), ellipsis) {
		t.Fatalf("expected ellipsis: %q", buf.String())
	}
}

func TestGridTable(t *testing.T) {
	buf := &bytes.Buffer{}
	r, _ := New("grid", Options{})
	if err := r.Components(buf, []view.ComponentView{{Name: "word", Table: metricsTable}}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"'word' metrics:", "container id", "F2", "i2", "│"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %q", want, out)
		}
	}
}

func TestJSONComponents(t *testing.T) {
	buf := &bytes.Buffer{}
	r, _ := New("json", Options{})
	if err := r.Components(buf, []view.ComponentView{{Name: "word", Table: metricsTable}}); err != nil {
		t.Fatalf("render: %v", err)
	}
	var got []view.ComponentView
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 1 || got[0].Name != "word" || len(got[0].Table.Rows[1]) != 2 {
		t.Fatalf("unexpected decoded output %+v", got)
	}
}

func TestJSONEmptyTable(t *testing.T) {
	buf := &bytes.Buffer{}
	r, _ := New("json", Options{})
	if err := r.Table(buf, view.Table{Header: []string{"container id"}}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `"rows": []`) {
		t.Fatalf("expected empty rows array: %q", buf.String())
	}
}

func TestBrowserSwitchesTables(t *testing.T) {
	pages := ComponentPages([]view.ComponentView{
		{Name: "word", Table: metricsTable},
		{Name: "count", Table: view.Table{Header: []string{"container id"}}},
	})
	m := newBrowser(pages, Options{})
	if !strings.Contains(m.View(), "i1") {
		t.Fatalf("expected first table rows in view: %q", m.View())
	}

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = mi.(browserModel)
	if m.active != 1 {
		t.Fatalf("expected second table active, got %d", m.active)
	}
	if strings.Contains(m.View(), "i1") {
		t.Fatalf("first table still shown after switching")
	}

	mi, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = mi.(browserModel)
	if m.active != 0 {
		t.Fatalf("expected wrap-around to first table, got %d", m.active)
	}

	mi, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = mi.(browserModel)
	if m.active != 1 {
		t.Fatalf("expected shift+tab to go back, got %d", m.active)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestBrowserColumnsWidth(t *testing.T) {
	cols := columns(metricsTable, 0)
	if len(cols) != 3 || cols[0].Width != len("container id") || cols[1].Width != 2 {
		t.Fatalf("unexpected columns %+v", cols)
	}
	cols = columns(metricsTable, 4)
	if cols[0].Width != 4 {
		t.Fatalf("expected capped width, got %d", cols[0].Width)
	}
}

func TestBrowserEmpty(t *testing.T) {
	m := newBrowser(nil, Options{})
	if !strings.Contains(m.View(), "no tables") {
		t.Fatalf("unexpected empty view %q", m.View())
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab}); cmd != nil {
		t.Fatalf("expected no command")
	}
}
