package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"heron-explorer/internal/view"
)

// Page is one table shown by the interactive browser.
type Page struct {
	Title string
	Table view.Table
}

// ComponentPages turns component views into browser pages.
func ComponentPages(views []view.ComponentView) []Page {
	pages := make([]Page, 0, len(views))
	for _, v := range views {
		pages = append(pages, Page{Title: v.Name, Table: v.Table})
	}
	return pages
}

// Browse runs an interactive table browser until the user quits.
func Browse(pages []Page, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newBrowser(pages, opts), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

var (
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const helpLine = "tab/shift+tab: switch table • ↑/↓: scroll • q: quit"

type browserModel struct {
	titles []string
	tables []table.Model
	active int
}

func newBrowser(pages []Page, opts Options) browserModel {
	m := browserModel{}
	for _, p := range pages {
		rows := make([]table.Row, 0, len(p.Table.Rows))
		for _, r := range p.Table.Rows {
			rows = append(rows, table.Row(r))
		}
		t := table.New(
			table.WithColumns(columns(p.Table, opts.MaxCellWidth)),
			table.WithRows(rows),
			table.WithHeight(len(rows)+1),
			table.WithFocused(true),
		)
		m.titles = append(m.titles, p.Title)
		m.tables = append(m.tables, t)
	}
	return m
}

func columns(t view.Table, maxWidth int) []table.Column {
	cols := make([]table.Column, len(t.Header))
	for i, h := range t.Header {
		w := ansi.PrintableRuneWidth(h)
		for _, r := range t.Rows {
			if i < len(r) {
				w = max(w, ansi.PrintableRuneWidth(r[i]))
			}
		}
		if maxWidth > 0 {
			w = min(w, maxWidth)
		}
		cols[i] = table.Column{Title: h, Width: w}
	}
	return cols
}

func (m browserModel) Init() tea.Cmd { return nil }

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the tab bar and help line.
		h := max(msg.Height-4, 2)
		for i := range m.tables {
			m.tables[i].SetHeight(h)
			m.tables[i].SetWidth(msg.Width)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			if len(m.tables) > 0 {
				m.active = (m.active + 1) % len(m.tables)
			}
			return m, nil
		case "shift+tab", "left", "h":
			if len(m.tables) > 0 {
				m.active = (m.active - 1 + len(m.tables)) % len(m.tables)
			}
			return m, nil
		}
	}
	if len(m.tables) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.tables[m.active], cmd = m.tables[m.active].Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if len(m.tables) == 0 {
		return "no tables to show\n" + helpStyle.Render(helpLine)
	}
	tabs := make([]string, len(m.titles))
	for i, title := range m.titles {
		if i == m.active {
			tabs[i] = activeTab.Render(title)
		} else {
			tabs[i] = inactiveTab.Render(title)
		}
	}
	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(m.tables[m.active].View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	return b.String()
}
