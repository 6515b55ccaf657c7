// Package render prints view tables as plain text, bordered grids, JSON or an interactive TUI.
package render

import (
	"fmt"
	"io"

	"heron-explorer/internal/config"
	"heron-explorer/internal/view"
)

// Renderer writes tables to an output stream.
type Renderer interface {
	// Components writes each component's label line followed by its table.
	Components(w io.Writer, views []view.ComponentView) error
	// Table writes a single table.
	Table(w io.Writer, t view.Table) error
}

// Options tune the text renderers.
type Options struct {
	// MaxCellWidth truncates longer cells; 0 disables truncation.
	MaxCellWidth int
	// Width is the terminal width available to grid tables; 0 means unbounded.
	Width int
}

// New returns the renderer for format.
func New(format string, opts Options) (Renderer, error) {
	switch format {
	case config.FormatPlain, "":
		return &PlainRenderer{opts: opts}, nil
	case config.FormatGrid:
		return &GridRenderer{opts: opts}, nil
	case config.FormatJSON:
		return &JSONRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func componentLabel(name string) string {
	return fmt.Sprintf("'%s' metrics:", name)
}
