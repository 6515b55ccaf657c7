package main

import (
	"errors"
	"os"

	"golang.org/x/term"

	"heron-explorer/internal/render"
)

var errNotTerminal = errors.New("--interactive requires a terminal")

// renderer returns the configured renderer, sized to the terminal when
// writing to one.
func (a *app) renderer() (render.Renderer, error) {
	opts := render.Options{MaxCellWidth: a.cfg.MaxCellWidth}
	if fd, ok := terminalFd(a.out); ok {
		if w, _, err := term.GetSize(fd); err == nil {
			opts.Width = w
		}
	}
	return render.New(a.cfg.Format, opts)
}

func (a *app) browse(pages []render.Page) error {
	_, inTTY := terminalFd(a.in)
	_, outTTY := terminalFd(a.out)
	if !inTTY || !outTTY {
		return a.fail("cannot start interactive mode", errNotTerminal)
	}
	return render.Browse(pages, render.Options{MaxCellWidth: a.cfg.MaxCellWidth}, a.in, a.out)
}

func terminalFd(v any) (int, bool) {
	f, ok := v.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
