// Package term adapts the controlling terminal: it measures the window and
// drives ficread.Paginator as an in-process pager.
package term

import (
	"github.com/fwojciec/ficread"
	"golang.org/x/term"
)

// DefaultHeight is used when the terminal height cannot be detected.
const DefaultHeight = 25

// File is the subset of *os.File needed to query a terminal.
type File interface {
	Fd() uintptr
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the terminal width and height of f, falling back to
// ficread.DefaultWidth and DefaultHeight when f is not a terminal.
func Size(f File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return ficread.DefaultWidth, DefaultHeight
	}
	return w, h
}
